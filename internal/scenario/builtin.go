package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtins returns the embedded demo scenarios in file-name order.
func Builtins() ([]*Scenario, error) {
	names, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]*Scenario, 0, len(names))
	for _, name := range names {
		f, err := builtinFS.Open(name)
		if err != nil {
			return nil, err
		}
		s, err := Load(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, s)
	}

	return out, nil
}
