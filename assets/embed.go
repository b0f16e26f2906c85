// Package assets embeds the sample configuration and generator scripts
// shipped with the editor tools.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed editor.yaml scripts/*.tengo
var assetsFS embed.FS

const scriptExt = ".tengo"

// ExampleConfig returns the sample editor.yaml. It spells out every
// default value.
func ExampleConfig() []byte {
	b, err := assetsFS.ReadFile("editor.yaml")
	if err != nil {
		panic(fmt.Sprintf("assets: editor.yaml missing: %v", err))
	}
	return b
}

// Script loads a bundled generator script by name, with or without the
// .tengo extension.
func Script(name string) ([]byte, error) {
	clean := strings.TrimSuffix(path.Base(name), scriptExt)
	b, err := assetsFS.ReadFile("scripts/" + clean + scriptExt)
	if err != nil {
		return nil, fmt.Errorf("assets: script %q: %w", name, err)
	}
	return b, nil
}

// Scripts lists the bundled script names.
func Scripts() []string {
	entries, err := fs.ReadDir(assetsFS, "scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), scriptExt))
	}
	sort.Strings(names)
	return names
}
