package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/eugenenazirov/usbconf/internal/profile"
	"github.com/eugenenazirov/usbconf/internal/resolve"
)

// hintsFromManifest extracts platform hints from a board manifest, the JSON
// a board management tool emits for the selected target. Two locations are
// consulted: `build.arch` (the core architecture name) and `build.defines`
// (raw compiler defines, with or without a -D prefix).
func hintsFromManifest(path string) (resolve.Hints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse manifest: not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	hints := resolve.Hints{}

	if arch := doc.Get("build.arch"); arch.Exists() {
		if h, ok := profile.HintForArch(arch.String()); ok {
			hints[h] = true
		}
	}

	doc.Get("build.defines").ForEach(func(_, value gjson.Result) bool {
		define := strings.TrimPrefix(strings.TrimSpace(value.String()), "-D")
		name, _, _ := strings.Cut(define, "=")
		if _, ok := profile.MCUForHint(profile.Hint(name)); ok {
			hints[profile.Hint(name)] = true
		}
		return true
	})

	return hints, nil
}
