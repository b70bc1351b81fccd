// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads caller identification values from a directory of
// plain-text files. Each file is one value: the filename is the key and the
// trimmed contents are the value.
//
// Recognized keys: ncbi-email, ncbi-tool. NCBI asks E-utilities callers to
// send both so it can contact them before blocking abusive traffic.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// KeyEmail names the file holding the contact email sent to NCBI.
	KeyEmail = "ncbi-email"

	// KeyTool names the file holding the tool name sent to NCBI.
	KeyTool = "ncbi-tool"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged as warnings and skipped.
func Load(dir string, log *slog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	values := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("could not read secret", "key", name, "err", err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			values[name] = value
		}
	}
	return values, nil
}

// Identity returns the NCBI email and tool values from a loaded map. Either
// may be empty.
func Identity(values map[string]string) (email, tool string) {
	return values[KeyEmail], values[KeyTool]
}
