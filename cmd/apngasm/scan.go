package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errNoFrames = errors.New("no PNG files found")

// scanFrames lists the PNG files directly inside dir, sorted by name, as
// absolute paths.
func scanFrames(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("filepath.Abs %q failed: %w", dir, err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("invalid input directory: %w", err)
	}
	// os.ReadDir returns entries sorted by name.
	var result []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		result = append(result, filepath.Join(abs, e.Name()))
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%s: %w", abs, errNoFrames)
	}
	return result, nil
}
