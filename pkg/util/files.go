package util

import (
	"os"
	"path/filepath"
	"strings"
)

// OutputSuffix is inserted before the extension of the output file.
const OutputSuffix = "_mementized"

// OutputPath derives the output filename from the input: the suffix is
// inserted before the extension, in the same directory.
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return stem + OutputSuffix + ext
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CleanupFiles removes multiple files, ignoring errors
func CleanupFiles(paths ...string) {
	for _, path := range paths {
		_ = os.Remove(path)
	}
}
