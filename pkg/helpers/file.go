package helpers

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func FileExists(filename string) bool {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return false
	}

	return true
}

// ReadFile returns the base name and contents of a file to upload.
func ReadFile(filename string) (string, []byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", nil, errors.WithStack(err)
	}

	return filepath.Base(filename), data, nil
}
