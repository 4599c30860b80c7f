package scaffold

import (
	"os"
)

// FS is the set of filesystem operations the materializer needs. Tests swap
// in implementations that fail on chosen paths.
type FS interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(path string, data []byte, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
}

// OSFS implements FS with the os package.
type OSFS struct{}

func (OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (OSFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
