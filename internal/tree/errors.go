package tree

import (
	"errors"
	"fmt"
)

const (
	opStat  = "stat"
	opOpen  = "open"
	opList  = "list"
	opClose = "close"
)

// ErrNotDirectory reports a root path that exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// FileSystemError is returned when the root or any descendant directory cannot be traversed.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (fileSystemError *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", fileSystemError.Op, fileSystemError.Path, fileSystemError.Err)
}

func (fileSystemError *FileSystemError) Unwrap() error {
	return fileSystemError.Err
}
