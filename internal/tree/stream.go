package tree

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// EventKind distinguishes directory events from file events.
type EventKind int

const (
	// EventDirectory marks a directory line.
	EventDirectory EventKind = iota
	// EventFile marks a file line.
	EventFile
)

// Event describes one rendered entry. File events carry the depth of their
// containing directory plus one.
type Event struct {
	Kind  EventKind
	Path  string
	Name  string
	Depth int
}

type directoryListing struct {
	directories []string
	files       []string
}

type streamContext struct {
	fileSystem afero.Fs
	options    Options
	ignored    map[string]struct{}
	handler    func(Event) error
}

// Stream walks options.Root pre-order on fileSystem and hands every surviving
// directory and file to handler as soon as it is listed. Ignored directories are
// dropped from their parent's listing and never opened. A nil fileSystem uses the
// host filesystem.
func Stream(fileSystem afero.Fs, options Options, handler func(Event) error) error {
	if handler == nil {
		return fmt.Errorf("tree: event handler is nil")
	}
	if options.Root == "" {
		return fmt.Errorf("tree: root path is empty")
	}
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}

	ctx := streamContext{
		fileSystem: fileSystem,
		options:    options,
		ignored:    options.ignoreSet(),
		handler:    handler,
	}
	if ctx.options.Warn == nil {
		ctx.options.Warn = func(string, error) {}
	}

	info, statErr := fileSystem.Stat(options.Root)
	if statErr != nil {
		return &FileSystemError{Op: opStat, Path: options.Root, Err: statErr}
	}
	if !info.IsDir() {
		return &FileSystemError{Op: opStat, Path: options.Root, Err: ErrNotDirectory}
	}

	return ctx.walkDirectory(options.Root, rootDisplayName(options.Root), 0)
}

func (ctx *streamContext) walkDirectory(path string, name string, depth int) error {
	listing, listErr := ctx.list(path)
	if listErr != nil {
		if depth > 0 && ctx.options.ErrorPolicy == ErrorPolicySkip {
			ctx.options.Warn(path, listErr)
			return nil
		}
		return listErr
	}

	if err := ctx.handler(Event{Kind: EventDirectory, Path: path, Name: name, Depth: depth}); err != nil {
		return err
	}

	for _, fileName := range listing.files {
		fileEvent := Event{Kind: EventFile, Path: filepath.Join(path, fileName), Name: fileName, Depth: depth + 1}
		if err := ctx.handler(fileEvent); err != nil {
			return err
		}
	}

	for _, directoryName := range listing.directories {
		if err := ctx.walkDirectory(filepath.Join(path, directoryName), directoryName, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// list reads the immediate children of path and releases the handle before returning.
func (ctx *streamContext) list(path string) (directoryListing, error) {
	handle, openErr := ctx.fileSystem.Open(path)
	if openErr != nil {
		return directoryListing{}, &FileSystemError{Op: opOpen, Path: path, Err: openErr}
	}
	entries, readErr := handle.Readdir(-1)
	closeErr := handle.Close()
	if readErr != nil {
		return directoryListing{}, &FileSystemError{Op: opList, Path: path, Err: readErr}
	}
	if closeErr != nil {
		return directoryListing{}, &FileSystemError{Op: opClose, Path: path, Err: closeErr}
	}

	var listing directoryListing
	for _, entry := range entries {
		entryName := entry.Name()
		if !entry.IsDir() {
			listing.files = append(listing.files, entryName)
			continue
		}
		if _, isIgnored := ctx.ignored[entryName]; isIgnored {
			continue
		}
		listing.directories = append(listing.directories, entryName)
	}

	if ctx.options.Order != OrderNative {
		sort.Strings(listing.files)
		sort.Strings(listing.directories)
	}
	return listing, nil
}

// rootDisplayName returns the basename shown for the root. The filesystem root
// has no basename and renders as a bare separator.
func rootDisplayName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == string(filepath.Separator) {
		return ""
	}
	return base
}
