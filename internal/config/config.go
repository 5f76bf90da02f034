// Package config resolves traversal settings from defaults, configuration files and flags.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	// DefaultRootPath is rendered when no path is supplied.
	DefaultRootPath = "."
	// IgnoreFileName lists additional directory names to skip, one per line, in the rendered root.
	IgnoreFileName = ".dirtreeignore"

	commentPrefix = "#"
)

// DefaultIgnoreNames returns the directory names skipped unless defaults are disabled.
func DefaultIgnoreNames() []string {
	return []string{utils.GitDirectoryName, "node_modules", "__pycache__", ".vscode", "dist", "build"}
}

// LoadIgnoreFileNames reads directory names from an ignore file on fileSystem.
// Blank lines and lines starting with # are skipped, as is a trailing slash on a
// name. A file that cannot be opened yields no names unless access to it is
// denied; root problems are left for the traversal to report.
func LoadIgnoreFileNames(fileSystem afero.Fs, ignoreFilePath string) ([]string, error) {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	fileHandle, openFileError := fileSystem.Open(ignoreFilePath)
	if openFileError != nil {
		if errors.Is(openFileError, fs.ErrPermission) {
			return nil, fmt.Errorf("load ignore file: %w", openFileError)
		}
		return nil, nil
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var names []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		names = append(names, strings.TrimSuffix(trimmedLine, "/"))
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf("load ignore file: %w", scanError)
	}
	return names, nil
}

// ResolveTreeOptions combines a merged configuration with names supplied on the
// command line into traversal options. Ignore names are assembled in the order
// defaults, configuration, ignore file, extra names, with duplicates removed.
func ResolveTreeOptions(fileSystem afero.Fs, configuration TreeConfiguration, extraIgnoreNames []string) (tree.Options, error) {
	errorPolicy, policyErr := tree.ParseErrorPolicy(configuration.OnError)
	if policyErr != nil {
		return tree.Options{}, policyErr
	}
	order, orderErr := tree.ParseOrder(configuration.Order)
	if orderErr != nil {
		return tree.Options{}, orderErr
	}

	root := configuration.Root
	if root == "" {
		root = DefaultRootPath
	}

	var ignoreNames []string
	if configuration.UseDefaultIgnore == nil || *configuration.UseDefaultIgnore {
		ignoreNames = append(ignoreNames, DefaultIgnoreNames()...)
	}
	ignoreNames = append(ignoreNames, configuration.Ignore...)
	if configuration.UseIgnoreFile == nil || *configuration.UseIgnoreFile {
		fileNames, loadErr := LoadIgnoreFileNames(fileSystem, filepath.Join(root, IgnoreFileName))
		if loadErr != nil {
			return tree.Options{}, loadErr
		}
		ignoreNames = append(ignoreNames, fileNames...)
	}
	ignoreNames = append(ignoreNames, extraIgnoreNames...)

	return tree.Options{
		Root:        root,
		IgnoreNames: utils.DeduplicateNames(ignoreNames),
		ErrorPolicy: errorPolicy,
		Order:       order,
	}, nil
}
