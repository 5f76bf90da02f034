package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes .dirtree.yaml into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes config.yaml into ~/.dirtree.
	InitTargetGlobal InitTarget = "global"

	configurationFileMode      = 0o600
	configurationDirectoryMode = 0o755
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

type configurationDocument struct {
	Tree treeDocument `yaml:"tree"`
}

// treeDocument spells the default ignore list out explicitly so it can be edited in place.
type treeDocument struct {
	Root             string   `yaml:"root"`
	Ignore           []string `yaml:"ignore"`
	UseDefaultIgnore bool     `yaml:"use_default_ignore"`
	UseIgnoreFile    bool     `yaml:"use_ignore_file"`
	OnError          string   `yaml:"on_error"`
	Order            string   `yaml:"order"`
}

// DefaultConfigurationDocument renders the configuration written by InitializeConfiguration.
func DefaultConfigurationDocument() ([]byte, error) {
	document := configurationDocument{Tree: treeDocument{
		Root:             DefaultRootPath,
		Ignore:           DefaultIgnoreNames(),
		UseDefaultIgnore: false,
		UseIgnoreFile:    true,
		OnError:          string(tree.ErrorPolicyAbort),
		Order:            string(tree.OrderSorted),
	}}
	return yaml.Marshal(document)
}

// InitializeConfiguration writes the default configuration to the requested
// target and returns its path. An existing file is only replaced with Force.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, resolveErr := resolveInitDestination(options)
	if resolveErr != nil {
		return "", resolveErr
	}

	_, statErr := os.Stat(destinationPath)
	switch {
	case statErr == nil && !options.Force:
		return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
	case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, statErr)
	}

	content, renderErr := DefaultConfigurationDocument()
	if renderErr != nil {
		return "", fmt.Errorf("render default configuration: %w", renderErr)
	}
	if writeErr := os.WriteFile(destinationPath, content, configurationFileMode); writeErr != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, writeErr)
	}
	return destinationPath, nil
}

func resolveInitDestination(options InitOptions) (string, error) {
	switch options.Target {
	case "", InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		return filepath.Join(workingDirectory, utils.LocalConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory for configuration: %w", err)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if err := os.MkdirAll(configurationDirectory, configurationDirectoryMode); err != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
		return filepath.Join(configurationDirectory, utils.ConfigFileName), nil
	default:
		return "", fmt.Errorf("unsupported init target %q", options.Target)
	}
}
