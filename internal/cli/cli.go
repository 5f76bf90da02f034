// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/output"
	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	exclusionFlagName    = "exclude"
	exclusionFlagShort   = "e"
	noDefaultsFlagName   = "no-defaults"
	noIgnoreFileFlagName = "no-ignore-file"
	configFlagName       = "config"
	onErrorFlagName      = "on-error"
	orderFlagName        = "order"
	versionFlagName      = "version"
	globalFlagName       = "global"
	forceFlagName        = "force"
	versionTemplate      = "dirtree version: %s\n"
	rootUse              = "dirtree [path]"
	rootShortDescription = "print an indented directory tree"
	rootLongDescription  = `dirtree prints an indented tree of a directory, one line per directory and file.
Directories named in the ignore set are skipped together with everything below them.
The default ignore set is .git, node_modules, __pycache__, .vscode, dist and build.`
	rootUsageExample = `  # Render the current directory
  dirtree

  # Render ./web and also skip coverage directories
  dirtree -e coverage ./web

  # Keep going past unreadable directories
  dirtree --on-error skip /srv`

	initUse                  = "init"
	initShortDescription     = "write a default configuration file"
	initLongDescription      = `Write the default configuration to .dirtree.yaml in the working directory, or to ~/.dirtree/config.yaml with --global.`
	initWrittenFormat        = "configuration written to %s\n"
	exclusionFlagDescription = "additional directory name to skip (repeatable)"
	noDefaultsDescription    = "do not skip the default directory names"
	noIgnoreFileDescription  = "do not read " + config.IgnoreFileName + " from the root"
	configFlagDescription    = "configuration file (default ./" + utils.LocalConfigFileName + ")"
	onErrorFlagDescription   = "handling of unreadable directories"
	orderFlagDescription     = "entry order within a directory"
	versionFlagDescription   = "display application version"
	globalFlagDescription    = "write the global configuration instead of the local one"
	forceFlagDescription     = "overwrite an existing configuration file"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	skippedDirectoryMessage     = "skipping unreadable directory"
	logFieldPath                = "path"
)

// Execute runs the dirtree application.
func Execute(logger *zap.Logger) error {
	return NewRootCommand(logger).Execute()
}

// NewRootCommand builds the root command rendering trees from the host filesystem.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	return newRootCommand(logger, afero.NewOsFs())
}

// treeFlagValues stores values of the traversal flags.
type treeFlagValues struct {
	exclusionNames []string
	noDefaults     bool
	noIgnoreFile   bool
	configPath     string
	onError        string
	order          string
	showVersion    bool
}

func newRootCommand(logger *zap.Logger, fileSystem afero.Fs) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	var flagValues treeFlagValues

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if flagValues.showVersion {
				_, err := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return err
			}
			options, resolveErr := resolveTreeOptions(command, fileSystem, arguments, flagValues)
			if resolveErr != nil {
				return resolveErr
			}
			options.Warn = func(path string, err error) {
				logger.Warn(skippedDirectoryMessage, zap.String(logFieldPath, path), zap.Error(err))
			}
			return output.RenderDocument(fileSystem, options, command.OutOrStdout())
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringArrayVarP(&flagValues.exclusionNames, exclusionFlagName, exclusionFlagShort, nil, exclusionFlagDescription)
	flagSet.BoolVar(&flagValues.noDefaults, noDefaultsFlagName, false, noDefaultsDescription)
	flagSet.BoolVar(&flagValues.noIgnoreFile, noIgnoreFileFlagName, false, noIgnoreFileDescription)
	flagSet.StringVar(&flagValues.configPath, configFlagName, "", configFlagDescription)
	registerChoiceFlag(flagSet, &flagValues.onError, onErrorFlagName, string(tree.ErrorPolicyAbort),
		[]string{string(tree.ErrorPolicyAbort), string(tree.ErrorPolicySkip)}, onErrorFlagDescription)
	registerChoiceFlag(flagSet, &flagValues.order, orderFlagName, string(tree.OrderSorted),
		[]string{string(tree.OrderSorted), string(tree.OrderNative)}, orderFlagDescription)
	flagSet.BoolVar(&flagValues.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// resolveTreeOptions layers explicitly set flags over the file configuration.
func resolveTreeOptions(command *cobra.Command, fileSystem afero.Fs, arguments []string, flagValues treeFlagValues) (tree.Options, error) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return tree.Options{}, fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, loadErr := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: flagValues.configPath,
	})
	if loadErr != nil {
		return tree.Options{}, loadErr
	}

	var flagConfiguration config.TreeConfiguration
	if len(arguments) > 0 {
		flagConfiguration.Root = arguments[0]
	}
	changed := command.Flags().Changed
	if changed(noDefaultsFlagName) {
		useDefaults := !flagValues.noDefaults
		flagConfiguration.UseDefaultIgnore = &useDefaults
	}
	if changed(noIgnoreFileFlagName) {
		useIgnoreFile := !flagValues.noIgnoreFile
		flagConfiguration.UseIgnoreFile = &useIgnoreFile
	}
	if changed(onErrorFlagName) {
		flagConfiguration.OnError = flagValues.onError
	}
	if changed(orderFlagName) {
		flagConfiguration.Order = flagValues.order
	}

	return config.ResolveTreeOptions(fileSystem, applicationConfiguration.Tree.Merge(flagConfiguration), flagValues.exclusionNames)
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			path, err := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(command.OutOrStdout(), initWrittenFormat, path)
			return err
		},
	}
	initCommand.Flags().BoolVar(&global, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}
