package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/dirtree/internal/utils"
)

type configTestCase struct {
	name                   string
	globalContent          string
	localContent           string
	explicitPath           string
	explicitContent        string
	expectRoot             string
	expectIgnore           []string
	expectUseDefaultIgnore *bool
	expectOnError          string
	expectOrder            string
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:                   "local_overrides_global",
			globalContent:          "tree:\n  ignore: [target]\n  on_error: skip\n  order: native\n",
			localContent:           "tree:\n  root: src\n  ignore:\n    - coverage\n    - coverage\n  use_default_ignore: false\n  order: sorted\n",
			expectRoot:             "src",
			expectIgnore:           []string{"coverage"},
			expectUseDefaultIgnore: boolPointer(false),
			expectOnError:          "skip",
			expectOrder:            "sorted",
		},
		{
			name:            "explicit_path_replaces_local",
			globalContent:   "tree:\n  on_error: skip\n",
			localContent:    "tree:\n  root: ignored\n",
			explicitPath:    "custom.yaml",
			explicitContent: "tree:\n  root: explicit\n",
			expectRoot:      "explicit",
			expectIgnore:    []string{},
			expectOnError:   "skip",
		},
		{
			name:         "no_files",
			expectIgnore: []string{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				writeTestFile(t, filepath.Join(configDir, utils.ConfigFileName), testCase.globalContent)
			}
			if testCase.localContent != "" {
				writeTestFile(t, filepath.Join(workingDir, utils.LocalConfigFileName), testCase.localContent)
			}
			if testCase.explicitPath != "" {
				writeTestFile(t, filepath.Join(workingDir, testCase.explicitPath), testCase.explicitContent)
			}

			t.Setenv("HOME", homeDir)
			t.Setenv("USERPROFILE", homeDir)

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
			})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}

			treeConfig := loadedConfig.Tree
			if treeConfig.Root != testCase.expectRoot {
				t.Fatalf("expected root %q, got %q", testCase.expectRoot, treeConfig.Root)
			}
			if !reflect.DeepEqual(treeConfig.Ignore, testCase.expectIgnore) {
				t.Fatalf("expected ignore %v, got %v", testCase.expectIgnore, treeConfig.Ignore)
			}
			if !reflect.DeepEqual(treeConfig.UseDefaultIgnore, testCase.expectUseDefaultIgnore) {
				t.Fatalf("unexpected use_default_ignore: %v", treeConfig.UseDefaultIgnore)
			}
			if treeConfig.OnError != testCase.expectOnError {
				t.Fatalf("expected on_error %q, got %q", testCase.expectOnError, treeConfig.OnError)
			}
			if treeConfig.Order != testCase.expectOrder {
				t.Fatalf("expected order %q, got %q", testCase.expectOrder, treeConfig.Order)
			}
		})
	}
}

func TestLoadApplicationConfigurationRequiresExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())

	_, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: t.TempDir(), ExplicitFilePath: "missing.yaml"})
	if err == nil {
		t.Fatalf("expected error for missing explicit configuration")
	}
}

func TestLoadApplicationConfigurationRejectsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	workingDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(workingDir, utils.LocalConfigFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir}); err == nil {
		t.Fatalf("expected error when configuration path is a directory")
	}
}

func TestTreeConfigurationMergeClonesOverrides(t *testing.T) {
	override := TreeConfiguration{UseDefaultIgnore: boolPointer(false)}
	merged := TreeConfiguration{}.Merge(override)
	if merged.UseDefaultIgnore == override.UseDefaultIgnore {
		t.Fatalf("expected pointer fields to be cloned")
	}
	if merged.UseDefaultIgnore == nil || *merged.UseDefaultIgnore {
		t.Fatalf("expected use_default_ignore false, got %v", merged.UseDefaultIgnore)
	}
}

func TestTreeConfigurationMergeKeepsUnsetFields(t *testing.T) {
	base := TreeConfiguration{Root: "a", Ignore: []string{"x"}, UseIgnoreFile: boolPointer(false), OnError: "skip"}
	merged := base.Merge(TreeConfiguration{Order: "native"})

	expected := TreeConfiguration{Root: "a", Ignore: []string{"x"}, UseIgnoreFile: boolPointer(false), OnError: "skip", Order: "native"}
	if !reflect.DeepEqual(merged, expected) {
		t.Fatalf("unexpected merge result: %#v", merged)
	}
}
