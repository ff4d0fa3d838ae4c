package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plucheck/config"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active plucheck config file in your editor ($VISUAL, then
$EDITOR, then vi).

If no config file exists yet, a starter one is written first. After the
editor exits the file is validated, so a typo cannot silently break the next
check run.`,
	Example: `
  # Edit active config
  plucheck config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := activeConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := writeTemplateIfMissing(configPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("No config file found. Started one at: %s\n", configPath)
		}

		editor := pickEditor(os.Getenv("VISUAL"), os.Getenv("EDITOR"))
		run, err := editorInvocation(editor, configPath)
		if err != nil {
			return err
		}
		run.Stdin, run.Stdout, run.Stderr = os.Stdin, os.Stdout, os.Stderr
		if err := run.Run(); err != nil {
			return fmt.Errorf("opening editor failed: %w", err)
		}

		content, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("reading edited config failed: %w", err)
		}
		if _, err := config.ValidateYAMLContent(content); err != nil {
			return fmt.Errorf("edited config %s is invalid: %w", configPath, err)
		}

		fmt.Printf("Configuration saved and validated: %s\n", configPath)
		return nil
	},
}

// activeConfigPath picks the config file to operate on: the --configFile
// flag, then whatever viper loaded, then the default home location.
func activeConfigPath(flagPath, loadedPath string) (string, error) {
	for _, path := range []string{flagPath, loadedPath} {
		if strings.TrimSpace(path) != "" {
			return path, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".plucheck.yaml"), nil
}

// writeTemplateIfMissing puts the commented example config at path unless a
// file is already there. Reports whether it wrote anything.
func writeTemplateIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config file failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory failed: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, fmt.Errorf("writing example config failed: %w", err)
	}
	return true, nil
}

func pickEditor(visual, editor string) string {
	if strings.TrimSpace(visual) != "" {
		return visual
	}
	if strings.TrimSpace(editor) != "" {
		return editor
	}
	return "vi"
}

func editorInvocation(editorValue, configPath string) (*exec.Cmd, error) {
	fields := strings.Fields(strings.TrimSpace(editorValue))
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	return exec.Command(fields[0], append(fields[1:], configPath)...), nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
