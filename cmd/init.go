package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"winzigc/pkg/utils"
)

var initCmd = &cobra.Command{
	Use:   "init [flags] [directory]",
	Short: "Write a default winzigc configuration file",
	Long: `Write a .winzigc.yaml (or .winzigc.toml with --toml) configuration file
holding the default settings into the given directory, or the working directory.
The file is picked up automatically by every command run from that directory.

Examples:
  # Initialize the current directory
  winzigc init

  # Initialize a project with a TOML file, replacing an existing one
  winzigc init --toml --overwrite src/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var (
	overwrite  bool
	initTOML   bool
	initOutDir string
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing configuration file")
	initCmd.Flags().BoolVar(&initTOML, "toml", false, "Write .winzigc.toml instead of .winzigc.yaml")
	initCmd.Flags().StringVar(&initOutDir, "output-dir", "", "Directory saved trees go to")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) == 1 {
		targetDir = args[0]
	}

	info, err := os.Stat(targetDir)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", targetDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", targetDir)
	}

	name := configNames[0]
	if initTOML {
		name = configNames[2]
	}
	configPath := filepath.Join(targetDir, name)

	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return fmt.Errorf("%s already exists, use --overwrite to replace it", configPath)
	}

	config := DefaultConfig()
	config.OutputDir = initOutDir
	if err := writeConfig(configPath, config); err != nil {
		return err
	}

	files, err := utils.FindSourceFiles(targetDir, config.Extensions, config.Exclude)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", targetDir, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", configPath)
	fmt.Fprintf(out, "Found %d WinZig source files\n", len(files))
	return nil
}
