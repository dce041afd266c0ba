package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"winzigc/pkg/log"
)

// Version information
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	// Persistent flags
	cfgFile  string
	logLevel string
	noColor  bool

	// Set up by PersistentPreRunE before any subcommand runs
	cfg    = DefaultConfig()
	logger = log.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "winzigc",
	Short: "A parser for the WinZig teaching language",
	Long: `winzigc scans and parses WinZig programs. It checks that a program
conforms to the WinZig grammar and builds the labeled ordinal tree that mirrors
the productions used to recognize it. Trees can be printed as the classic
indented dump or as JSON and YAML.`,
	Version:           getVersionString(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "winzigc %s\n", getVersionString())
		fmt.Fprintf(out, "  Version: %s\n", version)
		fmt.Fprintf(out, "  Commit:  %s\n", commit)
		fmt.Fprintf(out, "  Date:    %s\n", date)
	},
}

func getVersionString() string {
	if version == "dev" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

func Execute() error {
	return rootCmd.Execute()
}

// setup loads the configuration and the logger shared by all subcommands
func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	loaded, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel = logLevel
	}

	level, err := log.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = log.NewTerminal(level)
	return nil
}

// setLogLevel replaces the shared logger with one at level
func setLogLevel(level slog.Level) {
	logger = log.NewTerminal(level)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default .winzigc.yaml or .winzigc.toml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
