// Copyright (c) 2026 Keymaster Team
// Keyselect - terminal select widget
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its flags and the shared bootstrap that
// every command runs before its own work.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keyselect/buildvars"
	"github.com/toeirei/keyselect/internal/config"
	"github.com/toeirei/keyselect/internal/i18n"
	"github.com/toeirei/keyselect/internal/logging"
	"github.com/toeirei/keyselect/ui/tui"
	"golang.org/x/term"
)

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool

var appConfig config.Config

// isTerminal is swapped out in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// runTUI is swapped out in tests.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optional_config_path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optional_config_path)
	// A "file not found" error is expected on first run
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if path, pathErr := config.GetConfigPath(false); pathErr == nil {
			if writeErr := config.WriteConfigFileTo(&appConfig, path); writeErr != nil {
				// the app can run on defaults
				logging.Warnf("could not write default config file: %v", writeErr)
			} else {
				logging.Infof("wrote default config to %s", path)
			}
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	if _, ok := i18n.GetAvailableLocales()[appConfig.Language]; !ok {
		return errors.New(i18n.T("cli.error_language", appConfig.Language))
	}
	i18n.Init(appConfig.Language)

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if verbose {
		logging.SetDebug(true)
	}
	logging.Debugf("config loaded: %d options, multiple=%v, output=%s, language=%s", len(appConfig.Options), appConfig.Multiple, appConfig.Output, i18n.GetLang())

	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	if buildvars.Version == "" {
		v, _, _ := resolveBuildVersion(nil)
		buildvars.Version = v
	}

	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "keyselect",
		Short:             i18n.T("cli.short"),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd)
		},
	}
	// cobra answers --version itself, before any pre-run hook
	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, i18n.T("cli.flag_verbose"))
	cmd.Flags().BoolP("version", "V", false, i18n.T("cli.flag_version"))
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", i18n.T("cli.flag_config"))
	cmd.PersistentFlags().String("language", "en", i18n.T("cli.flag_language"))
	cmd.PersistentFlags().StringP("output", "o", "text", i18n.T("cli.flag_output"))
	cmd.Flags().BoolP("multiple", "m", true, i18n.T("cli.flag_multiple"))

	// Add a lightweight `version` subcommand so users and CI can run `keyselect version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		// no config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", v)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newOptionsCmd(),
		versionCmd,
	)

	return cmd
}

// runSelect shows the select box and prints what the user picked.
func runSelect(cmd *cobra.Command) error {
	format, err := parseOutputFormat(appConfig.Output)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return errors.New(i18n.T("cli.error_terminal"))
	}

	// keep the alternate screen free of log lines
	restore, err := redirectLogs(appConfig.Log.File)
	if err != nil {
		return err
	}
	selection, err := runTUI(cmd.Context(), tui.Config{
		Options:  toOptions(appConfig.Options),
		Multiple: appConfig.Multiple,
		Output:   os.Stderr,
	})
	restore()

	if errors.Is(err, tui.ErrAborted) {
		return errors.New(i18n.T("cli.error_aborted"))
	}
	if err != nil {
		return err
	}
	return writeOptions(cmd.OutOrStdout(), format, selection)
}

// redirectLogs sends log output to path, or discards it when path is empty,
// until the returned function is called.
func redirectLogs(path string) (func(), error) {
	if path == "" {
		logging.SetOutput(io.Discard)
		return func() { logging.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}
	logging.SetOutput(f)
	return func() {
		logging.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	return compositeVersion
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/keyselect" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, show the commit provided via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
