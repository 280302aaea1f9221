package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/commitguard/internal/config"
	"github.com/dshills/commitguard/internal/gitctx"
	"github.com/dshills/commitguard/internal/logger"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitFindings     = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

// Persistent flags
var (
	flagLogLevel string
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "commitguard",
	Short: "Block commits that stage secrets",
	Long: `Commitguard checks staged files for names and diff content that look like
secrets (passwords, API keys, tokens, private keys).

Run "commitguard check" as a Claude Code PreToolUse hook, or
"commitguard hook install" to run "commitguard scan" as a git pre-commit hook.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := flagLogLevel
		if level == "" {
			level = os.Getenv("COMMITGUARD_LOG_LEVEL")
		}
		if lvl, err := logger.ParseLevel(level); err == nil {
			logger.SetGlobalLevel(lvl)
		}
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			logger.SetColored(false)
		}
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print commitguard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "commitguard version %s\n", version)
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	if flagNoColor {
		m["noColor"] = "true"
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

// projectRoot returns the repository root, or "" outside a repository.
func projectRoot(repo *gitctx.Repo) string {
	root, err := repo.Root()
	if err != nil {
		return ""
	}
	return root
}

// applyLogging configures the global logger from cfg.
func applyLogging(cfg config.Config) {
	if lvl, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetGlobalLevel(lvl)
	}
	logger.SetColored(!cfg.NoColor)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
