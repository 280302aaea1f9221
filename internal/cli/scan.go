package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/commitguard/internal/config"
	"github.com/dshills/commitguard/internal/gitctx"
	"github.com/dshills/commitguard/internal/guard"
	"github.com/dshills/commitguard/internal/output"
)

var (
	flagFormat string
	flagOut    string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Check staged files and print a report",
	Long: `Checks every staged file against the sensitivity rules and prints a report.
Exits 1 when issues are found, so it can run directly as a git pre-commit hook.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runScan(gitctx.New(""))
		return nil
	},
}

func runScan(repo *gitctx.Repo) {
	root, err := repo.Root()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	cfg, err := config.Load(root, buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		exitCode = ExitUsageError
		return
	}
	applyLogging(cfg)

	set, err := cfg.RuleSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}

	res := guard.New(set, repo).Scan()
	report := output.NewReport(version, root, res)

	// color.NoColor is set when stdout is not a terminal.
	useColor := !cfg.NoColor && !color.NoColor
	if err := output.WriteReport(report, cfg.Format, flagOut, useColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if len(res.Issues) > 0 {
		exitCode = ExitFindings
		return
	}
	exitCode = ExitSuccess
}

func init() {
	scanCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, sarif)")
	scanCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
