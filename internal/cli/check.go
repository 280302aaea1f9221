package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/commitguard/internal/config"
	"github.com/dshills/commitguard/internal/gitctx"
	"github.com/dshills/commitguard/internal/guard"
	"github.com/dshills/commitguard/internal/logger"
	"github.com/dshills/commitguard/internal/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Decide a Claude Code PreToolUse event read from stdin",
	Long: `Reads a PreToolUse hook event from stdin. When the event is a Bash command
containing "git commit", staged files are checked and a deny decision is
written to stdout if anything looks like a secret. Otherwise nothing is
written. The exit code is always 0.

Configure it in .claude/settings.json (see "commitguard hook snippet"):

  {
    "hooks": {
      "PreToolUse": [
        {"matcher": "Bash", "hooks": [{"type": "command", "command": "commitguard check"}]}
      ]
    }
  }`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCheck(gitctx.New(""), os.Stdin, cmd.OutOrStdout())
		exitCode = ExitSuccess
	},
}

// runCheck never fails: configuration problems fall back to the built-in
// rules so a broken setup cannot block commits. Configuration is only
// loaded for commit events, since the hook runs before every Bash command.
func runCheck(repo *gitctx.Repo, in io.Reader, out io.Writer) {
	log := logger.New("check")

	data, err := io.ReadAll(in)
	if err != nil {
		log.Debug("reading event: %v", err)
		return
	}
	if event, err := guard.ParseEvent(data); err != nil || !event.IsCommit() {
		return
	}

	set := rules.Default()
	cfg, err := config.Load(projectRoot(repo), buildOverrides())
	if err != nil {
		log.Debug("loading config, using defaults: %v", err)
	} else {
		applyLogging(cfg)
		if s, err := cfg.RuleSet(); err != nil {
			log.Debug("compiling rules, using defaults: %v", err)
		} else {
			set = s
		}
	}

	if err := guard.New(set, repo).Run(bytes.NewReader(data), out); err != nil {
		log.Debug("%v", err)
	}
}
