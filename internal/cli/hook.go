package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/commitguard/internal/gitctx"
)

const (
	hookMarkerStart = "# >>> commitguard pre-commit hook >>>"
	hookMarkerEnd   = "# <<< commitguard pre-commit hook <<<"
)

var hookFormat string

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the git pre-commit hook and print Claude Code hook settings",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install commitguard as a git pre-commit hook",
	RunE: func(cmd *cobra.Command, args []string) error {
		hookPath, err := gitctx.New("").HookPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if err := installHook(hookPath, generateHookScript(hookFormat)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "Installed commitguard pre-commit hook at %s\n", hookPath)
		return nil
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove commitguard pre-commit hook",
	RunE: func(cmd *cobra.Command, args []string) error {
		hookPath, err := gitctx.New("").HookPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		msg, err := uninstallHook(hookPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintln(os.Stdout, msg)
		return nil
	},
}

var hookSnippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Print the .claude/settings.json entry that runs commitguard check",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := claudeSettingsSnippet()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

// installHook writes or refreshes the commitguard section of the hook file.
func installHook(hookPath, section string) error {
	existing, err := os.ReadFile(hookPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading hook file: %w", err)
	}

	var content string
	if os.IsNotExist(err) || len(existing) == 0 {
		content = "#!/bin/sh\n" + section
	} else {
		content = replaceGuardSection(string(existing), section)
	}

	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return fmt.Errorf("creating hooks directory: %w", err)
	}
	if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
		return fmt.Errorf("writing hook file: %w", err)
	}
	return nil
}

// uninstallHook removes the commitguard section, deleting the file when
// nothing else remains. It returns a message for the user.
func uninstallHook(hookPath string) (string, error) {
	existing, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "No pre-commit hook found.", nil
		}
		return "", fmt.Errorf("reading hook file: %w", err)
	}

	content := removeGuardSection(string(existing))

	// If only shebang (and whitespace) remains, delete the file entirely
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || trimmed == "#!/bin/sh" || trimmed == "#!/bin/bash" {
		if err := os.Remove(hookPath); err != nil {
			return "", fmt.Errorf("removing hook file: %w", err)
		}
		return fmt.Sprintf("Removed commitguard pre-commit hook at %s", hookPath), nil
	}

	if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
		return "", fmt.Errorf("writing hook file: %w", err)
	}
	return fmt.Sprintf("Removed commitguard section from %s", hookPath), nil
}

func generateHookScript(format string) string {
	var b strings.Builder
	b.WriteString(hookMarkerStart + "\n")
	b.WriteString(fmt.Sprintf("commitguard scan --format %s\n", format))
	b.WriteString("COMMITGUARD_EXIT=$?\n")
	b.WriteString("if [ $COMMITGUARD_EXIT -eq 1 ]; then\n")
	b.WriteString("  echo \"commitguard: sensitive content staged, commit blocked\"\n")
	b.WriteString("  exit 1\n")
	b.WriteString("elif [ $COMMITGUARD_EXIT -ge 2 ]; then\n")
	b.WriteString("  echo \"commitguard: warning — scan failed (exit $COMMITGUARD_EXIT), allowing commit\"\n")
	b.WriteString("fi\n")
	b.WriteString(hookMarkerEnd + "\n")
	return b.String()
}

func replaceGuardSection(existing, section string) string {
	startIdx := strings.Index(existing, hookMarkerStart)
	endIdx := strings.Index(existing, hookMarkerEnd)

	if startIdx == -1 || endIdx == -1 {
		if !strings.HasSuffix(existing, "\n") {
			existing += "\n"
		}
		return existing + section
	}

	before := existing[:startIdx]
	after := existing[endIdx+len(hookMarkerEnd):]
	// Trim leading newline from after to avoid double newlines
	after = strings.TrimPrefix(after, "\n")
	return before + section + after
}

func removeGuardSection(existing string) string {
	startIdx := strings.Index(existing, hookMarkerStart)
	endIdx := strings.Index(existing, hookMarkerEnd)

	if startIdx == -1 || endIdx == -1 {
		return existing
	}

	before := existing[:startIdx]
	after := existing[endIdx+len(hookMarkerEnd):]
	after = strings.TrimPrefix(after, "\n")

	return before + after
}

type claudeHookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

type claudeHookMatcher struct {
	Matcher string              `json:"matcher"`
	Hooks   []claudeHookCommand `json:"hooks"`
}

func claudeSettingsSnippet() ([]byte, error) {
	settings := map[string]map[string][]claudeHookMatcher{
		"hooks": {
			"PreToolUse": {
				{
					Matcher: "Bash",
					Hooks:   []claudeHookCommand{{Type: "command", Command: "commitguard check"}},
				},
			},
		},
	}
	return json.MarshalIndent(settings, "", "  ")
}

func init() {
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	hookCmd.AddCommand(hookSnippetCmd)
	hookInstallCmd.Flags().StringVar(&hookFormat, "format", "text", "Report format used by the hook (text, json, sarif)")
}
