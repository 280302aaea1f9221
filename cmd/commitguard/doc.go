// Commitguard blocks commits that stage secrets.
//
// It checks staged file names and staged diff content against a small set of
// heuristics (dotenv files, key material, password/token/API key
// assignments) and refuses the commit when anything matches. It runs either
// as a Claude Code PreToolUse hook or as a plain git pre-commit hook.
//
// Usage:
//
//	commitguard check                 # decide a PreToolUse event from stdin
//	commitguard scan                  # report on the staged set, exit 1 on issues
//	commitguard scan --format sarif   # SARIF report for code scanning tools
//	commitguard hook install          # run scan from .git/hooks/pre-commit
//	commitguard hook snippet          # print the .claude/settings.json entry
//	commitguard config show           # print the effective configuration
package main
