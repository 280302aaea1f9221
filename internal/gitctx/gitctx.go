package gitctx

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repo runs git queries against the repository containing Dir. An empty Dir
// means the process working directory.
type Repo struct {
	Dir string
}

// New returns a Repo rooted at dir.
func New(dir string) *Repo {
	return &Repo{Dir: dir}
}

// StagedFiles returns the paths staged for commit, in git's order.
func (r *Repo) StagedFiles() ([]string, error) {
	out, err := r.output("diff", "--cached", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("git diff --cached --name-only: %w", err)
	}
	return splitLines(out), nil
}

// StagedDiff returns the staged diff text for a single path.
func (r *Repo) StagedDiff(path string) (string, error) {
	out, err := r.output("diff", "--cached", "--", path)
	if err != nil {
		return "", fmt.Errorf("git diff --cached -- %s: %w", path, err)
	}
	return out, nil
}

// Root returns the top-level directory of the working tree.
func (r *Repo) Root() (string, error) {
	out, err := r.output("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// HookPath returns the path of the repository's pre-commit hook script.
func (r *Repo) HookPath() (string, error) {
	out, err := r.output("rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("not a git repository (git rev-parse --git-dir failed)")
	}
	gitDir := strings.TrimSpace(out)
	if !filepath.IsAbs(gitDir) && r.Dir != "" {
		gitDir = filepath.Join(r.Dir, gitDir)
	}
	return filepath.Join(gitDir, "hooks", "pre-commit"), nil
}

func (r *Repo) output(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
