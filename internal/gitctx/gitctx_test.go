package gitctx

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "\n\n", nil},
		{"single", "main.go\n", []string{"main.go"}},
		{"multiple", "a.go\nb/c.go\n", []string{"a.go", "b/c.go"}},
		{"crlf", "a.go\r\nb.go\r\n", []string{"a.go", "b.go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("splitLines(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitLines(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// setupTestRepo creates a temp git repo with one committed file and returns
// its path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()

	gitRun(t, dir, "init")
	gitRun(t, dir, "checkout", "-b", "main")

	writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n")
	gitRun(t, dir, "add", "-A")
	gitRun(t, dir, "commit", "-m", "init")

	return dir
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStagedFiles_Clean(t *testing.T) {
	dir := setupTestRepo(t)

	files, err := New(dir).StagedFiles()
	if err != nil {
		t.Fatalf("StagedFiles error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %v, want no staged files", files)
	}
}

func TestStagedFiles_AfterAdd(t *testing.T) {
	dir := setupTestRepo(t)
	writeFile(t, dir, ".env", "DB_PASSWORD=x\n")
	writeFile(t, dir, "pkg/util.go", "package pkg\n")
	writeFile(t, dir, "untracked.txt", "not staged\n")
	gitRun(t, dir, "add", ".env", "pkg/util.go")

	files, err := New(dir).StagedFiles()
	if err != nil {
		t.Fatalf("StagedFiles error: %v", err)
	}
	want := []string{".env", "pkg/util.go"}
	if len(files) != len(want) {
		t.Fatalf("got %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestStagedDiff(t *testing.T) {
	dir := setupTestRepo(t)
	writeFile(t, dir, "config.py", "password = \"hunter22\"\n")
	writeFile(t, dir, "other.py", "x = 1\n")
	gitRun(t, dir, "add", "config.py", "other.py")

	diff, err := New(dir).StagedDiff("config.py")
	if err != nil {
		t.Fatalf("StagedDiff error: %v", err)
	}
	if !strings.Contains(diff, "+password = \"hunter22\"") {
		t.Errorf("diff missing staged line:\n%s", diff)
	}
	if strings.Contains(diff, "other.py") {
		t.Error("diff should be limited to the requested path")
	}
}

func TestStagedFiles_NotARepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	if _, err := New(dir).StagedFiles(); err == nil {
		t.Error("expected error outside a repository")
	}
}

func TestRootAndHookPath(t *testing.T) {
	dir := setupTestRepo(t)
	r := New(dir)

	root, err := r.Root()
	if err != nil {
		t.Fatalf("Root error: %v", err)
	}
	wantRoot, _ := filepath.EvalSymlinks(dir)
	gotRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("Root = %q, want %q", gotRoot, wantRoot)
	}

	hook, err := r.HookPath()
	if err != nil {
		t.Fatalf("HookPath error: %v", err)
	}
	if !strings.HasSuffix(filepath.ToSlash(hook), ".git/hooks/pre-commit") {
		t.Errorf("HookPath = %q, want suffix .git/hooks/pre-commit", hook)
	}
}
