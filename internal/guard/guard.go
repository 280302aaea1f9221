package guard

import (
	"io"

	"github.com/dshills/commitguard/internal/logger"
	"github.com/dshills/commitguard/internal/rules"
)

// Repository provides read-only access to the staged changes of a repository.
type Repository interface {
	StagedFiles() ([]string, error)
	StagedDiff(path string) (string, error)
}

// Result is the outcome of scanning the staged set.
type Result struct {
	Files   []string      `json:"files"`
	Skipped []string      `json:"skipped,omitempty"`
	Issues  []rules.Issue `json:"issues"`
}

// Guard checks staged changes against a rule set.
type Guard struct {
	rules *rules.Set
	repo  Repository
	log   *logger.Logger
}

// New creates a Guard. A nil set uses the built-in rules.
func New(set *rules.Set, repo Repository) *Guard {
	if set == nil {
		set = rules.Default()
	}
	return &Guard{
		rules: set,
		repo:  repo,
		log:   logger.New("guard"),
	}
}

// Scan checks every staged file. Git failures are logged at debug level and
// treated as "no files" or "no content".
func (g *Guard) Scan() Result {
	var res Result

	files, err := g.repo.StagedFiles()
	if err != nil {
		g.log.Debug("listing staged files: %v", err)
		return res
	}
	res.Files = files

	for _, path := range files {
		if g.rules.Skipped(path) {
			g.log.Debug("skipping %s", path)
			res.Skipped = append(res.Skipped, path)
			continue
		}

		res.Issues = append(res.Issues, g.rules.CheckName(path)...)

		diff, err := g.repo.StagedDiff(path)
		if err != nil {
			g.log.Debug("reading staged diff of %s: %v", path, err)
			continue
		}
		res.Issues = append(res.Issues, g.rules.CheckContent(path, diff)...)
	}

	return res
}

// Evaluate decides a single event.
func (g *Guard) Evaluate(e Event) Decision {
	if !e.IsCommit() {
		return Decision{}
	}

	res := g.Scan()
	if len(res.Issues) == 0 {
		g.log.Info("%d staged file(s) clean", len(res.Files))
		return Decision{}
	}

	g.log.Info("denying commit: %d issue(s)", len(res.Issues))
	return deny(res.Issues)
}

// Run reads one event from r and writes a deny decision to w when the
// commit must be blocked. Unreadable or malformed input allows silently.
// The only error returned is a failure to write the decision.
func (g *Guard) Run(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		g.log.Debug("reading event: %v", err)
		return nil
	}

	event, err := ParseEvent(data)
	if err != nil {
		g.log.Debug("parsing event: %v", err)
		return nil
	}

	return g.Evaluate(event).Write(w)
}
