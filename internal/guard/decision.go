package guard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/commitguard/internal/rules"
)

const (
	hookEventName = "PreToolUse"
	reasonHeader  = "Security check failed. Fix the following issues before committing:"
)

// Decision is the outcome for one event. The zero value allows.
type Decision struct {
	Deny   bool
	Reason string
	Issues []rules.Issue
}

// HookOutput is the JSON document written to stdout on deny.
type HookOutput struct {
	HookSpecificOutput HookSpecificOutput `json:"hookSpecificOutput"`
}

// HookSpecificOutput carries the permission decision for the harness.
type HookSpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason"`
}

func deny(issues []rules.Issue) Decision {
	return Decision{
		Deny:   true,
		Reason: FormatReason(issues),
		Issues: issues,
	}
}

// FormatReason renders issues as the human-readable deny reason.
func FormatReason(issues []rules.Issue) string {
	lines := make([]string, 0, len(issues))
	for _, is := range issues {
		lines = append(lines, "  - "+is.String())
	}
	return reasonHeader + "\n" + strings.Join(lines, "\n")
}

// Output returns the hook document for a deny decision, or nil on allow.
func (d Decision) Output() *HookOutput {
	if !d.Deny {
		return nil
	}
	return &HookOutput{
		HookSpecificOutput: HookSpecificOutput{
			HookEventName:            hookEventName,
			PermissionDecision:       "deny",
			PermissionDecisionReason: d.Reason,
		},
	}
}

// Write encodes the decision to w as a single JSON line. Allow writes nothing.
func (d Decision) Write(w io.Writer) error {
	out := d.Output()
	if out == nil {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing decision: %w", err)
	}
	return nil
}
