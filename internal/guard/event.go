package guard

import (
	"encoding/json"
	"strings"
)

// ShellTool is the tool name the harness uses for shell command execution.
const ShellTool = "Bash"

const commitMarker = "git commit"

// Event is the PreToolUse payload read from stdin. Unknown fields are ignored.
type Event struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input,omitempty"`
}

type toolInput struct {
	Command string `json:"command"`
}

// ParseEvent decodes a hook event.
func ParseEvent(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Command returns tool_input.command, or "" when it is absent or tool_input
// is not an object.
func (e Event) Command() string {
	if len(e.ToolInput) == 0 {
		return ""
	}
	var ti toolInput
	if err := json.Unmarshal(e.ToolInput, &ti); err != nil {
		return ""
	}
	return ti.Command
}

// IsCommit reports whether the event is a shell command mentioning
// "git commit" anywhere in its text. Quoted arguments and comments count.
func (e Event) IsCommit() bool {
	return e.ToolName == ShellTool && strings.Contains(e.Command(), commitMarker)
}
