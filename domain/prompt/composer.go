// Package prompt builds the instruction sequence sent to the completion
// service: persona rules, relevant memories, then the user's input.
package prompt

import (
	"fmt"
	"strings"

	"valet-backend/domain/memory"
)

// Role tags a message block for the completion service.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged text block of a composed prompt.
type Message struct {
	Role    Role
	Content string
}

// Composer assembles prompt bundles from a fixed persona and ranked notes.
type Composer struct {
	persona  string
	maxNotes int
}

// NewComposer creates a composer. maxNotes caps how many ranked notes are
// injected per prompt; values below 1 fall back to 1.
func NewComposer(persona string, maxNotes int) *Composer {
	if maxNotes < 1 {
		maxNotes = 1
	}
	return &Composer{persona: persona, maxNotes: maxNotes}
}

// Compose produces the ordered message sequence: persona block, a relevant
// memories block (omitted when there are no notes), and the user input.
// Notes are expected to arrive ranked; only the top maxNotes are included.
func (c *Composer) Compose(notes []memory.Note, input string) []Message {
	msgs := []Message{{Role: RoleSystem, Content: c.persona}}

	if len(notes) > 0 {
		msgs = append(msgs, Message{Role: RoleSystem, Content: c.formatNotes(notes)})
	}

	return append(msgs, Message{Role: RoleUser, Content: input})
}

func (c *Composer) formatNotes(notes []memory.Note) string {
	if len(notes) > c.maxNotes {
		notes = notes[:c.maxNotes]
	}

	var b strings.Builder
	b.WriteString("Relevant memories:\n")
	for _, n := range notes {
		fmt.Fprintf(&b, "- %s\n", n.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}
