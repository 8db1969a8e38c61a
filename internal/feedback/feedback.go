// Package feedback defines the feedback message and the mail-relay boundary.
// Relay credentials come from server configuration; they are never embedded
// in client code.
package feedback

import (
	"context"
	"strings"
)

// Message is one submitted feedback form: five free-text answers plus the
// shopper's contact details.
type Message struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Liked    string `json:"liked"`
	Improve  string `json:"improve"`
	Features string `json:"features"`
	Comments string `json:"comments"`
}

// Empty reports whether every field is blank after trimming.
func (m Message) Empty() bool {
	for _, f := range []string{m.Name, m.Email, m.Liked, m.Improve, m.Features, m.Comments} {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ComposeBody renders the HTML mail body in the storefront's fixed layout.
func (m Message) ComposeBody() string {
	var b strings.Builder
	b.WriteString("Name of the User: <br/>" + m.Name + "<br/>")
	b.WriteString("Email of the User: <br/>" + m.Email + "<br/><br/>")
	b.WriteString("What did you like most about AR Shopsy? <br/>" + m.Liked + "<br/><br/>")
	b.WriteString("Will our 3D and AR features improve your shopping experience? <br/>" + m.Improve + "<br/><br/>")
	b.WriteString("What other features would excite you? <br/>" + m.Features + "<br/><br/>")
	b.WriteString("Any other comments? <br/>" + m.Comments)
	return b.String()
}

// Sender delivers a composed feedback message to the configured destination.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
