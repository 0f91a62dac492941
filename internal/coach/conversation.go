// ABOUTME: In-memory conversation transcript for an interactive coach session.
package coach

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role labels a transcript entry's author.
type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "coach"
)

// Message is one transcript entry.
type Message struct {
	ID   string
	Role Role
	Text string
	At   time.Time
}

// Conversation accumulates a chat transcript and relays turns through the
// client. It is not goroutine safe; one session drives it.
type Conversation struct {
	client   *Client
	messages []Message
}

// NewConversation starts an empty transcript over the given client.
func NewConversation(client *Client) *Conversation {
	return &Conversation{client: client}
}

// Send records the user's message, asks the coach, records the reply, and
// returns it. Backend failures surface as the fallback reply, never an
// error, so the transcript always stays consistent.
func (c *Conversation) Send(ctx context.Context, text string) Message {
	c.append(RoleUser, text)
	reply := c.client.AskWithFallback(ctx, text)
	return c.append(RoleCoach, reply)
}

// Messages returns the transcript so far.
func (c *Conversation) Messages() []Message {
	return c.messages
}

func (c *Conversation) append(role Role, text string) Message {
	m := Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		At:   time.Now(),
	}
	c.messages = append(c.messages, m)
	return m
}
