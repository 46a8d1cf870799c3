// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered message history of one chat session.
// Insertion order is significant and messages are never reordered.
type Conversation struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Messages  []*Message `json:"messages"`

	// Greeting is the system line the history is reset to on clear.
	Greeting string `json:"greeting"`
}

// NewConversation creates a new conversation seeded with the greeting as
// its single system message.
func NewConversation(greeting string) *Conversation {
	c := &Conversation{
		ID:        "conv_" + uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Greeting:  greeting,
	}
	c.Messages = []*Message{NewMessage(RoleSystem, greeting)}
	return c
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Add appends a message to the conversation.
func (c *Conversation) Add(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// AddUser creates and appends a user message.
func (c *Conversation) AddUser(content string) *Message {
	msg := NewMessage(RoleUser, content)
	c.Add(msg)
	return msg
}

// AddAssistant creates and appends an assistant message.
func (c *Conversation) AddAssistant(content string) *Message {
	msg := NewMessage(RoleAssistant, content)
	c.Add(msg)
	return msg
}

// AddSystem creates and appends a system message.
func (c *Conversation) AddSystem(content string) *Message {
	msg := NewMessage(RoleSystem, content)
	c.Add(msg)
	return msg
}

// Reset drops all history and re-seeds the conversation with the greeting.
func (c *Conversation) Reset() {
	c.Messages = []*Message{NewMessage(RoleSystem, c.Greeting)}
	c.UpdatedAt = time.Now()
}

// Last returns the most recent message, or nil if empty.
func (c *Conversation) Last() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// Texts returns the raw message contents in insertion order.
// This is the shape the completion request builder consumes; the
// builder assigns roles positionally and ignores the stored tags.
func (c *Conversation) Texts() []string {
	texts := make([]string, 0, len(c.Messages))
	for _, msg := range c.Messages {
		texts = append(texts, msg.Content)
	}
	return texts
}
