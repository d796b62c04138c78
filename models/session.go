package models

import "time"

// ChatMessage is one role-tagged entry in a chat session.
type ChatMessage struct {
	Role     string        `json:"role"`
	Content  string        `json:"content"`
	ToolUsed RouteDecision `json:"tool_used,omitempty"`
	At       time.Time     `json:"at"`
}
