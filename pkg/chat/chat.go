// Package chat holds the wire message types shared by the dialogue
// vendors.
package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant" // NPC
	RoleSystem    = "system"
)

// Message is a single message in a vendor conversation payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
