// Package domain defines the core domain models for the mentors service.
package domain

// Role is a conversation role tag.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversational turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Persona is a fixed mentor archetype and its system prompt.
type Persona struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Prompt      string `json:"-"`
}

// ChatRequest is the body of POST /chat.
// MentorName is echoed back unchanged and is not checked against the persona.
type ChatRequest struct {
	MentorID            string    `json:"mentor_id"`
	MentorName          string    `json:"mentor_name"`
	Question            string    `json:"question"`
	ConversationHistory []Message `json:"conversation_history,omitempty"`
}

// ChatResponse is the body returned by POST /chat on success.
type ChatResponse struct {
	MentorID   string `json:"mentor_id"`
	MentorName string `json:"mentor_name"`
	Content    string `json:"content"`
}
