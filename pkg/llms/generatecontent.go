package llms

// Role is the type of chat message.
type Role string

const (
	// RoleAI is a message sent by the model.
	RoleAI Role = "ai"
	// RoleHuman is a message sent by a human.
	RoleHuman Role = "human"
	// RoleSystem is a message sent by the system.
	RoleSystem Role = "system"
)

// Message is one message sent to a LLM.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// SystemMessage creates a Message with the system role.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Text: text}
}

// HumanMessage creates a Message with the human role.
func HumanMessage(text string) Message {
	return Message{Role: RoleHuman, Text: text}
}

// AIMessage creates a Message with the AI role.
func AIMessage(text string) Message {
	return Message{Role: RoleAI, Text: text}
}

// ContentChoice is one of the response choices returned by the model.
type ContentChoice struct {
	// Content is the textual content of a response.
	Content string
	// StopReason is the reason the model stopped generating output.
	StopReason string
	// GenerationInfo is provider-specific metadata, such as token usage.
	GenerationInfo map[string]any
}

// ContentResponse is the response returned by a GenerateContent call.
type ContentResponse struct {
	Choices []*ContentChoice
}
