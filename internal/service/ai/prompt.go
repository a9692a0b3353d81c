package ai

import "github.com/rachitsingh/baatein/backend/internal/model/chat"

// Conversation roles understood by the completion service.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is a single text fragment of a conversation entry.
type Part struct {
	Text string `json:"text"`
}

// Content is one ordered entry of the conversation payload.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// BuildContents assembles the request payload from a persona template,
// the prior per-persona history, and the new user message. The template
// always leads as a model-role instruction, so the result has exactly
// len(history)+2 entries. The history slice is never modified.
func BuildContents(template string, history []chat.Message, message string) []Content {
	contents := make([]Content, 0, len(history)+2)

	contents = append(contents, Content{
		Role:  RoleModel,
		Parts: []Part{{Text: template}},
	})

	for _, msg := range history {
		contents = append(contents, Content{
			Role:  roleFor(msg.Sender),
			Parts: []Part{{Text: msg.Content}},
		})
	}

	return append(contents, Content{
		Role:  RoleUser,
		Parts: []Part{{Text: message}},
	})
}

func roleFor(sender string) string {
	if sender == chat.SenderUser {
		return RoleUser
	}
	return RoleModel
}
