package chat

import "time"

// Message senders. Anything other than SenderUser is treated as the
// bot side when mapping to completion roles.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is a single turn in a per-persona conversation log. Turns
// are append-only and ordered by insertion; there is no other
// sequencing signal.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
