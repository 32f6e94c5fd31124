package chat

import "errors"

// Sender identifies who produced a conversation message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Valid reports whether the sender is one of the known values.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAssistant
}

// Validation errors for messages.
var (
	ErrEmptyText     = errors.New("message text is empty")
	ErrUnknownSender = errors.New("unknown message sender")
)

// Message is a single entry in a session transcript. IDs are session-scoped
// and strictly increasing in append order; once a message has been appended
// to a log it is never mutated or reordered.
type Message struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// NewMessage creates a Message with the given id, sender, and text.
//
// Example:
//
//	msg := chat.NewMessage(1, chat.SenderUser, "hi")
func NewMessage(id int64, sender Sender, text string) Message {
	return Message{ID: id, Sender: sender, Text: text}
}

// Validate reports why the message is not well formed: empty text or an
// unknown sender. A nil result means the message may be appended to a log.
func (m Message) Validate() error {
	if m.Text == "" {
		return ErrEmptyText
	}
	if !m.Sender.Valid() {
		return ErrUnknownSender
	}
	return nil
}
