package chat_test

import (
	"errors"
	"testing"

	"github.com/aayushCywarden/animagic-space/core/chat"
)

func TestSender_Valid(t *testing.T) {
	tests := []struct {
		name   string
		sender chat.Sender
		want   bool
	}{
		{"user", chat.SenderUser, true},
		{"assistant", chat.SenderAssistant, true},
		{"empty", chat.Sender(""), false},
		{"system", chat.Sender("system"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sender.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     chat.Message
		wantErr error
	}{
		{"valid user", chat.NewMessage(1, chat.SenderUser, "hi"), nil},
		{"valid assistant", chat.NewMessage(2, chat.SenderAssistant, "hello"), nil},
		{"empty text", chat.NewMessage(3, chat.SenderUser, ""), chat.ErrEmptyText},
		{"unknown sender", chat.Message{ID: 4, Text: "x", Sender: "bot"}, chat.ErrUnknownSender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewMessage_Fields(t *testing.T) {
	msg := chat.NewMessage(7, chat.SenderAssistant, "reply")

	if msg.ID != 7 {
		t.Errorf("got id %d, want 7", msg.ID)
	}
	if msg.Sender != chat.SenderAssistant {
		t.Errorf("got sender %q, want %q", msg.Sender, chat.SenderAssistant)
	}
	if msg.Text != "reply" {
		t.Errorf("got text %q, want %q", msg.Text, "reply")
	}
}
