package chatlog_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/aayushCywarden/animagic-space/chatlog"
	"github.com/aayushCywarden/animagic-space/core/chat"
)

func TestMemoryLog_AppendAndSnapshot(t *testing.T) {
	log := chatlog.NewMemoryLog()

	if err := log.Append(chat.NewMessage(1, chat.SenderAssistant, "welcome")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := log.Append(chat.NewMessage(2, chat.SenderUser, "hi")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	msgs := log.Snapshot()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Sender != chat.SenderAssistant || msgs[0].Text != "welcome" {
		t.Errorf("first message = %+v, want assistant welcome", msgs[0])
	}
	if msgs[1].Sender != chat.SenderUser || msgs[1].Text != "hi" {
		t.Errorf("second message = %+v, want user hi", msgs[1])
	}
}

func TestMemoryLog_PreservesInsertionOrder(t *testing.T) {
	log := chatlog.NewMemoryLog()

	for i := 1; i <= 5; i++ {
		msg := chat.NewMessage(int64(i), chat.SenderUser, fmt.Sprintf("m%d", i))
		if err := log.Append(msg); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}

	for i, msg := range log.Snapshot() {
		if msg.ID != int64(i+1) {
			t.Errorf("message %d has id %d, want %d", i, msg.ID, i+1)
		}
	}
}

func TestMemoryLog_RejectsMalformed(t *testing.T) {
	log := chatlog.NewMemoryLog()

	if err := log.Append(chat.Message{ID: 1, Sender: chat.SenderUser}); !errors.Is(err, chat.ErrEmptyText) {
		t.Errorf("Append empty text = %v, want ErrEmptyText", err)
	}
	if err := log.Append(chat.Message{ID: 2, Text: "x", Sender: "nobody"}); !errors.Is(err, chat.ErrUnknownSender) {
		t.Errorf("Append unknown sender = %v, want ErrUnknownSender", err)
	}
	if log.Len() != 0 {
		t.Errorf("malformed appends stored %d messages, want 0", log.Len())
	}
}

func TestMemoryLog_SnapshotIsDefensiveCopy(t *testing.T) {
	log := chatlog.NewMemoryLog()
	if err := log.Append(chat.NewMessage(1, chat.SenderUser, "original")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	msgs := log.Snapshot()
	msgs[0].Text = "tampered"
	_ = append(msgs, chat.NewMessage(2, chat.SenderUser, "extra"))

	fresh := log.Snapshot()
	if len(fresh) != 1 {
		t.Fatalf("got %d messages, want 1", len(fresh))
	}
	if fresh[0].Text != "original" {
		t.Errorf("stored message was mutated: got %q", fresh[0].Text)
	}
}

func TestMemoryLog_Clear(t *testing.T) {
	log := chatlog.NewMemoryLog()
	if err := log.Append(chat.NewMessage(1, chat.SenderUser, "hi")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := log.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if log.Len() != 0 {
		t.Errorf("got %d messages after Clear, want 0", log.Len())
	}
}

func TestMemoryLog_ConcurrentAppendAndRead(t *testing.T) {
	log := chatlog.NewMemoryLog()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			_ = log.Append(chat.NewMessage(int64(i+1), chat.SenderUser, "msg"))
		}()
		go func() {
			defer wg.Done()
			_ = log.Snapshot()
		}()
	}
	wg.Wait()

	if log.Len() != n {
		t.Errorf("got %d messages, want %d", log.Len(), n)
	}
}

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		name    string
		cfg     chatlog.Config
		wantErr bool
	}{
		{"default memory", chatlog.Config{}, false},
		{"explicit memory", chatlog.Config{Backend: chatlog.BackendMemory}, false},
		{"sqlite without path", chatlog.Config{Backend: chatlog.BackendSQLite}, true},
		{"unknown", chatlog.Config{Backend: "postgres"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := chatlog.New(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && log == nil {
				t.Error("New() returned nil log")
			}
		})
	}
}
