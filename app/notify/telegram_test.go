package notify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type sentMessage struct {
	path      string
	chatID    string
	text      string
	parseMode string
}

func newTestNotifier(t *testing.T) (*TelegramNotifier, chan sentMessage) {
	t.Helper()

	messages := make(chan sentMessage, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form failed: %v", err)
		}
		messages <- sentMessage{
			path:      r.URL.Path,
			chatID:    r.PostFormValue("chat_id"),
			text:      r.PostFormValue("text"),
			parseMode: r.PostFormValue("parse_mode"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	notifier := NewTelegramNotifier(TelegramConfig{
		BotToken: "token-1",
		ChatID:   "-100200",
		BaseURL:  server.URL,
	})
	return notifier, messages
}

func waitForMessage(t *testing.T, messages chan sentMessage) sentMessage {
	t.Helper()
	select {
	case msg := <-messages:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for telegram delivery")
		return sentMessage{}
	}
}

func TestErrorNotification(t *testing.T) {
	notifier, messages := newTestNotifier(t)

	notifier.Error("boom", "stack-trace")
	msg := waitForMessage(t, messages)

	if msg.path != "/bottoken-1/sendMessage" {
		t.Fatalf("unexpected path: %s", msg.path)
	}
	if msg.chatID != "-100200" {
		t.Fatalf("unexpected chat id: %s", msg.chatID)
	}
	if msg.parseMode != "html" {
		t.Fatalf("unexpected parse mode: %s", msg.parseMode)
	}
	if !strings.Contains(msg.text, "Произошла ошибка") || !strings.Contains(msg.text, "<i>boom</i>") || !strings.Contains(msg.text, "<code>stack-trace</code>") {
		t.Fatalf("unexpected message text: %s", msg.text)
	}
}

func TestPaymentCreatedNotification(t *testing.T) {
	notifier, messages := newTestNotifier(t)

	notifier.PaymentCreated("order-1", "A", "a@b.com")
	msg := waitForMessage(t, messages)

	if !strings.Contains(msg.text, "Создан новый платеж") {
		t.Fatalf("unexpected message text: %s", msg.text)
	}
	if !strings.Contains(msg.text, "id: order-1") || !strings.Contains(msg.text, "Имя: A") || !strings.Contains(msg.text, "Email: a@b.com") {
		t.Fatalf("expected payment fields in message: %s", msg.text)
	}
}

func TestFileDownloadedNotification(t *testing.T) {
	notifier, messages := newTestNotifier(t)

	notifier.FileDownloaded("guide-1")
	msg := waitForMessage(t, messages)

	if !strings.Contains(msg.text, "Был скачен файл") || !strings.Contains(msg.text, "id: guide-1") {
		t.Fatalf("unexpected message text: %s", msg.text)
	}
}

func TestUnconfiguredNotifierDropsMessages(t *testing.T) {
	notifier := NewTelegramNotifier(TelegramConfig{})

	// Must not panic or block.
	notifier.Error("boom", "stack")
	notifier.deliver("direct")
}
