package notify

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/realguide/backend/app/factory"
)

const defaultBaseURL = "https://api.telegram.org"

type TelegramConfig struct {
	BotToken    string
	ChatID      string
	BaseURL     string
	HTTPTimeout time.Duration
}

// TelegramNotifier pushes operator messages to a Telegram chat. Delivery is
// detached from the calling request: failures are logged and never propagated.
type TelegramNotifier struct {
	cfg    TelegramConfig
	client *http.Client
	logger logrus.FieldLogger
}

func NewTelegramNotifier(cfg TelegramConfig) *TelegramNotifier {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &TelegramNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: factory.NewModuleLogger("telegram-notifier"),
	}
}

func (n *TelegramNotifier) Error(text, stack string) {
	message := fmt.Sprintf("<b>❗Произошла ошибка!</b>\n\n<i>%s</i>\n\n<code>%s</code>", text, stack)
	go n.deliver(message)
}

func (n *TelegramNotifier) PaymentCreated(orderID, name, email string) {
	message := fmt.Sprintf("<b>🔆 Создан новый платеж</b>\n\n<i>id: %s</i>\n<i>Имя: %s</i>\n<i>Email: %s</i>", orderID, name, email)
	go n.deliver(message)
}

func (n *TelegramNotifier) FileDownloaded(fileID string) {
	message := fmt.Sprintf("<b>📥 Был скачен файл</b>\n\n<i>id: %s</i>", fileID)
	go n.deliver(message)
}

func (n *TelegramNotifier) deliver(text string) {
	if strings.TrimSpace(n.cfg.BotToken) == "" || strings.TrimSpace(n.cfg.ChatID) == "" {
		n.logger.Debug("Telegram notifier is not configured, dropping message")
		return
	}

	values := url.Values{}
	values.Set("chat_id", n.cfg.ChatID)
	values.Set("text", text)
	values.Set("parse_mode", "html")

	endpoint := n.cfg.BaseURL + "/bot" + n.cfg.BotToken + "/sendMessage"
	resp, err := n.client.PostForm(endpoint, values)
	if err != nil {
		n.logger.WithError(err).Warn("Telegram delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		n.logger.WithField("status", resp.StatusCode).Warn("Telegram delivery rejected")
	}
}
