package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.yookassa.ru"

type YooKassaConfig struct {
	ShopID      string
	SecretKey   string
	BaseURL     string
	HTTPTimeout time.Duration
}

type YooKassaClient struct {
	cfg    YooKassaConfig
	client *http.Client
}

func NewYooKassaClient(cfg YooKassaConfig) *YooKassaClient {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &YooKassaClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *YooKassaClient) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error) {
	if strings.TrimSpace(c.cfg.ShopID) == "" || strings.TrimSpace(c.cfg.SecretKey) == "" {
		return nil, errors.New("yookassa credentials are not configured")
	}
	if strings.TrimSpace(input.IdempotenceKey) == "" {
		return nil, errors.New("idempotence key is required")
	}

	payload := map[string]interface{}{
		"amount": map[string]string{
			"value":    input.Amount,
			"currency": input.Currency,
		},
		"capture": true,
		"confirmation": map[string]string{
			"type":       "redirect",
			"return_url": input.ReturnURL,
		},
	}
	if input.Description != "" {
		payload["description"] = input.Description
	}
	if len(input.Metadata) > 0 {
		payload["metadata"] = input.Metadata
	}

	body, err := c.postJSON(ctx, "/v3/payments", input.IdempotenceKey, payload)
	if err != nil {
		return nil, err
	}

	var response struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		Confirmation struct {
			ConfirmationURL string `json:"confirmation_url"`
		} `json:"confirmation"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	return &CreatePaymentOutput{
		PaymentID:       strings.TrimSpace(response.ID),
		ConfirmationURL: strings.TrimSpace(response.Confirmation.ConfirmationURL),
		Status:          strings.TrimSpace(response.Status),
	}, nil
}

func (c *YooKassaClient) GetPaymentStatus(ctx context.Context, paymentID string) (string, error) {
	if strings.TrimSpace(paymentID) == "" {
		return "", errors.New("payment id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v3/payments/"+url.PathEscape(paymentID), nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ShopID, c.cfg.SecretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("yookassa get payment failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}

	return strings.TrimSpace(payload.Status), nil
}

func (c *YooKassaClient) postJSON(ctx context.Context, path, idempotenceKey string, payload interface{}) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.ShopID, c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", idempotenceKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("yookassa request failed: path=%s status=%d body=%s", path, resp.StatusCode, string(body))
	}

	return body, nil
}
