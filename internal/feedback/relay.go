package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RelayConfig holds the HTTP mail-relay settings. Credentials live in server
// config only.
type RelayConfig struct {
	Endpoint string
	Username string
	Password string
	From     string
	To       string
	Subject  string
}

// HTTPRelaySender submits feedback through an HTTP mail-relay endpoint.
type HTTPRelaySender struct {
	cfg    RelayConfig
	client *http.Client
}

func NewHTTPRelaySender(cfg RelayConfig) *HTTPRelaySender {
	return &HTTPRelaySender{cfg: cfg, client: &http.Client{}}
}

type relayRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// Send posts the composed message body to the relay. A non-2xx status is an
// error; the caller decides how to surface it.
func (s *HTTPRelaySender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(relayRequest{
		Username: s.cfg.Username,
		Password: s.cfg.Password,
		From:     s.cfg.From,
		To:       s.cfg.To,
		Subject:  s.cfg.Subject,
		Body:     msg.ComposeBody(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("relay refused message: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
