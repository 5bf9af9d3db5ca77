package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Mailer delivers transactional email. The backend only formats content;
// delivery retries are the provider's problem.
type Mailer interface {
	Send(to, subject, html string) error
}

// Service posts messages to the transactional provider's HTTP API.
type Service struct {
	apiKey  string
	baseURL string
	sender  string
	client  *http.Client
}

func NewService(apiKey, baseURL, sender string) *Service {
	return &Service{
		apiKey:  apiKey,
		baseURL: baseURL,
		sender:  sender,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *Service) Send(to, subject, html string) error {
	if s.apiKey == "" {
		return fmt.Errorf("mailer: no API key configured")
	}

	payload, err := json.Marshal(sendRequest{
		From:    s.sender,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mailer: provider returned status %d", resp.StatusCode)
	}
	return nil
}
