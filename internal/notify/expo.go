package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/JorgegrDev/medic-action/internal/logging"
	"github.com/JorgegrDev/medic-action/internal/metrics"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Sender delivers one schedule's message to a set of device tokens.
type Sender interface {
	Send(ctx context.Context, tokens []string, s Schedule) error
}

type expoMessage struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
	Sound string         `json:"sound"`
}

// ExpoSender posts messages to the Expo push endpoint. Sends are rate limited
// and wrapped in a circuit breaker so a dead endpoint fails fast instead of
// holding worker ticks for the full HTTP timeout.
type ExpoSender struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

// NewExpoSender returns a sender for the given endpoint.
func NewExpoSender(url string, timeout time.Duration, ratePerSecond int) *ExpoSender {
	if ratePerSecond <= 0 {
		ratePerSecond = 10
	}
	return &ExpoSender{
		url:    url,
		client: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "expo-push",
			Timeout: 30 * time.Second,
		}),
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
	}
}

func (e *ExpoSender) Send(ctx context.Context, tokens []string, s Schedule) error {
	if len(tokens) == 0 {
		return nil
	}
	msgs := make([]expoMessage, 0, len(tokens))
	for _, t := range tokens {
		msgs = append(msgs, expoMessage{
			To:    t,
			Title: s.Title,
			Body:  s.Body,
			Data:  s.Data,
			Sound: "default",
		})
	}
	body, err := json.Marshal(msgs)
	if err != nil {
		return err
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return err
	}

	batchID := uuid.NewString()
	_, err = e.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := e.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("push endpoint: status %d", resp.StatusCode)
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.PushRejected.Add(float64(len(msgs)))
		} else {
			metrics.PushFailed.Add(float64(len(msgs)))
		}
		return fmt.Errorf("send batch %s: %w", batchID, err)
	}
	metrics.PushSent.Add(float64(len(msgs)))
	logging.Logger.Debug("push batch sent", "batch_id", batchID, "messages", len(msgs), "medication_id", s.Key)
	return nil
}
