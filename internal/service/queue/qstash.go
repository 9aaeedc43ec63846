// Package queue integrates with Upstash QStash: publishing delivery jobs and
// verifying the signed callbacks QStash makes against the public endpoint.
package queue

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

const qstashPublishURL = "https://qstash.upstash.io/v2/publish/"

// deliverPath is the public callback route QStash posts back to.
const deliverPath = "/api/qstash/deliver"

// Publisher enqueues delivery jobs. Publishing is fire-and-forget from the
// webhook pipeline's point of view; QStash owns retries from here.
type Publisher struct {
	httpClient domain.HTTPClient
	cfg        *config.QStashConfig
	baseURL    string
	logger     logger.Logger
}

func NewPublisher(httpClient domain.HTTPClient, cfg *config.QStashConfig, logger logger.Logger) *Publisher {
	return &Publisher{
		httpClient: httpClient,
		cfg:        cfg,
		baseURL:    qstashPublishURL,
		logger:     logger,
	}
}

var _ domain.DeliveryEnqueuer = (*Publisher)(nil)

// EnqueueDelivery publishes {"canonicalEventId": ...} to the deliver
// callback. Without a token configured (local development) it is a no-op.
func (p *Publisher) EnqueueDelivery(ctx context.Context, canonicalEventID string) error {
	if p.cfg.Token == "" {
		p.logger.Debug("QStash token not configured, skipping enqueue")
		return nil
	}

	payload, err := json.Marshal(map[string]string{"canonicalEventId": canonicalEventID})
	if err != nil {
		return fmt.Errorf("failed to encode job payload: %w", err)
	}

	destination := p.cfg.PublicBaseURL + deliverPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+destination, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create publish request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("qstash publish failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("qstash publish failed: %d %s", resp.StatusCode, string(body))
	}
	return nil
}

// Receiver verifies the Upstash-Signature JWT on callback requests. Both the
// current and next signing keys are accepted so key rotation needs no
// coordinated deploy.
type Receiver struct {
	currentSigningKey string
	nextSigningKey    string
}

func NewReceiver(cfg *config.QStashConfig) *Receiver {
	return &Receiver{
		currentSigningKey: cfg.CurrentSigningKey,
		nextSigningKey:    cfg.NextSigningKey,
	}
}

// Verify checks the signature against the raw callback body. The JWT's body
// claim is the URL-safe base64 SHA-256 of the payload QStash delivered.
func (r *Receiver) Verify(signature string, body []byte) error {
	if signature == "" {
		return fmt.Errorf("missing signature")
	}
	if r.currentSigningKey == "" && r.nextSigningKey == "" {
		return fmt.Errorf("no signing keys configured")
	}

	var lastErr error
	for _, key := range []string{r.currentSigningKey, r.nextSigningKey} {
		if key == "" {
			continue
		}
		if err := r.verifyWithKey(signature, body, key); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

func (r *Receiver) verifyWithKey(signature string, body []byte, key string) error {
	token, err := jwt.Parse(signature, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(key), nil
	}, jwt.WithIssuer("Upstash"), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("invalid signature token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("unexpected claims type")
	}

	bodyClaim, _ := claims["body"].(string)
	if bodyClaim == "" {
		return fmt.Errorf("missing body claim")
	}
	sum := sha256.Sum256(body)
	digest := base64.URLEncoding.EncodeToString(sum[:])
	// Some QStash SDK versions emit unpadded digests.
	if bodyClaim != digest && bodyClaim != base64.RawURLEncoding.EncodeToString(sum[:]) {
		return fmt.Errorf("body hash mismatch")
	}
	return nil
}
