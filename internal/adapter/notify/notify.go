package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/edumart/edupay/internal/adapter/config"
	"github.com/edumart/edupay/internal/core/domain"
	"go.uber.org/zap"
)

const requestTimeout = 3 * time.Second

// Client posts user notifications to the external notification service.
// Fire and forget: events are queued on a buffered channel and dropped when
// the buffer is full. Delivery is at most once.
type Client struct {
	logger   *zap.Logger
	endpoint string
	client   *http.Client
	queue    chan domain.Notification
}

func NewClient(cfg *config.Notify, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:   log,
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: requestTimeout},
		queue:    make(chan domain.Notification, 64),
	}, nil
}

func (c *Client) Notify(n domain.Notification) {
	select {
	case c.queue <- n:
	default:
		c.logger.Warn("notification queue full, dropping event",
			zap.Uint64("user", n.UserID), zap.String("kind", string(n.Kind)))
	}
}

// Run drains the queue until ctx is cancelled.
func (c *Client) Run(ctx context.Context) {
	go func() {
		for {
			select {
			case n := <-c.queue:
				c.deliver(ctx, n)
			case <-ctx.Done():
				c.logger.Debug("notification worker stopped")
				return
			}
		}
	}()
}

type notifyPayload struct {
	UserID  uint64 `json:"user_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (c *Client) deliver(ctx context.Context, n domain.Notification) {
	if c.endpoint == "" {
		return
	}

	body, err := json.Marshal(notifyPayload{
		UserID:  n.UserID,
		Kind:    string(n.Kind),
		Message: n.Message,
	})
	if err != nil {
		c.logger.Error("marshal notification", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("build notification request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("notification delivery failed", zap.Error(err))
		return
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("notification rejected", zap.Int("status", resp.StatusCode))
	}
}
