package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ovoronin/go-issue-tracker/models"
)

// httpEmailClient posts email messages to an external dispatch gateway.
// With no gateway configured every send is a silent no-op, which keeps
// local setups working without a mail backend.
type httpEmailClient struct {
	client     *resty.Client
	gatewayURL string
}

// NewHTTPEmailClient builds an [EmailClient] for the given gateway URL.
func NewHTTPEmailClient(gatewayURL string, timeout time.Duration) EmailClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &httpEmailClient{
		client:     resty.New().SetTimeout(timeout),
		gatewayURL: gatewayURL,
	}
}

// Send implements [EmailClient].
func (c *httpEmailClient) Send(ctx context.Context, msg models.EmailMessage) error {
	if c.gatewayURL == "" {
		return nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(c.gatewayURL)
	if err != nil {
		return fmt.Errorf("email dispatch request: %w", err)
	}

	return mapHTTPError(resp)
}
