package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Victor-armando18/cupcake-corner/internal/interfaces"
)

const HeaderRequestID = "X-Request-Id"

type HTTPGateway struct {
	endpoint string
	client   *http.Client
}

// NewHTTPGateway posts to endpoint. A zero timeout leaves the transport default in place.
func NewHTTPGateway(endpoint string, timeout time.Duration) interfaces.OrderGateway {
	return &HTTPGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) Post(ctx context.Context, body []byte, requestID string) (*interfaces.GatewayResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(HeaderRequestID, requestID)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &interfaces.GatewayResponse{StatusCode: resp.StatusCode, Body: data}, nil
}
