package interfaces

import (
	"context"

	"github.com/Victor-armando18/cupcake-corner/internal/domain"
)

// GatewayResponse is whatever came back from the endpoint, status included.
type GatewayResponse struct {
	StatusCode int
	Body       []byte
}

// OrderGateway posts an encoded order to the cupcake endpoint.
// A returned error means no response body is available.
type OrderGateway interface {
	Post(ctx context.Context, body []byte, requestID string) (*GatewayResponse, error)
}

// OrderDiffer reports what the server changed between the order we sent and the one echoed back.
type OrderDiffer interface {
	Diff(sent, echoed domain.Order) ([]byte, error)
}

// CheckoutFacade is the single operation a front end needs to submit an order.
type CheckoutFacade interface {
	PlaceOrder(ctx context.Context, order domain.Order) (domain.Confirmation, error)
}
