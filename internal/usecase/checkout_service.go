package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Victor-armando18/cupcake-corner/internal/domain"
	"github.com/Victor-armando18/cupcake-corner/internal/interfaces"
	"github.com/google/uuid"
)

const (
	ConfirmationTitle  = "Thank you!"
	RequestFailedTitle = "Request Failed"
)

type CheckoutService struct {
	gateway interfaces.OrderGateway
	differ  interfaces.OrderDiffer
	logger  *slog.Logger
	newID   func() string
}

func NewCheckoutService(gateway interfaces.OrderGateway, differ interfaces.OrderDiffer, logger *slog.Logger) interfaces.CheckoutFacade {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutService{gateway: gateway, differ: differ, logger: logger, newID: uuid.NewString}
}

// PlaceOrder submits the order once. Failures come back as *domain.SubmissionError.
func (s *CheckoutService) PlaceOrder(ctx context.Context, order domain.Order) (domain.Confirmation, error) {
	encoded, err := domain.EncodeOrder(order)
	if err != nil {
		s.logger.Error("failed to encode order", "error", err)
		return domain.Confirmation{}, domain.NewSubmissionError(domain.ErrEncode, err)
	}

	requestID := s.newID()
	log := s.logger.With("request_id", requestID)

	resp, err := s.gateway.Post(ctx, encoded, requestID)
	if err != nil {
		log.Warn("no data in response", "error", err)
		return domain.Confirmation{}, domain.NewSubmissionError(domain.ErrTransport, err)
	}
	log.Info("response received", "status", resp.StatusCode, "bytes", len(resp.Body))

	echoed, err := domain.DecodeOrder(resp.Body)
	if err != nil {
		log.Error("invalid response from server", "status", resp.StatusCode, "error", err)
		return domain.Confirmation{}, domain.NewSubmissionError(domain.ErrDecode, err)
	}

	flavor, ok := domain.FlavorName(echoed.Type)
	if !ok {
		err := fmt.Errorf("%w: flavor index %d out of range", domain.ErrDecode, echoed.Type)
		log.Error("invalid response from server", "status", resp.StatusCode, "error", err)
		return domain.Confirmation{}, domain.NewSubmissionError(domain.ErrDecode, err)
	}

	if s.differ != nil {
		if delta, err := s.differ.Diff(order, echoed); err != nil {
			log.Debug("could not diff echoed order", "error", err)
		} else if delta != nil {
			log.Info("server changed the order", "delta", string(delta))
		}
	}

	return domain.Confirmation{
		Title:   ConfirmationTitle,
		Message: fmt.Sprintf("Your order for %dx %s cupcakes is on its way!", echoed.Quantity, strings.ToLower(flavor)),
		Order:   echoed,
	}, nil
}

// AlertFor turns a checkout outcome into what the user sees. Encode and decode
// failures are only logged, so they produce no alert.
func AlertFor(confirmation domain.Confirmation, err error) (domain.Alert, bool) {
	if err == nil {
		return domain.Alert{Title: confirmation.Title, Message: confirmation.Message}, true
	}

	var se *domain.SubmissionError
	if errors.As(err, &se) && errors.Is(se.Kind, domain.ErrTransport) {
		return domain.Alert{Title: RequestFailedTitle, Message: se.Cause()}, true
	}
	return domain.Alert{}, false
}
