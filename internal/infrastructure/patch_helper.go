package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Victor-armando18/cupcake-corner/internal/domain"
	"github.com/Victor-armando18/cupcake-corner/internal/interfaces"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

type MergePatchDiffer struct{}

func NewMergePatchDiffer() interfaces.OrderDiffer {
	return MergePatchDiffer{}
}

// Diff returns the RFC 7386 merge patch that turns sent into echoed, or nil
// when the server sent back exactly what it got.
func (MergePatchDiffer) Diff(sent, echoed domain.Order) ([]byte, error) {
	sentJSON, err := json.Marshal(sent)
	if err != nil {
		return nil, err
	}
	echoedJSON, err := json.Marshal(echoed)
	if err != nil {
		return nil, err
	}

	patch, err := jsonpatch.CreateMergePatch(sentJSON, echoedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to create merge patch: %w", err)
	}
	if bytes.Equal(bytes.TrimSpace(patch), []byte("{}")) {
		return nil, nil
	}
	return patch, nil
}
