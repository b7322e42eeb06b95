package interfaces

import (
	"context"

	"github.com/Victor-armando18/cupcake-corner/internal/domain"
)

var ErrRuleExecutionFailed = domain.ErrRuleExecutionFailed

// RulePackLoader loads guard rule packs (from disk, network, etc.).
type RulePackLoader interface {
	Load(ctx context.Context, version string) (*domain.RulePackDefinition, error)
}

// RuleExecutor runs one JsonLogic rule, with support for custom operators.
type RuleExecutor interface {
	Execute(ctx context.Context, ruleData map[string]interface{}, contextVars map[string]interface{}) (interface{}, error)
	RegisterCustomOperator(name string, logic func(args ...interface{}) interface{})
}

// GuardFacade decides whether the development endpoint accepts an order.
type GuardFacade interface {
	Evaluate(ctx context.Context, order domain.Order, rulePackVersion string) (*domain.GuardResult, error)
}
