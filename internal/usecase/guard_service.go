package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Victor-armando18/cupcake-corner/internal/domain"
	"github.com/Victor-armando18/cupcake-corner/internal/interfaces"
)

type GuardService struct {
	loader   interfaces.RulePackLoader
	executor interfaces.RuleExecutor
}

func NewGuardService(loader interfaces.RulePackLoader, executor interfaces.RuleExecutor) interfaces.GuardFacade {
	return &GuardService{loader: loader, executor: executor}
}

// Evaluate runs every guard of the pack against the order. A guard that
// evaluates to true blocks the order.
func (g *GuardService) Evaluate(ctx context.Context, order domain.Order, version string) (*domain.GuardResult, error) {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	rulePack, err := g.loader.Load(ctx, version)
	if err != nil {
		return nil, err
	}

	guardsHit := []domain.GuardViolation{}
	for _, rule := range g.getRules(rulePack.Rules, domain.PhaseGuards) {
		out, err := g.executor.Execute(ctx, rule.Logic, map[string]interface{}{"order": order})
		if err != nil {
			return nil, fmt.Errorf("guard %s: %w", rule.ID, err)
		}

		if v, ok := out.(bool); ok && v {
			msg := rule.ErrorMessage
			if msg == "" {
				msg = "Order rejected"
			}
			guardsHit = append(guardsHit, domain.GuardViolation{
				RuleID:  rule.ID,
				Reason:  "Violation Detected",
				Context: msg,
			})
		}
	}

	return &domain.GuardResult{
		RulesVersion: rulePack.Version,
		GuardsHit:    guardsHit,
	}, nil
}

func (g *GuardService) getRules(rules []domain.RuleConfig, phase string) []domain.RuleConfig {
	var f []domain.RuleConfig
	for _, r := range rules {
		if r.Phase == phase {
			f = append(f, r)
		}
	}
	return f
}
