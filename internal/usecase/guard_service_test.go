package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Victor-armando18/cupcake-corner/internal/domain"
	"github.com/Victor-armando18/cupcake-corner/internal/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardService_FullFlow(t *testing.T) {
	loader := infrastructure.NewFileRuleLoader("../../rules")
	guards := NewGuardService(loader, infrastructure.NewJsonLogicExecutor())

	ruleIDs := func(res *domain.GuardResult) []string {
		var ids []string
		for _, g := range res.GuardsHit {
			ids = append(ids, g.RuleID)
		}
		return ids
	}

	t.Run("a complete order passes", func(t *testing.T) {
		res, err := guards.Evaluate(context.Background(), sampleOrder(), "v1")
		require.NoError(t, err)
		assert.Equal(t, "v1", res.RulesVersion)
		assert.Empty(t, res.GuardsHit)
	})

	t.Run("version prefix is added", func(t *testing.T) {
		res, err := guards.Evaluate(context.Background(), sampleOrder(), "1")
		require.NoError(t, err)
		assert.Equal(t, "v1", res.RulesVersion)
	})

	t.Run("quantity outside 3..20 is blocked", func(t *testing.T) {
		for _, q := range []int{0, 2, 21, 100} {
			o := sampleOrder()
			o.Quantity = q
			res, err := guards.Evaluate(context.Background(), o, "v1")
			require.NoError(t, err)
			assert.Equal(t, []string{"quantity-range"}, ruleIDs(res), "quantity %d", q)
		}
	})

	t.Run("unknown flavor is blocked", func(t *testing.T) {
		o := sampleOrder()
		o.Type = 4
		res, err := guards.Evaluate(context.Background(), o, "v1")
		require.NoError(t, err)
		assert.Equal(t, []string{"known-flavor"}, ruleIDs(res))
	})

	t.Run("whitespace address is blocked", func(t *testing.T) {
		o := sampleOrder()
		o.Eircode = " \t"
		res, err := guards.Evaluate(context.Background(), o, "v1")
		require.NoError(t, err)
		require.Len(t, res.GuardsHit, 1)
		assert.Equal(t, "delivery-address", res.GuardsHit[0].RuleID)
		assert.Equal(t, "Name, street address, city and eircode are all required.", res.GuardsHit[0].Context)
	})

	t.Run("missing pack", func(t *testing.T) {
		_, err := guards.Evaluate(context.Background(), sampleOrder(), "v7")
		assert.True(t, errors.Is(err, domain.ErrRulePackNotFound))
	})
}
