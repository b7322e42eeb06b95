package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Victor-armando18/cupcake-corner/internal/interfaces"
	guardops "github.com/Victor-armando18/cupcake-corner/internal/infrastructure/jsonlogic"
	"github.com/diegoholiveira/jsonlogic/v3"
)

type JsonLogicExecutor struct{}

// NewJsonLogicExecutor comes with the "blank" operator registered.
func NewJsonLogicExecutor() *JsonLogicExecutor {
	j := &JsonLogicExecutor{}
	j.RegisterCustomOperator("blank", guardops.Blank)
	return j
}

// RegisterCustomOperator hands the operator to the jsonlogic library, so it can
// appear anywhere in a rule. Arguments arrive with vars already resolved.
// The library keeps one operator table per process.
func (j *JsonLogicExecutor) RegisterCustomOperator(name string, logic func(args ...interface{}) interface{}) {
	jsonlogic.AddOperator(name, func(values, data interface{}) interface{} {
		if list, ok := values.([]interface{}); ok {
			return logic(list...)
		}
		return logic(values)
	})
}

func (j *JsonLogicExecutor) Execute(ctx context.Context, ruleData map[string]interface{}, contextVars map[string]interface{}) (interface{}, error) {
	ruleJSON, err := json.Marshal(ruleData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrRuleExecutionFailed, err)
	}
	dataJSON, err := json.Marshal(contextVars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrRuleExecutionFailed, err)
	}

	var resultBuffer bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &resultBuffer); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrRuleExecutionFailed, err)
	}

	resultStr := strings.TrimSpace(resultBuffer.String())
	if resultStr == "" || resultStr == "null" {
		return nil, nil
	}

	var res interface{}
	decoder := json.NewDecoder(strings.NewReader(resultStr))
	decoder.UseNumber()
	if err := decoder.Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrRuleExecutionFailed, err)
	}
	return j.finalizeValue(res), nil
}

func (j *JsonLogicExecutor) finalizeValue(val interface{}) interface{} {
	if n, ok := val.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return val
}
