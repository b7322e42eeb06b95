package domain

import "time"

// --- Checkout ---

// Confirmation is built from the order the server echoed back.
type Confirmation struct {
	Title   string
	Message string
	Order   Order
}

// Alert is the title/message pair a front end presents after checkout.
type Alert struct {
	Title   string
	Message string
}

// --- Order acceptance guards (development endpoint) ---

// RulePackDefinition is a versioned set of rules loaded from disk.
type RulePackDefinition struct {
	Version     string       `json:"version" yaml:"version"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []RuleConfig `json:"rules" yaml:"rules"`
}

type RuleConfig struct {
	ID           string                 `json:"id" yaml:"id"`
	Phase        string                 `json:"phase" yaml:"phase"` // only "guards" is evaluated today
	Logic        map[string]interface{} `json:"logic" yaml:"logic"` // JsonLogic structure
	ErrorMessage string                 `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

const PhaseGuards = "guards"

type GuardViolation struct {
	RuleID  string `json:"ruleId"`
	Reason  string `json:"reason"`
	Context string `json:"context"`
}

type GuardResult struct {
	RulesVersion string           `json:"rulesVersion"`
	GuardsHit    []GuardViolation `json:"guardsHit"`
}

// PlacedOrder is the endpoint's reply: the wire order plus server metadata.
type PlacedOrder struct {
	Order     Order
	ID        string
	CreatedAt time.Time
}
