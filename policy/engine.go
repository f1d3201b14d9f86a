// Package policy evaluates rego policies that gate outbound chat requests.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

const (
	DecisionAllow  = "allow"
	DecisionReject = "reject"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
// The module must define data.chat_policy.decision.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.chat_policy.decision"),
		rego.Module("chat_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate runs the policy against input.
// Returns: decision (allow, reject), reason (optional), error
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (string, string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionAllow, "default", nil
	}

	switch val := results[0].Expressions[0].Value.(type) {
	case string:
		return val, "", nil
	case map[string]interface{}:
		decision, _ := val["decision"].(string)
		reason, _ := val["reason"].(string)
		if decision == "" {
			return "", "", fmt.Errorf("policy returned object without decision: %v", val)
		}
		return decision, reason, nil
	default:
		return "", "", fmt.Errorf("unexpected policy result type %T", val)
	}
}

// CheckRoles evaluates the message-role policy for the roles of a
// conversation history. strict enables the restriction to known roles.
func (e *Engine) CheckRoles(ctx context.Context, strict bool, roles []string) (string, string, error) {
	in := make([]interface{}, len(roles))
	for i, r := range roles {
		in[i] = r
	}
	return e.Evaluate(ctx, map[string]interface{}{
		"strict_roles": strict,
		"roles":        in,
	})
}

// DefaultPolicy restricts conversation roles to system, user and assistant
// when strict_roles is set, and allows everything otherwise.
const DefaultPolicy = `
package chat_policy

default decision = {"decision": "allow", "reason": ""}

allowed_roles = {"system", "user", "assistant"}

unsupported_roles[role] {
	role := input.roles[_]
	not allowed_roles[role]
}

decision = {"decision": "reject", "reason": reason} {
	input.strict_roles
	count(unsupported_roles) > 0
	reason := sprintf("unsupported message roles: %s", [concat(", ", sort(unsupported_roles))])
}
`
