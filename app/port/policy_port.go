package port

//go:generate mockgen -source=policy_port.go -destination=../mocks/mock_policy_port.go

import "context"

// PolicyUsecase defines the row-level-security management interface
type PolicyUsecase interface {
	// ApplyPolicies generates and applies the RLS policy script,
	// returning the table names it covered.
	ApplyPolicies(ctx context.Context) ([]string, error)
}

// PolicyExecutorPort runs generated policy SQL against the database
// with a service role that may alter tables and policies.
type PolicyExecutorPort interface {
	Apply(ctx context.Context, script string) error
}
