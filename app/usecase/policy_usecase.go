package usecase

import (
	"context"
	"log/slog"

	"linkspace/app/port"
	"linkspace/app/rls"
	apperrors "linkspace/app/utils/errors"
)

// PolicyUsecase implements port.PolicyUsecase
type PolicyUsecase struct {
	generator *rls.Generator
	executor  port.PolicyExecutorPort
	logger    *slog.Logger
}

// NewPolicyUsecase creates a new PolicyUsecase
func NewPolicyUsecase(
	generator *rls.Generator,
	executor port.PolicyExecutorPort,
	logger *slog.Logger,
) port.PolicyUsecase {
	return &PolicyUsecase{
		generator: generator,
		executor:  executor,
		logger:    logger.With("component", "policy_usecase"),
	}
}

// ApplyPolicies regenerates the policy script and applies it through
// the service-role connection. Safe to call repeatedly.
func (u *PolicyUsecase) ApplyPolicies(ctx context.Context) ([]string, error) {
	script := u.generator.Script()
	tables := u.generator.TableNames()

	u.logger.Info("applying row level security policies", "tables", len(tables))

	if err := u.executor.Apply(ctx, script); err != nil {
		return nil, apperrors.NewPolicyError(err)
	}

	u.logger.Info("row level security policies applied", "tables", len(tables))
	return tables, nil
}
