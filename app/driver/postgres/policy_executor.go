package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"linkspace/app/port"
)

// PolicyExecutor implements port.PolicyExecutorPort. It must run on
// the service-role pool: the application role cannot alter tables or
// manage policies.
type PolicyExecutor struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewPolicyExecutor creates a policy executor on the given connection
func NewPolicyExecutor(db DatabaseIface, logger *slog.Logger) port.PolicyExecutorPort {
	return &PolicyExecutor{
		db:     db,
		logger: logger.With("component", "policy_executor"),
	}
}

// Apply runs the policy script. The script is multi-statement SQL with
// no bind parameters, which pgx sends over the simple protocol.
func (e *PolicyExecutor) Apply(ctx context.Context, script string) error {
	start := time.Now()

	if _, err := e.db.Exec(ctx, script); err != nil {
		e.logger.Error("Failed to apply policy script", "error", err)
		return fmt.Errorf("failed to apply policy script: %w", err)
	}

	e.logger.Info("Policy script applied",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
