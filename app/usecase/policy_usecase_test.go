package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	mock_port "linkspace/app/mocks"
	"linkspace/app/rls"
	apperrors "linkspace/app/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPolicyUsecase(t *testing.T) (*PolicyUsecase, *mock_port.MockPolicyExecutorPort) {
	t.Helper()

	ctrl := gomock.NewController(t)
	executor := mock_port.NewMockPolicyExecutorPort(ctrl)

	uc := NewPolicyUsecase(rls.New(), executor, slog.Default()).(*PolicyUsecase)
	return uc, executor
}

func TestPolicyUsecase_ApplyPolicies(t *testing.T) {
	t.Run("runs the generated script and reports covered tables", func(t *testing.T) {
		uc, executor := newPolicyUsecase(t)

		executor.EXPECT().
			Apply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, script string) error {
				assert.Contains(t, script, "requesting_user_id()")
				assert.Contains(t, script, "ENABLE ROW LEVEL SECURITY")
				return nil
			})

		tables, err := uc.ApplyPolicies(context.Background())

		require.NoError(t, err)
		assert.Contains(t, tables, "links")
		assert.Contains(t, tables, "users")
	})

	t.Run("executor failure surfaces as policy error", func(t *testing.T) {
		uc, executor := newPolicyUsecase(t)

		executor.EXPECT().
			Apply(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("permission denied for schema public"))

		tables, err := uc.ApplyPolicies(context.Background())

		assert.Nil(t, tables)
		assertErrCode(t, err, apperrors.ErrCodePolicyError)

		assert.True(t, strings.Contains(err.Error(), "permission denied"))
	})
}
