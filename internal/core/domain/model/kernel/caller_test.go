package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_CanAcceptJobs(t *testing.T) {
	tests := []struct {
		role kernel.Role
		want bool
	}{
		{role: kernel.RoleCustomer, want: false},
		{role: kernel.RoleWorker, want: true},
		{role: kernel.RoleAgencyPartner, want: true},
		{role: kernel.RoleAdmin, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			require.NoError(t, tt.role.Validate())
			assert.Equal(t, tt.want, tt.role.CanAcceptJobs())
		})
	}
}

func TestNewCaller(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		caller, err := kernel.NewCaller(id, kernel.RoleWorker)

		require.NoError(t, err)
		require.NoError(t, caller.Validate())
		assert.True(t, caller.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleWorker, caller.Role())
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := kernel.NewCaller(kernel.NewUUID(), kernel.Role("user"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := kernel.NewCaller(kernel.UUID{}, kernel.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value", func(t *testing.T) {
		var caller kernel.Caller
		require.ErrorIs(t, caller.Validate(), kernel.ErrCallerIsNotConstructed)
	})
}
