package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(id, "customer changed their mind")

		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "customer changed their mind", cmd.Justification())
		require.NoError(t, cmd.Validate())
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.UUID{}, "reason")

		require.Error(t, err)
	})

	t.Run("empty justification", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.CancelOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
