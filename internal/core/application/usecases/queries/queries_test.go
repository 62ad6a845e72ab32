package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors_RejectUnbuiltIDs(t *testing.T) {
	_, err := queries.NewGetCustomerJobsQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetWorkerJobsQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetWalletBalanceQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetWalletTransactionsQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetAvailableJobsQuery(kernel.Caller{})
	require.ErrorIs(t, err, kernel.ErrCallerIsNotConstructed)
}

func TestQueryHandlers_RejectZeroQueries(t *testing.T) {
	ctx := t.Context()

	_, err := queries.NewGetCustomerJobsQueryHandler(nil).Handle(ctx, queries.GetCustomerJobsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetCustomerJobsQueryIsNotConstructed)

	_, err = queries.NewGetWorkerJobsQueryHandler(nil).Handle(ctx, queries.GetWorkerJobsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetWorkerJobsQueryIsNotConstructed)

	_, err = queries.NewGetAvailableJobsQueryHandler(nil).Handle(ctx, queries.GetAvailableJobsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetAvailableJobsQueryIsNotConstructed)

	_, err = queries.NewGetWalletBalanceQueryHandler(nil).Handle(ctx, queries.GetWalletBalanceQuery{})
	assert.ErrorIs(t, err, queries.ErrGetWalletBalanceQueryIsNotConstructed)

	_, err = queries.NewGetWalletTransactionsQueryHandler(nil).Handle(ctx, queries.GetWalletTransactionsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetWalletTransactionsQueryIsNotConstructed)
}
