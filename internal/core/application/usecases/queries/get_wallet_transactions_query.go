package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/guard"
)

var ErrGetWalletTransactionsQueryIsNotConstructed = errors.New(
	"GetWalletTransactionsQuery must be created via NewGetWalletTransactionsQuery constructor",
)

// GetWalletTransactionsQuery lists the caller's ledger entries. Platform
// commission rows have no user and never show up here.
type GetWalletTransactionsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWalletTransactionsQuery(userID kernel.UUID) (GetWalletTransactionsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetWalletTransactionsQuery{}, err
	}

	return GetWalletTransactionsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetWalletTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletTransactionsQueryIsNotConstructed)
}

func (q GetWalletTransactionsQuery) UserID() kernel.UUID {
	return q.userID
}

type GetWalletTransactionsQueryResponse struct {
	ID          kernel.UUID
	Type        wallet.TransactionType
	Amount      kernel.Money
	JobID       kernel.UUID
	Description string
	CreatedAt   time.Time
}
