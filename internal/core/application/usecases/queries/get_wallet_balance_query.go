package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetWalletBalanceQueryIsNotConstructed = errors.New(
	"GetWalletBalanceQuery must be created via NewGetWalletBalanceQuery constructor",
)

// GetWalletBalanceQuery reads the caller's balance and lifetime earnings.
type GetWalletBalanceQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWalletBalanceQuery(userID kernel.UUID) (GetWalletBalanceQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetWalletBalanceQuery{}, err
	}

	return GetWalletBalanceQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetWalletBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletBalanceQueryIsNotConstructed)
}

func (q GetWalletBalanceQuery) UserID() kernel.UUID {
	return q.userID
}

// GetWalletBalanceQueryResponse is zero for users who never earned anything.
type GetWalletBalanceQueryResponse struct {
	Balance       kernel.Money
	TotalEarnings kernel.Money
}
