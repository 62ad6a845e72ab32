package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetWalletBalanceQueryHandler reads one wallet row. A missing wallet is not an
// error: wallets are created lazily at the first settlement.
type GetWalletBalanceQueryHandler struct {
	db *gorm.DB
}

func NewGetWalletBalanceQueryHandler(db *gorm.DB) GetWalletBalanceQueryHandler {
	return GetWalletBalanceQueryHandler{db: db}
}

func (h GetWalletBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetWalletBalanceQuery,
) (GetWalletBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT balance_cents, total_earnings_cents
		FROM wallets
		WHERE user_id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}
	defer rows.Close()

	var balanceCents, totalCents int64
	if rows.Next() {
		if err = rows.Scan(&balanceCents, &totalCents); err != nil {
			return GetWalletBalanceQueryResponse{}, err
		}
	}
	if err = rows.Err(); err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	balance, err := kernel.NewMoneyFromCents(balanceCents)
	if err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}
	total, err := kernel.NewMoneyFromCents(totalCents)
	if err != nil {
		return GetWalletBalanceQueryResponse{}, err
	}

	return GetWalletBalanceQueryResponse{Balance: balance, TotalEarnings: total}, nil
}
