package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWalletTransactionsQueryHandler returns entries newest first.
type GetWalletTransactionsQueryHandler struct {
	db *gorm.DB
}

func NewGetWalletTransactionsQueryHandler(db *gorm.DB) GetWalletTransactionsQueryHandler {
	return GetWalletTransactionsQueryHandler{db: db}
}

func (h GetWalletTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetWalletTransactionsQuery,
) ([]GetWalletTransactionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			amount_cents,
			job_id,
			description,
			created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetWalletTransactionsQueryResponse, 0)
	for rows.Next() {
		var (
			entry       GetWalletTransactionsQueryResponse
			id, jobID   uuid.UUID
			txType      string
			amountCents int64
		)

		if err = rows.Scan(&id, &txType, &amountCents, &jobID, &entry.Description, &entry.CreatedAt); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.JobID, err = kernel.UUIDFromBytes(jobID[:]); err != nil {
			return nil, err
		}
		if entry.Amount, err = kernel.NewMoneyFromCents(amountCents); err != nil {
			return nil, err
		}
		entry.Type = wallet.TransactionType(txType)

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
