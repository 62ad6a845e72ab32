package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for worker wallets.
// Wallets are only written during settlement.
type WalletRepository interface {
	// Ensure creates an empty wallet for userID unless one exists. It never
	// touches an existing row.
	Ensure(ctx context.Context, userID kernel.UUID) error

	// GetByUserIDForUpdate loads the wallet and locks its row until the
	// surrounding transaction ends.
	GetByUserIDForUpdate(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error)

	// Update writes balance, total earnings and updated_at.
	Update(ctx context.Context, aggregate *wallet.Wallet) error
}

// TransactionRepository appends ledger entries. Entries are never updated.
type TransactionRepository interface {
	Add(ctx context.Context, entry *wallet.Transaction) error
}
