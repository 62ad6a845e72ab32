// Package walletrepo persists worker wallets and the append-only transaction ledger.
package walletrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"

	"github.com/google/uuid"
)

type WalletDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BalanceCents       int64
	TotalEarningsCents int64
	UpdatedAt          time.Time
}

func (WalletDTO) TableName() string {
	return "wallets"
}

type TransactionDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	Type        string     `gorm:"type:varchar(20)"`
	AmountCents int64
	JobID       uuid.UUID `gorm:"type:uuid"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

func (TransactionDTO) TableName() string {
	return "transactions"
}

func walletFromDomain(w *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:                 w.ID().Bytes(),
		UserID:             w.UserID().Bytes(),
		BalanceCents:       w.Balance().Cents(),
		TotalEarningsCents: w.TotalEarnings().Cents(),
		UpdatedAt:          w.UpdatedAt(),
	}
}

func walletToDomain(dto WalletDTO) (*wallet.Wallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	balance, err := kernel.NewMoneyFromCents(dto.BalanceCents)
	if err != nil {
		return nil, err
	}
	totalEarnings, err := kernel.NewMoneyFromCents(dto.TotalEarningsCents)
	if err != nil {
		return nil, err
	}

	return wallet.RestoreWallet(id, userID, balance, totalEarnings, dto.UpdatedAt)
}

func transactionFromDomain(t *wallet.Transaction) TransactionDTO {
	var userID *uuid.UUID
	if id := t.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return TransactionDTO{
		ID:          t.ID().Bytes(),
		UserID:      userID,
		Type:        string(t.Type()),
		AmountCents: t.Amount().Cents(),
		JobID:       t.JobID().Bytes(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
	}
}
