package walletrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements ports.WalletRepository using GORM.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// Ensure inserts an empty wallet for userID and leaves an existing one alone:
//
//	INSERT INTO wallets (...) VALUES (...) ON CONFLICT (user_id) DO NOTHING
func (r *GormWalletRepository) Ensure(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	dto := WalletDTO{
		ID:        kernel.NewUUID().Bytes(),
		UserID:    userID.Bytes(),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}

// GetByUserIDForUpdate loads the wallet with SELECT ... FOR UPDATE. Outside of
// a transaction the lock is released immediately.
func (r *GormWalletRepository) GetByUserIDForUpdate(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet", userID.String())
		}
		return nil, err
	}

	return walletToDomain(dto)
}

// Update writes the balances of a wallet loaded with GetByUserIDForUpdate.
func (r *GormWalletRepository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := walletFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("id = ?", dto.ID).
		Select("balance_cents", "total_earnings_cents", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("wallet", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GormTransactionRepository appends ledger entries.
type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) Add(ctx context.Context, entry *wallet.Transaction) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
