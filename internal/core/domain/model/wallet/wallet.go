package wallet

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const EventCredited = "wallet.credited"

var ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet or RestoreWallet constructor")

// CreditedEvent is raised when settlement pays a worker.
type CreditedEvent struct {
	kernel.BaseEvent
	WalletID kernel.UUID  `json:"walletId"`
	UserID   kernel.UUID  `json:"userId"`
	JobID    kernel.UUID  `json:"jobId"`
	Amount   kernel.Money `json:"amount"`
	Balance  kernel.Money `json:"balance"`
}

// Wallet holds a user's balance and lifetime earnings.
// Both only ever grow, and only through Credit.
type Wallet struct {
	kernel.EventRecorder

	id            kernel.UUID
	userID        kernel.UUID
	balance       kernel.Money
	totalEarnings kernel.Money
	updatedAt     time.Time

	isConstructed bool
}

// NewWallet opens an empty wallet for userID.
func NewWallet(id, userID kernel.UUID) (*Wallet, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	return &Wallet{
		id:            id,
		userID:        userID,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreWallet rebuilds a wallet from storage.
func RestoreWallet(id, userID kernel.UUID, balance, totalEarnings kernel.Money, updatedAt time.Time) (*Wallet, error) {
	w, err := NewWallet(id, userID)
	if err != nil {
		return nil, err
	}
	if balance.Cents() > totalEarnings.Cents() {
		return nil, errs.NewValueIsOutOfRangeError("balance", balance.String(), 0, totalEarnings.String())
	}
	w.balance = balance
	w.totalEarnings = totalEarnings
	w.updatedAt = updatedAt
	return w, nil
}

func (w *Wallet) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWalletIsNotConstructed
	}
	return nil
}

func (w *Wallet) ID() kernel.UUID {
	return w.id
}

func (w *Wallet) UserID() kernel.UUID {
	return w.userID
}

func (w *Wallet) Balance() kernel.Money {
	return w.balance
}

func (w *Wallet) TotalEarnings() kernel.Money {
	return w.totalEarnings
}

func (w *Wallet) UpdatedAt() time.Time {
	return w.updatedAt
}

// Credit adds an earning for jobID to both balance and total earnings.
func (w *Wallet) Credit(amount kernel.Money, jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "unbounded")
	}

	w.balance = w.balance.Add(amount)
	w.totalEarnings = w.totalEarnings.Add(amount)
	w.updatedAt = time.Now().UTC()

	w.RaiseDomainEvent(CreditedEvent{
		BaseEvent: kernel.NewBaseEvent(EventCredited, w.id),
		WalletID:  w.id,
		UserID:    w.userID,
		JobID:     jobID,
		Amount:    amount,
		Balance:   w.balance,
	})
	return nil
}
