package wallet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// TransactionType classifies a ledger entry. Values are persisted.
type TransactionType string

const (
	Earning    TransactionType = "earning"
	Commission TransactionType = "commission"
)

func (t TransactionType) Validate() error {
	if t != Earning && t != Commission {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a transaction type", string(t)))
	}
	return nil
}

var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction or RestoreTransaction")

// Transaction is an immutable ledger entry. A nil user marks a platform entry.
type Transaction struct {
	id          kernel.UUID
	userID      *kernel.UUID
	txType      TransactionType
	amount      kernel.Money
	jobID       kernel.UUID
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewTransaction creates an entry stamped with the current time.
func NewTransaction(
	id kernel.UUID,
	userID *kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	jobID kernel.UUID,
	description string,
) (*Transaction, error) {
	return RestoreTransaction(id, userID, txType, amount, jobID, description, time.Now().UTC())
}

// RestoreTransaction rebuilds an entry from storage.
func RestoreTransaction(
	id kernel.UUID,
	userID *kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	jobID kernel.UUID,
	description string,
	createdAt time.Time,
) (*Transaction, error) {
	problems := []error{id.Validate(), txType.Validate(), jobID.Validate()}
	if userID != nil {
		problems = append(problems, userID.Validate())
	}
	if txType == Earning && userID == nil {
		problems = append(problems, errs.NewValueIsRequiredError("userId"))
	}
	if strings.TrimSpace(description) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Transaction{
		id:            id,
		userID:        userID,
		txType:        txType,
		amount:        amount,
		jobID:         jobID,
		description:   description,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// UserID returns nil for platform entries.
func (t *Transaction) UserID() *kernel.UUID {
	return t.userID
}

func (t *Transaction) Type() TransactionType {
	return t.txType
}

func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

func (t *Transaction) JobID() kernel.UUID {
	return t.jobID
}

func (t *Transaction) Description() string {
	return t.description
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}
