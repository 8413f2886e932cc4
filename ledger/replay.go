package ledger

import (
	"fmt"

	"github.com/9876691/accounts/money"
)

// ClosingBalance is the derived balance snapshot for one client.
// Total always equals Available + Held.
type ClosingBalance struct {
	Client    ClientID
	Available money.Amount
	Held      money.Amount
	Total     money.Amount
	Locked    bool
}

// disputeStatus is the replay-local status of a referenced deposit.
type disputeStatus uint8

const (
	statusNormal disputeStatus = iota
	statusDisputed
	statusChargedBack
)

// closingBalance replays the account's full history in arrival order.
//
// The dispute family applies only against deposits, and only along the
// status progression normal → disputed → resolved-or-charged-back: a second
// dispute on an already-disputed deposit, a resolve or chargeback on a
// non-disputed one, and anything referencing a charged-back deposit are all
// no-ops. A confirmed chargeback freezes the account; transactions recorded
// after the freeze stay in the history but no longer mutate the balance.
func (a *Account) closingBalance() (ClosingBalance, error) {
	var (
		available money.Amount
		held      money.Amount
		locked    bool
		err       error
	)

	statuses := make(map[TransactionID]disputeStatus)

	for _, tx := range a.history {
		if locked {
			break
		}

		switch tx.Kind {
		case KindDeposit:
			if tx.Amount == nil {
				continue
			}

			available, err = available.Add(*tx.Amount)
			if err != nil {
				return ClosingBalance{}, a.overflow(err)
			}

		case KindWithdrawal:
			if tx.Amount == nil || *tx.Amount > available {
				continue // insufficient funds is a silent no-op
			}

			available, err = available.Sub(*tx.Amount)
			if err != nil {
				return ClosingBalance{}, a.overflow(err)
			}

		case KindDispute:
			ref, ok := a.find(tx.ID)
			if !ok || ref.Kind != KindDeposit || ref.Amount == nil || statuses[ref.ID] != statusNormal {
				continue
			}

			available, err = available.Sub(*ref.Amount)
			if err != nil {
				return ClosingBalance{}, a.overflow(err)
			}

			held, err = held.Add(*ref.Amount)
			if err != nil {
				return ClosingBalance{}, a.overflow(err)
			}

			statuses[ref.ID] = statusDisputed

		case KindResolve:
			ref, ok := a.find(tx.ID)
			if !ok || ref.Kind != KindDeposit || ref.Amount == nil || statuses[ref.ID] != statusDisputed {
				continue
			}

			held, err = held.Sub(*ref.Amount)
			if err != nil {
				return ClosingBalance{}, a.overflow(err)
			}

			available, err = available.Add(*ref.Amount)
			if err != nil {
				return ClosingBalance{}, a.overflow(err)
			}

			statuses[ref.ID] = statusNormal

		case KindChargeback:
			ref, ok := a.find(tx.ID)
			if !ok || ref.Kind != KindDeposit || ref.Amount == nil || statuses[ref.ID] != statusDisputed {
				continue
			}

			held, err = held.Sub(*ref.Amount)
			if err != nil {
				return ClosingBalance{}, a.overflow(err)
			}

			statuses[ref.ID] = statusChargedBack
			locked = true
		}
	}

	total, err := available.Add(held)
	if err != nil {
		return ClosingBalance{}, a.overflow(err)
	}

	return ClosingBalance{
		Client:    a.client,
		Available: available,
		Held:      held,
		Total:     total,
		Locked:    locked,
	}, nil
}

func (a *Account) overflow(cause error) error {
	return DomainError{
		Code:    ErrorBalanceOverflow,
		Field:   "client",
		Message: fmt.Sprintf("balance overflow replaying client %d", a.client),
		Err:     cause,
	}
}
