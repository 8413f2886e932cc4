package ledger

import (
	"strings"

	"github.com/9876691/accounts/money"
)

// ClientID identifies one client account.
type ClientID uint16

// TransactionID identifies a transaction within a client's history.
//
// Uniqueness is not enforced: dispute-family records reference the first
// matching fundable record in arrival order.
type TransactionID uint32

// Kind is the transaction kind.
type Kind string

const (
	// KindDeposit credits the available balance.
	KindDeposit Kind = "deposit"
	// KindWithdrawal debits the available balance when funds suffice.
	KindWithdrawal Kind = "withdrawal"
	// KindDispute moves a referenced deposit's funds from available to held.
	KindDispute Kind = "dispute"
	// KindResolve releases a disputed deposit's funds back to available.
	KindResolve Kind = "resolve"
	// KindChargeback reverses a disputed deposit and freezes the account.
	KindChargeback Kind = "chargeback"
)

// ParseKind converts a boundary string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	case KindDispute:
		return KindDispute, nil
	case KindResolve:
		return KindResolve, nil
	case KindChargeback:
		return KindChargeback, nil
	default:
		return "", NewDomainError(ErrorInvalidKind, "type", "unrecognized transaction kind "+s)
	}
}

// Fundable reports whether the kind carries its own amount and can be the
// target of a dispute-family reference.
func (k Kind) Fundable() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Transaction is one immutable fact in a client's history.
//
// Amount is nil for dispute-family records; their amount is always recovered
// from the referenced transaction.
type Transaction struct {
	Kind   Kind
	Client ClientID
	ID     TransactionID
	Amount *money.Amount
}
