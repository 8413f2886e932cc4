package ledger

// Ledger owns the set of per-client transaction histories. It is an explicit
// store passed by reference to its callers; there is no ambient state.
//
// The ledger has exactly one writer and is not safe for concurrent use.
type Ledger struct {
	accounts map[ClientID]*Account
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[ClientID]*Account)}
}

// Record appends one transaction to the owning client's history, creating
// the account on first sight. It performs no validation and always succeeds;
// the caller is responsible for never feeding it malformed transactions.
func (l *Ledger) Record(tx Transaction) {
	account, ok := l.accounts[tx.Client]
	if !ok {
		account = newAccount(tx.Client)
		l.accounts[tx.Client] = account
	}

	account.record(tx)
}

// ClosingBalances replays every known client's history and returns one
// closing balance per client. The order of the result is unspecified;
// callers needing deterministic output must sort by client id. The first
// overflow aborts the whole computation.
func (l *Ledger) ClosingBalances() ([]ClosingBalance, error) {
	balances := make([]ClosingBalance, 0, len(l.accounts))

	for _, account := range l.accounts {
		balance, err := account.closingBalance()
		if err != nil {
			return nil, err
		}

		balances = append(balances, balance)
	}

	return balances, nil
}

// Find returns the first deposit or withdrawal with the given id in the
// client's history. Dispute-chain records never resolve.
func (l *Ledger) Find(client ClientID, id TransactionID) (Transaction, bool) {
	account, ok := l.accounts[client]
	if !ok {
		return Transaction{}, false
	}

	return account.find(id)
}
