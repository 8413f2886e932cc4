package ledger

// Account owns the ordered transaction history for one client.
// Insertion order is arrival order, and the dispute rules depend on it.
type Account struct {
	client  ClientID
	history []Transaction
}

func newAccount(client ClientID) *Account {
	return &Account{client: client}
}

func (a *Account) record(tx Transaction) {
	a.history = append(a.history, tx)
}

// find returns the first fundable (deposit or withdrawal) record with the
// given id. Dispute-chain records never resolve as referenceable amounts.
func (a *Account) find(id TransactionID) (Transaction, bool) {
	for _, tx := range a.history {
		if tx.ID == id && tx.Kind.Fundable() {
			return tx, true
		}
	}

	return Transaction{}, false
}
