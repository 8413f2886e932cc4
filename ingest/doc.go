// Package ingest is the delimited-text boundary around the ledger core.
//
// Reader streams transaction records out of a CSV source, normalizing each
// row into a ledger.Transaction and dropping malformed rows so the core
// never sees an invalid kind or a deposit without an amount. WriteReport
// renders closing balances back to CSV in client-id order.
package ingest
