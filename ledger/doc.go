// Package ledger implements the per-client transaction replay engine.
//
// Core flow:
//   - Record appends validated transactions to per-client histories.
//   - ClosingBalances replays each client's history in arrival order and
//     derives one closing balance per client.
//   - Find resolves a transaction id to the first fundable (deposit or
//     withdrawal) record in a client's history.
//
// The package is pure: it performs no I/O and a replay is a deterministic
// function of the recorded history. Balance arithmetic is checked fixed-point
// arithmetic; overflow surfaces as a typed domain error.
package ledger
