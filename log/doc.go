// Package log defines the logging interface and typed logging fields used
// by the I/O adapters.
//
// Backends (such as the zap package) implement Logger so the rest of the
// code stays independent of the logging library. The core ledger packages do
// not log at all.
package log
