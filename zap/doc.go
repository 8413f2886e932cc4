// Package zap adapts go.uber.org/zap to the log.Logger interface.
package zap
