// Package logger provides a zap-based application logger.
package logger

import "go.uber.org/zap"

// New returns a named production logger for injection into the
// components that need one.
func New(service string) (*zap.Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return l.Named(service), nil
}
