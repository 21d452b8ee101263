package marketdata

import "context"

// Provider fetches market data for the instrument kinds it supports.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string

	// Supports reports whether this provider serves the given kind.
	Supports(kind Kind) bool

	// History returns the instrument's daily price series over the
	// period, oldest bar first.
	History(ctx context.Context, inst Instrument, period Period) (Series, error)

	// Summary returns the instrument's informational summary.
	Summary(ctx context.Context, inst Instrument) (Summary, error)
}
