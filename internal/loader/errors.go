package loader

import "errors"

var (
	// ErrInt64Transport is returned when the one-time 64-bit integer
	// transport self-check fails before any data is sent.
	ErrInt64Transport = errors.New("tabload: connection does not transport 64-bit integers losslessly")

	// ErrBulkNotConfigured is returned when the bulk-load strategy is
	// selected but no bulk adapter was supplied.
	ErrBulkNotConfigured = errors.New("tabload: bulk load selected but no bulk adapter configured")
)
