package service

import "errors"

var (
	// ErrNoSelection indicates an operation that needs a diagnosis or action
	// was invoked with nothing (or only a date group) selected.
	ErrNoSelection = errors.New("no diagnosis or action selected")

	// ErrPayloadMissing indicates a selection pointed at a record that has no
	// stored payload. The tree never produces such selections itself, so this
	// flags a bookkeeping bug rather than a user mistake.
	ErrPayloadMissing = errors.New("record payload missing")

	// ErrExportIO indicates the report file could not be written.
	ErrExportIO = errors.New("report export failed")
)
