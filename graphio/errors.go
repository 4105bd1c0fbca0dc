// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrEmptyInput indicates the input holds no header line at all.
	ErrEmptyInput = errors.New("graphio: empty input")

	// ErrBadHeader indicates a missing or malformed vertex/edge count.
	ErrBadHeader = errors.New("graphio: malformed header")

	// ErrUnknownFormat indicates an unrecognised format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)
