// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import "errors"

// Package errors.
var (
	// ErrInvalidFormat is returned when a device buffer's pixel format
	// has no canonical image representation, so the buffer cannot be
	// wrapped as a surface.
	ErrInvalidFormat = errors.New("fbdraw: buffer pixel format not representable")

	// ErrNoMemory is returned when a temporary device buffer cannot be
	// allocated.
	ErrNoMemory = errors.New("fbdraw: device buffer allocation failed")

	// ErrUnsupported signals that an operation is not expressible with
	// the device's draw primitives. It is a control signal consumed by
	// the fallback retry inside Fill and never escapes to the caller.
	ErrUnsupported = errors.New("fbdraw: operation not expressible natively")

	// ErrNoFallback is returned by operations that must delegate to a
	// software engine when none was configured.
	ErrNoFallback = errors.New("fbdraw: no fallback engine configured")

	// ErrSurfaceFinished is returned by operations on a surface after
	// Finish.
	ErrSurfaceFinished = errors.New("fbdraw: surface already finished")

	// ErrNotMapped is returned by UnmapImage when no image view is
	// open.
	ErrNotMapped = errors.New("fbdraw: no mapped image view")
)
