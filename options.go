// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbdraw

import "log/slog"

// Option configures a Surface during creation.
//
// Example:
//
//	// Hardware-only surface; unsupported fills report ErrNoFallback.
//	s, err := fbdraw.New(dev, buf)
//
//	// Surface with a software engine behind it (dependency injection).
//	s, err := fbdraw.New(dev, buf, fbdraw.WithFallback(engine))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	logger   *slog.Logger
	fallback Fallback
	acquire  SourceAcquirer
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		logger:   newNopLogger(),
		fallback: nil, // delegating operations return ErrNoFallback
		acquire:  acquireDirect{},
	}
}

// WithLogger sets the logger used by the surface. By default a surface
// produces no log output.
//
// Log levels used:
//   - [slog.LevelDebug]: per-operation decisions (native fill, fallback
//     reason, clip changes, map/flush transitions)
//   - [slog.LevelError]: device call failures
//
// Example:
//
//	s, err := fbdraw.New(dev, buf, fbdraw.WithLogger(slog.Default()))
func WithLogger(l *slog.Logger) Option {
	return func(o *surfaceOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFallback sets the software engine that executes operations the
// device cannot. Without one, Paint, Mask, Stroke and ShowGlyphs and
// any Fill that is not natively expressible return ErrNoFallback.
func WithFallback(f Fallback) Option {
	return func(o *surfaceOptions) {
		o.fallback = f
	}
}

// WithSourceAcquirer sets the resolver that turns a pattern's image
// source into CPU pixels for upload. The default asks the source
// directly via AcquireImage.
func WithSourceAcquirer(a SourceAcquirer) Option {
	return func(o *surfaceOptions) {
		if a != nil {
			o.acquire = a
		}
	}
}
