// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pix

import "testing"

func TestFormat_BitsPerPixel(t *testing.T) {
	tests := []struct {
		format   Format
		expected int
	}{
		{ARGB1555, 16},
		{RGB16, 16},
		{RGB24, 24},
		{RGB32, 32},
		{ARGB32, 32},
		{A8, 8},
		{YUY2, 16},
		{RGB332, 8},
		{YV12, 12},
		{ARGB4444, 16},
		{A4, 4},
		{RGB444, 16},
		{RGB555, 16},
		{BGR555, 16},
		{ABGR32, 32},
		{A1, 1},
		{Invalid, 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BitsPerPixel(); got != tt.expected {
				t.Errorf("BitsPerPixel() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormat_BytesPerPixel(t *testing.T) {
	tests := []struct {
		format   Format
		expected int
	}{
		{ARGB32, 4},
		{ABGR32, 4},
		{RGB32, 4},
		{RGB24, 3},
		{RGB16, 2},
		{ARGB1555, 2},
		{RGB332, 1},
		{A8, 1},
		// Sub-byte and planar formats are not byte addressable.
		{A4, 0},
		{A1, 0},
		{YUY2, 0},
		{YV12, 0},
		{Invalid, 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.expected {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormat_HasAlpha(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{ARGB32, true},
		{ABGR32, true},
		{ARGB1555, true},
		{ARGB4444, true},
		{A8, true},
		{A4, true},
		{A1, true},
		{RGB16, false},
		{RGB24, false},
		{RGB32, false},
		{RGB332, false},
		{YUY2, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.HasAlpha(); got != tt.expected {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_HasColor(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{ARGB32, true},
		{RGB16, true},
		{YV12, true},
		{A8, false},
		{A4, false},
		{A1, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.HasColor(); got != tt.expected {
				t.Errorf("HasColor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_CanRenderTo(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{ARGB32, true},
		{ABGR32, true},
		{RGB16, true},
		{A8, true},
		{A1, true},
		// YUV formats are exchange-only, never compositing destinations.
		{YUY2, false},
		{YV12, false},
		{Invalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.CanRenderTo(); got != tt.expected {
				t.Errorf("CanRenderTo() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_RowBytes(t *testing.T) {
	tests := []struct {
		format   Format
		width    int
		expected int
	}{
		{ARGB32, 10, 40},
		{RGB24, 10, 30},
		{RGB16, 10, 20},
		{A8, 10, 10},
		// Sub-byte formats round up to whole bytes.
		{A4, 3, 2},
		{A4, 4, 2},
		{A1, 8, 1},
		{A1, 9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.RowBytes(tt.width); got != tt.expected {
				t.Errorf("RowBytes(%d) = %d, want %d", tt.width, got, tt.expected)
			}
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	if Invalid.IsValid() {
		t.Error("Invalid.IsValid() = true, want false")
	}
	if !ARGB32.IsValid() {
		t.Error("ARGB32.IsValid() = false, want true")
	}
	if Format(200).IsValid() {
		t.Error("Format(200).IsValid() = true, want false")
	}
	if formatCount.IsValid() {
		t.Error("formatCount.IsValid() = true, want false")
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{ARGB32, "ARGB32"},
		{ABGR32, "ABGR32"},
		{RGB16, "RGB16"},
		{YV12, "YV12"},
		{Invalid, "Invalid"},
		{Format(200), "Invalid"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.expected)
		}
	}
}
