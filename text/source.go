package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")

// Source is a parsed font file. One Source can back any number of
// faces at different sizes.
//
// Source is safe for concurrent use: the font.Font it holds is
// read-only after parsing.
type Source struct {
	font *font.Font
}

// NewSource parses TTF or OTF font data. The data slice is not
// retained; callers can reuse it after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Source{font: face.Font}, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewSource(data)
}

// Face creates a Face at the given size in pixels. Multiple faces can
// share one Source.
func (s *Source) Face(size float64) *Face {
	f := font.NewFace(s.font)
	return &Face{
		source: s,
		face:   f,
		size:   size,
		scale:  size / float64(f.Upem()),
	}
}
