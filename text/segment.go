package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Run is a maximal stretch of text that shapes as one unit: a single
// direction and a single script. Start and End are rune indices into
// the shaped string, End exclusive.
type Run struct {
	Start, End int
	Direction  di.Direction
	Script     language.Script
}

// Zyyy (common) and Zinh (inherited) never form runs of their own.
var (
	scriptCommon    = language.LookupScript(' ')
	scriptInherited = language.LookupScript('̀')
)

// splitRuns breaks text into shaping runs, first by bidirectional
// level, then by script. Runs come out in visual order for the
// paragraph direction implied by the first strong character.
//
// runes must be the rune decoding of text; both are taken so the
// caller's []rune conversion is not repeated here.
func splitRuns(text string, runes []rune) []Run {
	if len(runes) == 0 {
		return nil
	}
	scripts := resolveScripts(runes)

	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return appendScriptRuns(nil, scripts, 0, len(runes), di.DirectionLTR)
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return appendScriptRuns(nil, scripts, 0, len(runes), di.DirectionLTR)
	}

	// The ordering keeps runs in logical position. For a left-to-right
	// paragraph that already is the visual order; a right-to-left
	// paragraph displays its runs last to first.
	base := baseDirection(text)
	n := ordering.NumRuns()
	runs := make([]Run, 0, n)
	for k := 0; k < n; k++ {
		i := k
		if base == di.DirectionRTL {
			i = n - 1 - k
		}
		r := ordering.Run(i)
		// Pos returns rune indices, end inclusive.
		start, end := r.Pos()
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = appendScriptRuns(runs, scripts, start, end+1, dir)
	}
	return runs
}

// appendScriptRuns splits the rune range [start, end) at script
// boundaries and appends the pieces to runs. Pieces of a
// right-to-left stretch are appended last to first so the whole
// sequence stays in visual order.
func appendScriptRuns(runs []Run, scripts []language.Script, start, end int, dir di.Direction) []Run {
	if start >= end {
		return runs
	}
	first := len(runs)
	pieceStart := start
	for i := start + 1; i <= end; i++ {
		if i < end && scripts[i] == scripts[pieceStart] {
			continue
		}
		runs = append(runs, Run{Start: pieceStart, End: i, Direction: dir, Script: scripts[pieceStart]})
		pieceStart = i
	}
	if dir == di.DirectionRTL {
		for i, j := first, len(runs)-1; i < j; i, j = i+1, j-1 {
			runs[i], runs[j] = runs[j], runs[i]
		}
	}
	return runs
}

// resolveScripts looks up the script of every rune and settles the
// placeholder classes: inherited marks take the script of the
// character they follow, and common characters join the surrounding
// script where the two sides agree or only one side has one. A common
// stretch between two different scripts stays common and shapes as
// its own run.
func resolveScripts(runes []rune) []language.Script {
	scripts := make([]language.Script, len(runes))
	for i, r := range runes {
		scripts[i] = language.LookupScript(r)
	}

	last := scriptCommon
	for i, s := range scripts {
		if s == scriptInherited {
			scripts[i] = last
		} else if s != scriptCommon {
			last = s
		}
	}

	last = scriptCommon
	for i, s := range scripts {
		if s != scriptCommon {
			last = s
			continue
		}
		next := nextScript(scripts, i+1)
		switch {
		case last != scriptCommon && (next == last || next == scriptCommon):
			scripts[i] = last
		case last == scriptCommon && next != scriptCommon:
			scripts[i] = next
		}
	}
	return scripts
}

// nextScript returns the first script at or after start that is not
// common, or common when the rest of the text has none.
func nextScript(scripts []language.Script, start int) language.Script {
	for _, s := range scripts[start:] {
		if s != scriptCommon {
			return s
		}
	}
	return scriptCommon
}

// baseDirection applies the first-strong rule to derive the paragraph
// direction.
func baseDirection(text string) di.Direction {
	for s := text; s != ""; {
		props, sz := bidi.LookupString(s)
		switch props.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
		if sz <= 0 {
			break
		}
		s = s[sz:]
	}
	return di.DirectionLTR
}
