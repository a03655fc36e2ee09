// Package normalize provides the deterministic text cleanup applied to
// free-text form fields (names, titles, descriptions) before storage.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Remove zero-width and other format characters
// 4 Width fold fullwidth forms to ASCII
// 5 Collapse whitespace runs and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains, order mirrors the documented pipeline
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF etc
			width.Fold,
		)
	},
}

// Field normalizes a single-line form field: the full pipeline plus newline
// removal, since names and titles never legitimately span lines
func Field(s string) string {
	return strings.Join(strings.Fields(Text(s)), " ")
}

// Text normalizes multi-line free text, preserving paragraph breaks.
// Whitespace runs collapse to one space, runs containing a newline collapse
// to one newline
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// collapseSpaces converts whitespace runs to a single space but keeps line
// breaks: a run containing any newline becomes exactly one newline.
// Leading and trailing whitespace is trimmed
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	runHasNL := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inRun = true
			if r == '\n' || r == '\r' {
				runHasNL = true
			}
			continue
		}
		if inRun {
			if b.Len() > 0 {
				if runHasNL {
					b.WriteByte('\n')
				} else {
					b.WriteByte(' ')
				}
			}
			inRun = false
			runHasNL = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
