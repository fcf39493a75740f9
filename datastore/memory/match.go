/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"reflect"
	"strings"

	"golang.org/x/text/cases"

	"github.com/suparena/recordstore/storagemodels"
)

// matcher evaluates predicates. A Caser keeps state, so each query gets its own.
type matcher struct {
	fold cases.Caser
}

func newMatcher() *matcher {
	return &matcher{fold: cases.Fold()}
}

// matches reports whether rec satisfies every field of q.
func (m *matcher) matches(rec storagemodels.Record, q storagemodels.Query) bool {
	for field, want := range q {
		got, ok := rec[field]
		if !ok {
			return false
		}
		if !m.fieldMatches(got, want) {
			return false
		}
	}
	return true
}

// fieldMatches: two strings match by case-insensitive containment, anything
// else must be equal.
func (m *matcher) fieldMatches(got, want any) bool {
	gs, gotString := got.(string)
	ws, wantString := want.(string)
	if gotString && wantString {
		return strings.Contains(m.fold.String(gs), m.fold.String(ws))
	}
	return valuesEqual(got, want)
}

// valuesEqual compares numbers by value regardless of their Go kind; a number
// never equals a non-number.
func valuesEqual(a, b any) bool {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
