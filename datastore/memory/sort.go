/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/suparena/recordstore/storagemodels"
)

type sortItem struct {
	key string
	rec storagemodels.Record
}

// sortRecords orders recs in place by the sort field, compared as strings
// with a collator for tag. Equal keys keep their relative order.
func sortRecords(recs []storagemodels.Record, by storagemodels.SortSpec, tag language.Tag) {
	field := by.Field()
	if field == "" {
		return
	}

	items := make([]sortItem, len(recs))
	for i, rec := range recs {
		items[i] = sortItem{key: sortKey(rec[field]), rec: rec}
	}

	col := collate.New(tag)
	descending := by.Descending()
	slices.SortStableFunc(items, func(a, b sortItem) int {
		c := col.CompareString(a.key, b.key)
		if descending {
			return -c
		}
		return c
	})

	for i, item := range items {
		recs[i] = item.rec
	}
}

// sortKey renders v as a string; nil, false, zero, NaN and "" all become "".
func sortKey(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case bool:
		if !tv {
			return ""
		}
		return "true"
	case float64:
		return formatFloat(tv)
	case float32:
		return formatFloat(float64(tv))
	}
	if f, ok := toFloat(v); ok && f == 0 {
		return ""
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	if f == 0 || math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
