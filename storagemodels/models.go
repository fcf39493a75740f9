/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"strings"
)

// Field names every stored record carries.
const (
	FieldID          = "id"
	FieldCreatedDate = "created_date"
	FieldUpdatedDate = "updated_date"
)

// Pagination defaults used when a caller passes no page or limit.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Record is one entity instance as a field-name to value mapping.
// A nil Record is the "not found" marker returned by lookups.
type Record map[string]any

// ID returns the record's id, stringifying non-string values.
func (r Record) ID() string {
	return stringField(r, FieldID)
}

// CreatedDate returns the ISO-8601 creation timestamp, or "" when unset.
func (r Record) CreatedDate() string {
	return stringField(r, FieldCreatedDate)
}

// UpdatedDate returns the ISO-8601 last-update timestamp, or "" when unset.
func (r Record) UpdatedDate() string {
	return stringField(r, FieldUpdatedDate)
}

// Clone returns a deep copy of the record. Nested maps and slices are copied
// so the clone shares no mutable state with r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case Record:
		return tv.Clone()
	case map[string]any:
		m := make(map[string]any, len(tv))
		for k, inner := range tv {
			m[k] = cloneValue(inner)
		}
		return m
	case []any:
		s := make([]any, len(tv))
		for i, inner := range tv {
			s[i] = cloneValue(inner)
		}
		return s
	case []string:
		return append([]string(nil), tv...)
	default:
		return v
	}
}

func stringField(r Record, field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Query is a predicate: field name to expected value. Every field must match.
type Query map[string]any

// SortSpec names the field to sort by; a leading "-" requests descending order.
type SortSpec string

// Field returns the field name without the direction prefix.
func (s SortSpec) Field() string {
	return strings.TrimPrefix(string(s), "-")
}

// Descending reports whether the field is prefixed with "-".
func (s SortSpec) Descending() bool {
	return strings.HasPrefix(string(s), "-")
}

// Pagination describes one page of a paginated query.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is the envelope returned by FindWithPagination.
type Page struct {
	Data       []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}
