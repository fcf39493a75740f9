/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"testing"
)

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		FieldID:          "patient-1000",
		FieldCreatedDate: "2025-01-02T03:04:05.000Z",
	}

	if rec.ID() != "patient-1000" {
		t.Errorf("Expected id patient-1000, got %q", rec.ID())
	}
	if rec.CreatedDate() != "2025-01-02T03:04:05.000Z" {
		t.Errorf("Unexpected created date %q", rec.CreatedDate())
	}
	if rec.UpdatedDate() != "" {
		t.Errorf("Expected empty updated date, got %q", rec.UpdatedDate())
	}

	numeric := Record{FieldID: 42}
	if numeric.ID() != "42" {
		t.Errorf("Expected numeric id to stringify to 42, got %q", numeric.ID())
	}

	var missing Record
	if missing.ID() != "" {
		t.Errorf("Expected nil record to have empty id, got %q", missing.ID())
	}
}

func TestRecordCloneIsDeep(t *testing.T) {
	original := Record{
		"id":      "p1",
		"address": map[string]any{"city": "Dayton"},
		"tags":    []any{"hospice", "medicare"},
	}

	clone := original.Clone()
	clone["id"] = "p2"
	clone["address"].(map[string]any)["city"] = "Toledo"
	clone["tags"].([]any)[0] = "changed"

	if original["id"] != "p1" {
		t.Errorf("Top-level field leaked into original: %v", original["id"])
	}
	if original["address"].(map[string]any)["city"] != "Dayton" {
		t.Errorf("Nested map leaked into original: %v", original["address"])
	}
	if original["tags"].([]any)[0] != "hospice" {
		t.Errorf("Nested slice leaked into original: %v", original["tags"])
	}

	var nilRecord Record
	if nilRecord.Clone() != nil {
		t.Error("Clone of a nil record should stay nil")
	}
}

func TestSortSpec(t *testing.T) {
	tests := []struct {
		spec       SortSpec
		field      string
		descending bool
	}{
		{spec: "name", field: "name", descending: false},
		{spec: "-name", field: "name", descending: true},
		{spec: "", field: "", descending: false},
		{spec: "-created_date", field: "created_date", descending: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.spec), func(t *testing.T) {
			if tt.spec.Field() != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, tt.spec.Field())
			}
			if tt.spec.Descending() != tt.descending {
				t.Errorf("Expected descending=%v, got %v", tt.descending, tt.spec.Descending())
			}
		})
	}
}

func TestDefaultStreamOptions(t *testing.T) {
	opts := DefaultStreamOptions()
	for _, opt := range []StreamOption{WithBufferSize(5), WithPageSize(2)} {
		opt(&opts)
	}

	if opts.BufferSize != 5 || opts.PageSize != 2 {
		t.Fatalf("Options not applied: %+v", opts)
	}
	if opts.ProgressHandler != nil {
		t.Fatal("Progress handler should default to nil")
	}
}
