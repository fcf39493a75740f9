/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"math"
	"testing"
)

func TestSortKey(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "empty string", value: "", want: ""},
		{name: "string", value: "Mayer", want: "Mayer"},
		{name: "false", value: false, want: ""},
		{name: "true", value: true, want: "true"},
		{name: "zero int", value: 0, want: ""},
		{name: "zero float", value: 0.0, want: ""},
		{name: "NaN", value: math.NaN(), want: ""},
		{name: "int", value: 42, want: "42"},
		{name: "float", value: 1.5, want: "1.5"},
		{name: "whole float", value: 7.0, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sortKey(tt.value); got != tt.want {
				t.Errorf("sortKey(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "int and float", a: 42, b: 42.0, want: true},
		{name: "int and string", a: 42, b: "42", want: false},
		{name: "string and int", a: "42", b: 42, want: false},
		{name: "different numbers", a: 1, b: 2, want: false},
		{name: "nil and nil", a: nil, b: nil, want: true},
		{name: "bools", a: true, b: true, want: true},
		{name: "nested maps", a: map[string]any{"x": 1}, b: map[string]any{"x": 1}, want: true},
		{name: "NaN", a: math.NaN(), b: math.NaN(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valuesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("valuesEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
