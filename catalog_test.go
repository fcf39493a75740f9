/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"testing"

	"github.com/suparena/recordstore/datastore/memory"
	"github.com/suparena/recordstore/errors"
)

func TestCatalog(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		catalog := NewCatalog()

		// Register datastore
		err := catalog.Register(memory.New("Patient", nil))
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		// Get datastore
		retrieved, err := catalog.Get("Patient")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved.Name() != "Patient" {
			t.Fatalf("Expected Patient store, got %s", retrieved.Name())
		}

		// List datastores
		names := catalog.Names()
		if len(names) != 1 || names[0] != "Patient" {
			t.Fatalf("Expected [Patient], got %v", names)
		}

		// Remove datastore
		if err := catalog.Remove("Patient"); err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}

		// Verify removal
		_, err = catalog.Get("Patient")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found after removal, got %v", err)
		}
		if err := catalog.Remove("Patient"); !errors.IsNotFound(err) {
			t.Fatalf("Expected not found removing twice, got %v", err)
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		catalog := NewCatalog()

		if err := catalog.Register(memory.New("Document", nil)); err != nil {
			t.Fatalf("First registration failed: %v", err)
		}
		err := catalog.Register(memory.New("Document", nil))
		if !errors.IsAlreadyExists(err) {
			t.Fatalf("Expected duplicate registration error, got %v", err)
		}
	})

	t.Run("UnnamedStore", func(t *testing.T) {
		catalog := NewCatalog()
		if err := catalog.Register(memory.New("", nil)); !errors.IsValidationError(err) {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})

	t.Run("NamesAreSorted", func(t *testing.T) {
		catalog := NewCatalog()
		for _, name := range []string{"Patient", "Agency", "Document"} {
			if err := catalog.Register(memory.New(name, nil)); err != nil {
				t.Fatalf("Register %s failed: %v", name, err)
			}
		}
		names := catalog.Names()
		want := []string{"Agency", "Document", "Patient"}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("Expected %v, got %v", want, names)
			}
		}
	})

	t.Run("MustGetPanicsWhenMissing", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected MustGet to panic")
			}
		}()
		NewCatalog().MustGet("Agency")
	})
}

func TestReadBuildInfo(t *testing.T) {
	info := ReadBuildInfo()
	if info.Version != Version || info.GoVersion == "" {
		t.Fatalf("Unexpected build info %+v", info)
	}
}

func TestBuildInfoString(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{
			name: "NoRevision",
			info: BuildInfo{Version: "1.2.3", GoVersion: "go1.24.0"},
			want: "recordstore 1.2.3 (devel, go1.24.0)",
		},
		{
			name: "LongRevision",
			info: BuildInfo{Version: "1.2.3", Revision: "0123456789abcdef0123", GoVersion: "go1.24.0"},
			want: "recordstore 1.2.3 (0123456789ab, go1.24.0)",
		},
		{
			name: "Modified",
			info: BuildInfo{Version: "1.2.3", Revision: "abc", Modified: true, GoVersion: "go1.24.0"},
			want: "recordstore 1.2.3 (abc-dirty, go1.24.0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Fatalf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
