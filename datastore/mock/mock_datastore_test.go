/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/datastore/memory"
	"github.com/suparena/recordstore/datastore/mock"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

var _ datastore.DataStore = (*mock.DataStore)(nil)

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Delegates", func(t *testing.T) {
		mockStore := mock.New(memory.New("Patient", nil))

		rec, err := mockStore.Create(ctx, storagemodels.Record{"name": "Test"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		retrieved, err := mockStore.FindByID(ctx, rec.ID())
		if err != nil || retrieved["name"] != "Test" {
			t.Fatalf("FindByID mismatch: %v, %v", retrieved, err)
		}
		if mockStore.Name() != "Patient" {
			t.Fatalf("Expected name Patient, got %s", mockStore.Name())
		}
		if mockStore.Calls("Create") != 1 || mockStore.Calls("FindByID") != 1 {
			t.Fatalf("Unexpected call counts: create=%d find=%d", mockStore.Calls("Create"), mockStore.Calls("FindByID"))
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		inner := memory.New("Patient", []storagemodels.Record{{"id": "p1"}})
		mockStore := mock.New(inner)

		createErr := errors.NewValidationError("name", "required")
		mockStore.WithCreateError(createErr)
		if _, err := mockStore.Create(ctx, storagemodels.Record{"name": "x"}); err != createErr {
			t.Fatalf("Expected create error, got: %v", err)
		}
		if _, err := mockStore.Insert(ctx, storagemodels.Record{"name": "x"}); err != createErr {
			t.Fatalf("Expected insert error, got: %v", err)
		}

		deleteErr := fmt.Errorf("backend unavailable")
		mockStore.WithDeleteError(deleteErr)
		if _, err := mockStore.Delete(ctx, "p1"); err != deleteErr {
			t.Fatalf("Expected delete error, got: %v", err)
		}

		updateErr := fmt.Errorf("backend unavailable")
		mockStore.WithUpdateError(updateErr)
		if _, err := mockStore.Update(ctx, "p1", storagemodels.Record{"a": 1}); err != updateErr {
			t.Fatalf("Expected update error, got: %v", err)
		}

		// Failed calls never reach the wrapped store.
		if n, _ := inner.Count(ctx, nil); n != 1 {
			t.Fatalf("Expected wrapped store untouched, got %d records", n)
		}
	})

	t.Run("QueryErrors", func(t *testing.T) {
		queryErr := fmt.Errorf("query failed")
		mockStore := mock.New(memory.New("Document", nil)).WithQueryError(queryErr)

		if _, err := mockStore.FindAll(ctx, nil); err != queryErr {
			t.Fatalf("Expected FindAll error, got %v", err)
		}
		if _, err := mockStore.Count(ctx, nil); err != queryErr {
			t.Fatalf("Expected Count error, got %v", err)
		}
		if _, err := mockStore.List(ctx, "name"); err != queryErr {
			t.Fatalf("Expected List error, got %v", err)
		}
		if _, err := mockStore.FindWithPagination(ctx, nil, 1, 10); err != queryErr {
			t.Fatalf("Expected FindWithPagination error, got %v", err)
		}

		var streamErrs int
		for result := range mockStore.Stream(ctx, nil) {
			if result.Error == queryErr {
				streamErrs++
			}
		}
		if streamErrs != 1 {
			t.Fatalf("Expected one stream error, got %d", streamErrs)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		mockStore := mock.New(memory.New("Document", nil)).WithQueryError(fmt.Errorf("boom"))
		mockStore.FindAll(ctx, nil)

		mockStore.Reset()
		if mockStore.Calls("FindAll") != 0 {
			t.Fatalf("Expected call counts cleared, got %d", mockStore.Calls("FindAll"))
		}
		if _, err := mockStore.FindAll(ctx, nil); err != nil {
			t.Fatalf("Expected errors cleared, got %v", err)
		}
	})
}
