/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/recordstore/storagemodels"
)

// DataStore holds the records of one entity type.
//
// Lookups that find nothing are not errors: FindByID and Update return a nil
// Record, Delete returns false. A non-nil error means the operation itself
// failed.
type DataStore interface {
	// Name returns the entity type name, e.g. "Patient".
	Name() string

	// Create stores data, assigning an id and timestamps as needed. A record
	// with the same id is replaced in place.
	Create(ctx context.Context, data storagemodels.Record) (storagemodels.Record, error)

	// Insert is Create that refuses to replace an existing record.
	Insert(ctx context.Context, data storagemodels.Record) (storagemodels.Record, error)

	FindByID(ctx context.Context, id string) (storagemodels.Record, error)

	FindAll(ctx context.Context, q storagemodels.Query) ([]storagemodels.Record, error)

	Count(ctx context.Context, q storagemodels.Query) (int, error)

	List(ctx context.Context, sort storagemodels.SortSpec) ([]storagemodels.Record, error)

	FindWithPagination(ctx context.Context, q storagemodels.Query, page, limit int) (*storagemodels.Page, error)

	Update(ctx context.Context, id string, updates storagemodels.Record) (storagemodels.Record, error)

	Delete(ctx context.Context, id string) (bool, error)

	Stream(ctx context.Context, q storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
}
