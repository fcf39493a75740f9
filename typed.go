/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"context"
	"fmt"
	"reflect"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/registry"
	"github.com/suparena/recordstore/storagemodels"
)

// TypedStore provides type-safe access to a DataStore whose records model T.
// Records are converted through T's json tags.
type TypedStore[T any] struct {
	ds datastore.DataStore
}

// NewTypedStore wraps ds for type T
func NewTypedStore[T any](ds datastore.DataStore) *TypedStore[T] {
	return &TypedStore[T]{ds: ds}
}

// TypedStoreFor looks up the store for T's registered entity name in c
func TypedStoreFor[T any](c *Catalog) (*TypedStore[T], error) {
	name, ok := registry.EntityName[T]()
	if !ok {
		var zero T
		return nil, errors.NewUnregisteredTypeError(reflect.TypeOf(&zero).Elem().String())
	}

	ds, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return NewTypedStore[T](ds), nil
}

// Store returns the underlying DataStore
func (s *TypedStore[T]) Store() datastore.DataStore {
	return s.ds
}

// Create stores entity and returns it as materialized by the store
func (s *TypedStore[T]) Create(ctx context.Context, entity T) (*T, error) {
	rec, err := storagemodels.RecordFrom(entity)
	if err != nil {
		return nil, err
	}

	created, err := s.ds.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.ds.Name(), err)
	}
	return decode[T](created)
}

// FindByID returns the entity with the given id, or nil if there is none
func (s *TypedStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	rec, err := s.ds.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return decode[T](rec)
}

// FindAll returns every entity matching q
func (s *TypedStore[T]) FindAll(ctx context.Context, q storagemodels.Query) ([]T, error) {
	recs, err := s.ds.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](recs)
}

// List returns every entity, sorted by sort
func (s *TypedStore[T]) List(ctx context.Context, sort storagemodels.SortSpec) ([]T, error) {
	recs, err := s.ds.List(ctx, sort)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](recs)
}

// FindWithPagination returns one page of entities matching q
func (s *TypedStore[T]) FindWithPagination(ctx context.Context, q storagemodels.Query, page, limit int) ([]T, storagemodels.Pagination, error) {
	p, err := s.ds.FindWithPagination(ctx, q, page, limit)
	if err != nil {
		return nil, storagemodels.Pagination{}, err
	}
	entities, err := decodeAll[T](p.Data)
	if err != nil {
		return nil, storagemodels.Pagination{}, err
	}
	return entities, p.Pagination, nil
}

// Update merges updates onto the entity with the given id. It returns nil if
// there is no such entity.
func (s *TypedStore[T]) Update(ctx context.Context, id string, updates storagemodels.Record) (*T, error) {
	rec, err := s.ds.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return decode[T](rec)
}

// Delete removes the entity with the given id
func (s *TypedStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	return s.ds.Delete(ctx, id)
}

func decode[T any](rec storagemodels.Record) (*T, error) {
	out := new(T)
	if err := storagemodels.DecodeRecord(rec, out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeAll[T any](recs []storagemodels.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := decode[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}
