/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a DataStore wrapper for testing code that calls a store
package mock

import (
	"context"
	"sync"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/storagemodels"
)

// DataStore wraps a datastore.DataStore, counting calls and optionally
// failing writes and queries with configured errors.
type DataStore struct {
	inner datastore.DataStore

	mu          sync.RWMutex
	calls       map[string]int
	createError error
	updateError error
	deleteError error
	queryError  error
}

// New wraps inner
func New(inner datastore.DataStore) *DataStore {
	return &DataStore{
		inner: inner,
		calls: make(map[string]int),
	}
}

// WithCreateError makes Create and Insert operations return an error
func (m *DataStore) WithCreateError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createError = err
	return m
}

// WithUpdateError makes Update operations return an error
func (m *DataStore) WithUpdateError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore) WithDeleteError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteError = err
	return m
}

// WithQueryError makes FindAll, Count, List and FindWithPagination return an error
func (m *DataStore) WithQueryError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryError = err
	return m
}

// Calls returns how many times the named method was invoked
func (m *DataStore) Calls(method string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[method]
}

// Reset clears call counts and configured errors
func (m *DataStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = make(map[string]int)
	m.createError, m.updateError, m.deleteError, m.queryError = nil, nil, nil, nil
}

func (m *DataStore) record(method string, errOf func() error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[method]++
	if errOf == nil {
		return nil
	}
	return errOf()
}

// Name returns the wrapped store's name
func (m *DataStore) Name() string {
	return m.inner.Name()
}

// Create delegates unless a create error is configured
func (m *DataStore) Create(ctx context.Context, data storagemodels.Record) (storagemodels.Record, error) {
	if err := m.record("Create", func() error { return m.createError }); err != nil {
		return nil, err
	}
	return m.inner.Create(ctx, data)
}

// Insert delegates unless a create error is configured
func (m *DataStore) Insert(ctx context.Context, data storagemodels.Record) (storagemodels.Record, error) {
	if err := m.record("Insert", func() error { return m.createError }); err != nil {
		return nil, err
	}
	return m.inner.Insert(ctx, data)
}

// FindByID always delegates
func (m *DataStore) FindByID(ctx context.Context, id string) (storagemodels.Record, error) {
	m.record("FindByID", nil)
	return m.inner.FindByID(ctx, id)
}

// FindAll delegates unless a query error is configured
func (m *DataStore) FindAll(ctx context.Context, q storagemodels.Query) ([]storagemodels.Record, error) {
	if err := m.record("FindAll", func() error { return m.queryError }); err != nil {
		return nil, err
	}
	return m.inner.FindAll(ctx, q)
}

// Count delegates unless a query error is configured
func (m *DataStore) Count(ctx context.Context, q storagemodels.Query) (int, error) {
	if err := m.record("Count", func() error { return m.queryError }); err != nil {
		return 0, err
	}
	return m.inner.Count(ctx, q)
}

// List delegates unless a query error is configured
func (m *DataStore) List(ctx context.Context, sort storagemodels.SortSpec) ([]storagemodels.Record, error) {
	if err := m.record("List", func() error { return m.queryError }); err != nil {
		return nil, err
	}
	return m.inner.List(ctx, sort)
}

// FindWithPagination delegates unless a query error is configured
func (m *DataStore) FindWithPagination(ctx context.Context, q storagemodels.Query, page, limit int) (*storagemodels.Page, error) {
	if err := m.record("FindWithPagination", func() error { return m.queryError }); err != nil {
		return nil, err
	}
	return m.inner.FindWithPagination(ctx, q, page, limit)
}

// Update delegates unless an update error is configured
func (m *DataStore) Update(ctx context.Context, id string, updates storagemodels.Record) (storagemodels.Record, error) {
	if err := m.record("Update", func() error { return m.updateError }); err != nil {
		return nil, err
	}
	return m.inner.Update(ctx, id, updates)
}

// Delete delegates unless a delete error is configured
func (m *DataStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := m.record("Delete", func() error { return m.deleteError }); err != nil {
		return false, err
	}
	return m.inner.Delete(ctx, id)
}

// Stream delivers a single error result when a query error is configured
func (m *DataStore) Stream(ctx context.Context, q storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	if err := m.record("Stream", func() error { return m.queryError }); err != nil {
		ch := make(chan storagemodels.StreamResult, 1)
		ch <- storagemodels.StreamResult{Error: err}
		close(ch)
		return ch
	}
	return m.inner.Stream(ctx, q, opts...)
}
