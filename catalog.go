/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"sort"
	"sync"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
)

// Catalog holds one DataStore per entity type, keyed by the store's name.
// It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	stores map[string]datastore.DataStore
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		stores: make(map[string]datastore.DataStore),
	}
}

// Register adds ds under ds.Name(). Each entity type may be registered once.
func (c *Catalog) Register(ds datastore.DataStore) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := ds.Name()
	if name == "" {
		return errors.NewValidationError("name", "datastore must have an entity name")
	}
	if _, exists := c.stores[name]; exists {
		return errors.NewStoreExistsError(name)
	}
	c.stores[name] = ds
	return nil
}

// Get retrieves the DataStore registered for the entity name.
func (c *Catalog) Get(name string) (datastore.DataStore, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ds, exists := c.stores[name]
	if !exists {
		return nil, errors.NewStoreNotFoundError(name)
	}
	return ds, nil
}

// MustGet is Get for callers that seeded the catalog themselves; it panics
// when the store is missing.
func (c *Catalog) MustGet(name string) datastore.DataStore {
	ds, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return ds
}

// Remove deletes the DataStore registered for the entity name.
func (c *Catalog) Remove(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.stores[name]; !exists {
		return errors.NewStoreNotFoundError(name)
	}
	delete(c.stores, name)
	return nil
}

// Names returns all registered entity names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.stores))
	for name := range c.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
