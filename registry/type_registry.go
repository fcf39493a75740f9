/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// typeRegistry binds entity names (like "Patient") to the Go types that model them.
var (
	byName = make(map[string]reflect.Type)
	byType = make(map[reflect.Type]string)
	mu     sync.RWMutex
)

// RegisterType associates the Go type T with an entity name.
// It panics if either the name or the type is already registered, to prevent
// accidental overrides.
func RegisterType[T any](entity string) {
	t := typeOf[T]()

	mu.Lock()
	defer mu.Unlock()
	if existing, exists := byName[entity]; exists {
		panic(fmt.Sprintf("type registry: entity %q already registered to %s", entity, existing))
	}
	if existing, exists := byType[t]; exists {
		panic(fmt.Sprintf("type registry: type %s already registered as %q", t, existing))
	}
	byName[entity] = t
	byType[t] = entity
}

// EntityName returns the entity name registered for T, if any.
func EntityName[T any]() (string, bool) {
	t := typeOf[T]()

	mu.RLock()
	defer mu.RUnlock()
	name, ok := byType[t]
	return name, ok
}

// TypeFor returns the Go type registered under entity.
// If no type is registered, it returns an error.
func TypeFor(entity string) (reflect.Type, error) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := byName[entity]
	if !ok {
		return nil, fmt.Errorf("type registry: no type registered for entity %q", entity)
	}
	return t, nil
}

// Names returns every registered entity name in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes entity and its type. It exists for tests that register
// throwaway types.
func Unregister(entity string) {
	mu.Lock()
	defer mu.Unlock()
	if t, ok := byName[entity]; ok {
		delete(byType, t)
		delete(byName, entity)
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
