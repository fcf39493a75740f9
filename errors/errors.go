/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches missing catalog stores and records a caller asked
	// for by name. Store lookups of a missing id return nil instead.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists matches Insert collisions and duplicate store registration.
	ErrAlreadyExists = errors.New("already exists")

	ErrInvalidInput = errors.New("invalid input")

	// ErrUnregisteredType matches typed access for a Go type with no entity name.
	ErrUnregisteredType = errors.New("type not registered")
)

// NotFoundError names a missing record, or a missing store when ID is empty.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("no store registered for entity %q", e.Entity)
	}
	return fmt.Sprintf("%s record %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError names a taken record id, or an entity whose store is
// already registered when ID is empty.
type AlreadyExistsError struct {
	Entity string
	ID     string
}

func (e *AlreadyExistsError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("store for entity %q is already registered", e.Entity)
	}
	return fmt.Sprintf("%s record %q already exists", e.Entity, e.ID)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError rejects a bad argument, config value or credential.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnregisteredTypeError reports a Go type never bound to an entity name with
// registry.RegisterType.
type UnregisteredTypeError struct {
	GoType string
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("go type %s is not registered to an entity", e.GoType)
}

func (e *UnregisteredTypeError) Is(target error) bool {
	return target == ErrUnregisteredType
}

// NewNotFoundError reports that entity has no record with id.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewStoreNotFoundError reports that no store is registered for entity.
func NewStoreNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError reports that entity already holds a record with id.
func NewAlreadyExistsError(entity, id string) error {
	return &AlreadyExistsError{Entity: entity, ID: id}
}

// NewStoreExistsError reports a second store registered for entity.
func NewStoreExistsError(entity string) error {
	return &AlreadyExistsError{Entity: entity}
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewUnregisteredTypeError(goType string) error {
	return &UnregisteredTypeError{GoType: goType}
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err wraps an AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnregisteredType reports whether err wraps an UnregisteredTypeError.
func IsUnregisteredType(err error) bool {
	return errors.Is(err, ErrUnregisteredType)
}
