/*
Package errors provides semantic error types for the record store.

Missing records are not errors: FindByID and Update return a nil record and
Delete returns false. The types here cover the remaining failure paths, which
can be checked with errors.Is or the helper functions.

Common Errors:

	var (
	    ErrNotFound         = errors.New("not found")
	    ErrAlreadyExists    = errors.New("already exists")
	    ErrInvalidInput     = errors.New("invalid input")
	    ErrUnregisteredType = errors.New("type not registered")
	)

Usage:

	store, err := catalog.Get("Patient")
	if errors.IsNotFound(err) {
	    // no store was seeded for that entity
	}

	_, err = store.Insert(ctx, storagemodels.Record{"id": "p1"})
	if errors.IsAlreadyExists(err) {
	    // id p1 is taken; use Create to overwrite
	}

	_, err = sess.Login(ctx, "", "")
	if errors.IsValidationError(err) {
	    // both credentials are required
	}
*/
package errors
