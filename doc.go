/*
Package recordstore provides in-memory entity stores for the operations
dashboard of a healthcare-services network: patients, physician groups,
home-health agencies, documents and the like.

Each entity type gets one store, seeded once at startup and then treated as
the source of truth for the session. A store supports create, read, update and
delete, predicate queries, sorting, counting, pagination and streaming. See
package datastore for the contract and datastore/memory for the store itself.

Key Features:
  - Case-insensitive substring matching on string fields, exact matching otherwise
  - Locale-aware sorting by any field
  - Sentinel results instead of errors for missing records
  - Typed access through Go generics
  - Seed datasets from YAML (package fixtures)
  - An explicit session object for the current user (package session)

Basic Usage:

	catalog := recordstore.NewCatalog()
	datasets, err := fixtures.Default()
	if err != nil {
	    return err
	}
	if err := fixtures.Seed(catalog, datasets); err != nil {
	    return err
	}

	patients := catalog.MustGet("Patient")
	matches, _ := patients.FindAll(ctx, storagemodels.Query{"name": "mayer"})

	typed, _ := recordstore.TypedStoreFor[fixtures.Patient](catalog)
	p, _ := typed.FindByID(ctx, "patient-1")
	if p == nil {
	    // no such patient
	}
*/
package recordstore
