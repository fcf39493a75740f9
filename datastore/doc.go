/*
Package datastore defines the core interface of the record store.

DataStore provides CRUD, predicate queries, sorting, counting, pagination and
streaming over the records of one entity type:

	type DataStore interface {
	    Name() string
	    Create(ctx context.Context, data storagemodels.Record) (storagemodels.Record, error)
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

The context-taking signatures mirror a remote persistence API so callers can be
moved onto one later without changes.

Implementations:
  - memory: the in-memory entity store, seeded once at construction
  - mock: a wrapper that injects errors and counts calls, for testing callers
*/
package datastore
