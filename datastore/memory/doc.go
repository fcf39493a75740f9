/*
Package memory provides the in-memory entity store.

A Store holds the records of one entity type for the lifetime of the process.
It is seeded once from a fixed dataset and then mutated through Create, Insert,
Update and Delete:

	patients := memory.New("Patient", seed,
	    memory.WithLogger(logger),
	    memory.WithMetrics(m),
	)

	rec, _ := patients.Create(ctx, storagemodels.Record{"name": "Pamela Mayer"})
	// rec.ID() == "patient-1000"

	page, _ := patients.FindWithPagination(ctx, storagemodels.Query{"status": "billable"}, 2, 5)

All operations complete immediately. The store is guarded by a read/write
mutex, so it may be shared between goroutines, and returned records are copies
that callers may modify freely.
*/
package memory
