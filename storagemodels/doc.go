/*
Package storagemodels defines the data structures used throughout the record store.

Key Types:

Record:
One entity instance, a field-name to value map. Stored records always carry
id, created_date and updated_date:

	rec := storagemodels.Record{
	    "id":     "patient-1000",
	    "name":   "Pamela Mayer",
	    "status": "billable",
	}

Query:
A predicate. String fields match by case-insensitive substring, everything
else by exact value:

	q := storagemodels.Query{"name": "mayer", "visits": 3}

SortSpec:
A field name, optionally prefixed with "-" for descending order:

	store.List(ctx, "-created_date")

Page and Pagination:
The {data, pagination} envelope returned by FindWithPagination.

StreamResult:
Records delivered over a channel by Stream, with index and page metadata.

RecordFrom and DecodeRecord convert between Records and typed structs using
the structs' json tags.
*/
package storagemodels
