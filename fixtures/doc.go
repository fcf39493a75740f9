// Package fixtures holds the dashboard's entity models and seed datasets.
//
// Seed files are YAML documents with an entity name and a list of records.
// Default returns the embedded dataset; LoadDir reads one from disk. Seed
// turns datasets into memory stores registered in a catalog.
package fixtures
