/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/metrics"
	"github.com/suparena/recordstore/storagemodels"
)

// firstAutoID is the counter value used for the first auto-assigned id.
const firstAutoID = 1000

// Store is the in-memory implementation of datastore.DataStore.
// Records keep insertion order; replacing a record keeps its position.
type Store struct {
	mu      sync.RWMutex
	name    string
	prefix  string
	data    map[string]storagemodels.Record
	order   []string
	nextID  int
	now     func() time.Time
	locale  language.Tag
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// New creates a store for the entity type name, seeded with the given records.
// Seeding keeps each record as-is: no timestamps are stamped and the id counter
// does not advance. Seed records without an id are skipped.
func New(name string, seed []storagemodels.Record, opts ...Option) *Store {
	s := &Store{
		name:   name,
		prefix: strings.ToLower(name),
		data:   make(map[string]storagemodels.Record, len(seed)),
		order:  make([]string, 0, len(seed)),
		nextID: firstAutoID,
		now:    time.Now,
		locale: language.English,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for i, rec := range seed {
		id := rec.ID()
		if id == "" {
			s.logger.Warn().Str("entity", name).Int("index", i).Msg("skipping seed record without id")
			continue
		}
		s.put(id, rec.Clone())
	}

	s.metrics.SetRecords(s.name, len(s.order))
	s.logger.Debug().Str("entity", name).Int("records", len(s.order)).Msg("store seeded")
	return s
}

// Name returns the entity type name
func (s *Store) Name() string {
	return s.name
}

// Create stores data and returns the materialized record. The id is taken from
// data when present, otherwise assigned as "<name>-<counter>". An existing
// record with the same id is replaced.
func (s *Store) Create(ctx context.Context, data storagemodels.Record) (storagemodels.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.resolveID(data)
	if _, exists := s.data[id]; exists {
		s.logger.Debug().Str("entity", s.name).Str("id", id).Msg("replacing record with colliding id")
	}

	rec := s.materialize(id, data)
	s.put(id, rec)

	s.metrics.ObserveOperation(s.name, metrics.OpCreate)
	s.metrics.SetRecords(s.name, len(s.order))
	s.logger.Debug().Str("entity", s.name).Str("id", id).Msg("record created")
	return rec.Clone(), nil
}

// Insert behaves like Create but fails with an AlreadyExistsError instead of
// replacing a record.
func (s *Store) Insert(ctx context.Context, data storagemodels.Record) (storagemodels.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.ObserveOperation(s.name, metrics.OpInsert)

	id := s.resolveID(data)
	if _, exists := s.data[id]; exists {
		return nil, errors.NewAlreadyExistsError(s.name, id)
	}

	rec := s.materialize(id, data)
	s.put(id, rec)

	s.metrics.SetRecords(s.name, len(s.order))
	s.logger.Debug().Str("entity", s.name).Str("id", id).Msg("record inserted")
	return rec.Clone(), nil
}

// FindByID returns the record with the given id, or nil if there is none.
func (s *Store) FindByID(ctx context.Context, id string) (storagemodels.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.metrics.ObserveOperation(s.name, metrics.OpFindByID)
	return s.data[id].Clone(), nil
}

// FindAll returns the records matching q in insertion order. An empty q
// matches every record.
func (s *Store) FindAll(ctx context.Context, q storagemodels.Query) ([]storagemodels.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.metrics.ObserveOperation(s.name, metrics.OpFindAll)
	return cloneAll(s.findAll(q)), nil
}

// Count returns the number of records FindAll(q) would return.
func (s *Store) Count(ctx context.Context, q storagemodels.Query) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.metrics.ObserveOperation(s.name, metrics.OpCount)
	return len(s.findAll(q)), nil
}

// List returns every record, sorted by sort when it names a field.
func (s *Store) List(ctx context.Context, sort storagemodels.SortSpec) ([]storagemodels.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.metrics.ObserveOperation(s.name, metrics.OpList)
	recs := s.findAll(nil)
	sortRecords(recs, sort, s.locale)
	return cloneAll(recs), nil
}

// FindWithPagination returns the 1-indexed page of FindAll(q). Pages past the
// end are empty; Pagination.Total still reports the full match count.
func (s *Store) FindWithPagination(ctx context.Context, q storagemodels.Query, page, limit int) (*storagemodels.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.metrics.ObserveOperation(s.name, metrics.OpPaginate)

	if page < 1 {
		page = storagemodels.DefaultPage
	}
	if limit < 1 {
		limit = storagemodels.DefaultLimit
	}

	matches := s.findAll(q)
	total := len(matches)

	// (page-1)*limit may overflow int, so page is bounded first.
	start := total
	if page-1 < total/limit+1 {
		start = min((page-1)*limit, total)
	}
	end := total
	if limit < total-start {
		end = start + limit
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return &storagemodels.Page{
		Data: cloneAll(matches[start:end]),
		Pagination: storagemodels.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Update merges updates onto the record with the given id and refreshes its
// updated_date. It returns nil, leaving the store untouched, if there is no
// such record. The id field itself cannot be changed.
func (s *Store) Update(ctx context.Context, id string, updates storagemodels.Record) (storagemodels.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.ObserveOperation(s.name, metrics.OpUpdate)

	existing, ok := s.data[id]
	if !ok {
		return nil, nil
	}

	merged := existing.Clone()
	for k, v := range updates.Clone() {
		if k == storagemodels.FieldID {
			continue
		}
		merged[k] = v
	}
	merged[storagemodels.FieldUpdatedDate] = s.timestamp()
	s.data[id] = merged

	s.logger.Debug().Str("entity", s.name).Str("id", id).Int("fields", len(updates)).Msg("record updated")
	return merged.Clone(), nil
}

// Delete removes the record with the given id and reports whether it existed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.ObserveOperation(s.name, metrics.OpDelete)

	if _, exists := s.data[id]; !exists {
		return false, nil
	}

	delete(s.data, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.metrics.SetRecords(s.name, len(s.order))
	s.logger.Debug().Str("entity", s.name).Str("id", id).Msg("record deleted")
	return true, nil
}

// Helper methods

// resolveID returns the caller's id when one is supplied, otherwise the next
// auto-assigned id. Must be called with the write lock held.
func (s *Store) resolveID(data storagemodels.Record) string {
	if !isBlank(data[storagemodels.FieldID]) {
		return data.ID()
	}
	id := fmt.Sprintf("%s-%d", s.prefix, s.nextID)
	s.nextID++
	return id
}

// materialize builds a stored record from caller data. Caller-supplied
// timestamps win over the stamped ones.
func (s *Store) materialize(id string, data storagemodels.Record) storagemodels.Record {
	stamp := s.timestamp()
	rec := data.Clone()
	if rec == nil {
		rec = make(storagemodels.Record, 3)
	}
	rec[storagemodels.FieldID] = id
	if isBlank(rec[storagemodels.FieldCreatedDate]) {
		rec[storagemodels.FieldCreatedDate] = stamp
	}
	if isBlank(rec[storagemodels.FieldUpdatedDate]) {
		rec[storagemodels.FieldUpdatedDate] = stamp
	}
	return rec
}

func (s *Store) put(id string, rec storagemodels.Record) {
	if _, exists := s.data[id]; !exists {
		s.order = append(s.order, id)
	}
	s.data[id] = rec
}

// findAll returns the stored records matching q without copying them.
func (s *Store) findAll(q storagemodels.Query) []storagemodels.Record {
	m := newMatcher()
	out := make([]storagemodels.Record, 0, len(s.order))
	for _, id := range s.order {
		rec := s.data[id]
		if m.matches(rec, q) {
			out = append(out, rec)
		}
	}
	return out
}

// timestamp formats the current time as ISO-8601 UTC with milliseconds.
func (s *Store) timestamp() string {
	return strfmt.DateTime(s.now().UTC()).String()
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	str, ok := v.(string)
	return ok && str == ""
}

func cloneAll(recs []storagemodels.Record) []storagemodels.Record {
	out := make([]storagemodels.Record, len(recs))
	for i, rec := range recs {
		out[i] = rec.Clone()
	}
	return out
}
