/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package metrics exposes Prometheus instrumentation for record stores.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels.
const (
	OpCreate   = "create"
	OpInsert   = "insert"
	OpFindByID = "find_by_id"
	OpFindAll  = "find_all"
	OpCount    = "count"
	OpList     = "list"
	OpPaginate = "find_with_pagination"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpStream   = "stream"
)

// Metrics counts store operations and tracks store sizes per entity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	records    *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which is convenient in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recordstore",
			Name:      "operations_total",
			Help:      "Store operations by entity and operation.",
		}, []string{"entity", "operation"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "recordstore",
			Name:      "records",
			Help:      "Records currently held by each entity store.",
		}, []string{"entity"}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.records)
	}
	return m
}

// ObserveOperation counts one operation against entity.
func (m *Metrics) ObserveOperation(entity, operation string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(entity, operation).Inc()
}

// SetRecords records the current size of entity's store.
func (m *Metrics) SetRecords(entity string, n int) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(entity).Set(float64(n))
}

// Operations exposes the operation counter, mainly for tests.
func (m *Metrics) Operations() *prometheus.CounterVec {
	return m.operations
}

// Records exposes the size gauge, mainly for tests.
func (m *Metrics) Records() *prometheus.GaugeVec {
	return m.records
}
