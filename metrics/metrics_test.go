/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordsOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveOperation("Patient", OpCreate)
	m.ObserveOperation("Patient", OpCreate)
	m.ObserveOperation("Document", OpDelete)
	m.SetRecords("Patient", 12)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations().WithLabelValues("Patient", OpCreate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations().WithLabelValues("Document", OpDelete)))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.Records().WithLabelValues("Patient")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"recordstore_operations_total", "recordstore_records"}, names)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveOperation("Patient", OpFindAll)
		m.SetRecords("Patient", 1)
	})
}
