/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"time"

	"github.com/suparena/recordstore/metrics"
	"github.com/suparena/recordstore/storagemodels"
)

// Stream delivers the records matching q over a channel. The matches are
// captured when Stream is called; later writes do not affect the stream.
// The channel is closed when every record is sent or ctx is done.
func (s *Store) Stream(ctx context.Context, q storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.BufferSize < 0 {
		options.BufferSize = 0
	}
	if options.PageSize < 1 {
		options.PageSize = storagemodels.DefaultStreamOptions().PageSize
	}

	s.mu.RLock()
	snapshot := cloneAll(s.findAll(q))
	s.metrics.ObserveOperation(s.name, metrics.OpStream)
	s.mu.RUnlock()

	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)
	go s.streamWorker(ctx, snapshot, options, resultCh)
	return resultCh
}

func (s *Store) streamWorker(
	ctx context.Context,
	snapshot []storagemodels.Record,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult,
) {
	defer close(resultCh)

	startTime := time.Now()
	var pages int

	reportProgress := func(items int64) {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: items,
			PagesProcessed: pages,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(items) / elapsed
		}
		options.ProgressHandler(progress)
	}

	for i, rec := range snapshot {
		result := storagemodels.StreamResult{
			Record: rec,
			Meta: storagemodels.StreamMeta{
				Index:      int64(i),
				PageNumber: i/options.PageSize + 1,
				Timestamp:  s.now(),
			},
		}

		select {
		case <-ctx.Done():
			return
		case resultCh <- result:
		}

		if (i+1)%options.PageSize == 0 {
			pages++
			reportProgress(int64(i + 1))
		}
	}

	if len(snapshot)%options.PageSize != 0 {
		pages++
		reportProgress(int64(len(snapshot)))
	}
}
