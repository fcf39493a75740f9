/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixtures

import (
	"fmt"

	"github.com/suparena/recordstore"
	"github.com/suparena/recordstore/datastore/memory"
)

// Seed creates one memory store per dataset and registers it in catalog.
// The options apply to every store.
func Seed(catalog *recordstore.Catalog, datasets []Dataset, opts ...memory.Option) error {
	for _, ds := range datasets {
		store := memory.New(ds.Entity, ds.Records, opts...)
		if err := catalog.Register(store); err != nil {
			return fmt.Errorf("failed to register %s store: %w", ds.Entity, err)
		}
	}
	return nil
}
