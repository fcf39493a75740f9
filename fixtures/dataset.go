/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

//go:embed data/*.yaml
var embedded embed.FS

// Dataset is the seed data for one entity type, as stored in a YAML file:
//
//	entity: Patient
//	records:
//	  - id: patient-1
//	    name: Pamela Mayer
type Dataset struct {
	Entity  string                 `yaml:"entity"`
	Records []storagemodels.Record `yaml:"records"`
}

// Default returns the dataset shipped with the package.
func Default() ([]Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded fixtures: %w", err)
	}
	return Load(sub)
}

// LoadDir reads every .yaml and .yml file in dir.
func LoadDir(dir string) ([]Dataset, error) {
	return Load(os.DirFS(dir))
}

// Load reads the YAML seed files at the root of fsys. Files naming the same
// entity are merged in file-name order.
func Load(fsys fs.FS) ([]Dataset, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list seed files: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch path.Ext(e.Name()) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var datasets []Dataset
	index := make(map[string]int)
	for _, name := range names {
		ds, err := loadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		if i, ok := index[ds.Entity]; ok {
			datasets[i].Records = append(datasets[i].Records, ds.Records...)
			continue
		}
		index[ds.Entity] = len(datasets)
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

func loadFile(fsys fs.FS, name string) (Dataset, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read seed file %s: %w", name, err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}
	if ds.Entity == "" {
		return Dataset{}, fmt.Errorf("seed file %s: %w", name, errors.NewValidationError("entity", "must not be empty"))
	}
	return ds, nil
}
