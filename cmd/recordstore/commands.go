/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suparena/recordstore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/registry"
	"github.com/suparena/recordstore/storagemodels"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.out, recordstore.ReadBuildInfo())
			return err
		},
	}
}

func newEntitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List entity types with their record counts and Go types",
		Long: `List every entity type that is seeded or has a registered Go type.

An entity with a Go type but no seeded store is shown with "seeded": false;
typed access to it fails until a seed file provides it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type entry struct {
				Entity  string `json:"entity"`
				Records int    `json:"records"`
				Seeded  bool   `json:"seeded"`
				GoType  string `json:"goType,omitempty"`
			}

			names := append(a.catalog.Names(), registry.Names()...)
			slices.Sort(names)
			names = slices.Compact(names)

			out := make([]entry, 0, len(names))
			for _, name := range names {
				e := entry{Entity: name}
				if t, err := registry.TypeFor(name); err == nil {
					e.GoType = t.String()
				}
				if store, err := a.catalog.Get(name); err == nil {
					n, err := store.Count(cmd.Context(), nil)
					if err != nil {
						return err
					}
					e.Records, e.Seeded = n, true
				} else {
					a.logger.Warn().Str("entity", name).Msg("registered type has no seeded store")
				}
				out = append(out, e)
			}
			return a.printJSON(out)
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <entity> <id>",
		Short: "Print one record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}
			rec, err := store.FindByID(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			if rec == nil {
				return errors.NewNotFoundError(args[0], args[1])
			}
			return a.printJSON(rec)
		},
	}
}

func newQueryCmd(a *app) *cobra.Command {
	var (
		where []string
		sort  string
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "query <entity>",
		Short: "Print the records matching --where filters",
		Long: `Print the records matching every --where filter.

A filter is either field=text, matched as a case-insensitive substring, or
field:=json, matched by exact value (numbers, booleans, null).

With --page or --limit the result is the {data, pagination} envelope; with
--sort the whole store is listed in that order and --where is not allowed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}
			q, err := parseWhere(where)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch {
			case sort != "":
				if len(q) > 0 {
					return errors.NewValidationError("sort", "cannot be combined with --where")
				}
				recs, err := store.List(ctx, storagemodels.SortSpec(sort))
				if err != nil {
					return err
				}
				return a.printJSON(recs)

			case cmd.Flags().Changed("page") || cmd.Flags().Changed("limit"):
				if !cmd.Flags().Changed("limit") {
					limit = a.cfg.PageLimit
				}
				res, err := store.FindWithPagination(ctx, q, page, limit)
				if err != nil {
					return err
				}
				return a.printJSON(res)

			default:
				recs, err := store.FindAll(ctx, q)
				if err != nil {
					return err
				}
				return a.printJSON(recs)
			}
		},
	}

	cmd.Flags().StringArrayVarP(&where, "where", "w", nil, "Filter as field=text or field:=json (repeatable)")
	cmd.Flags().StringVarP(&sort, "sort", "s", "", "Sort field, prefixed with - for descending")
	cmd.Flags().IntVar(&page, "page", storagemodels.DefaultPage, "Page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", storagemodels.DefaultLimit, "Records per page")
	return cmd
}

func newCountCmd(a *app) *cobra.Command {
	var where []string

	cmd := &cobra.Command{
		Use:   "count <entity>",
		Short: "Print how many records match --where filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}
			q, err := parseWhere(where)
			if err != nil {
				return err
			}
			n, err := store.Count(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printJSON(map[string]int{"count": n})
		},
	}

	cmd.Flags().StringArrayVarP(&where, "where", "w", nil, "Filter as field=text or field:=json (repeatable)")
	return cmd
}

// parseWhere turns field=text and field:=json filters into a Query.
func parseWhere(filters []string) (storagemodels.Query, error) {
	q := make(storagemodels.Query, len(filters))
	for _, f := range filters {
		if field, raw, ok := strings.Cut(f, ":="); ok && field != "" && !strings.Contains(field, "=") {
			var v any
			if err := json.Unmarshal([]byte(raw), &v); err != nil {
				return nil, errors.NewValidationError(field, fmt.Sprintf("invalid JSON value %q", raw))
			}
			q[field] = v
			continue
		}
		field, value, ok := strings.Cut(f, "=")
		if !ok || field == "" {
			return nil, errors.NewValidationError("where", fmt.Sprintf("expected field=value, got %q", f))
		}
		q[field] = value
	}
	return q, nil
}
