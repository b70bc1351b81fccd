// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the resolve-then-extract sequence for one query.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/pdiddy/get-papers/pkg/types"
)

// Resolver turns a query into record identifiers.
type Resolver interface {
	Resolve(ctx context.Context, query string, limit int) ([]string, error)
}

// Extractor turns record identifiers into report rows.
type Extractor interface {
	Extract(ctx context.Context, ids []string) ([]types.PaperRow, error)
}

// Result holds the output of one run.
type Result struct {
	IDs  []string
	Rows []types.PaperRow
}

// Run resolves query and extracts the resulting identifiers, strictly in
// that order. Errors from either stage are returned unchanged; extraction is
// not attempted when resolution fails.
func Run(ctx context.Context, r Resolver, e Extractor, query string, limit int, log *slog.Logger) (Result, error) {
	log.Debug("searching PubMed", "query", query, "limit", limit)

	ids, err := r.Resolve(ctx, query, limit)
	if err != nil {
		return Result{}, err
	}
	log.Debug("found paper IDs", "count", len(ids))

	rows, err := e.Extract(ctx, ids)
	if err != nil {
		return Result{IDs: ids}, err
	}
	log.Debug("papers with non-academic authors", "count", len(rows))

	return Result{IDs: ids, Rows: rows}, nil
}
