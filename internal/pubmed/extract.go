// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"bytes"
	"context"
	"strings"

	"github.com/pdiddy/get-papers/internal/affiliation"
	"github.com/pdiddy/get-papers/internal/httputil"
	"github.com/pdiddy/get-papers/pkg/types"
)

// Extract fetches the full records for ids in one EFetch call and returns a
// row for every record with at least one non-academic author. Records with
// none are dropped.
//
// An empty ids slice returns an empty result without touching the network.
func (c *Client) Extract(ctx context.Context, ids []string) ([]types.PaperRow, error) {
	if len(ids) == 0 {
		return []types.PaperRow{}, nil
	}

	params := c.params()
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "xml")

	body, err := httputil.Get(ctx, c.httpClient, c.fetchURL, params, c.userAgent)
	if err != nil {
		return nil, transportError("efetch", c.fetchURL, err)
	}

	articles, err := parseArticleSet(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Op: "efetch", Err: err}
	}

	rows := make([]types.PaperRow, 0, len(articles))
	for _, a := range articles {
		if row, ok := buildRow(a); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// buildRow classifies the authors of a and assembles its report row. It
// reports false when no author is non-academic.
//
// The email is searched across every affiliation of the record, not only the
// commercial ones.
func buildRow(a article) (types.PaperRow, bool) {
	var all, names, companies []string

	for _, au := range a.Authors {
		if au.Affiliation == "" {
			continue
		}
		all = append(all, au.Affiliation)
		if affiliation.IsNonAcademic(au.Affiliation) {
			names = append(names, displayName(au))
			companies = append(companies, au.Affiliation)
		}
	}

	if len(names) == 0 {
		return types.PaperRow{}, false
	}

	year := a.Year
	if year == "" {
		year = types.UnknownDate
	}
	email, ok := affiliation.ExtractEmail(all)
	if !ok {
		email = types.EmailNotFound
	}

	return types.PaperRow{
		PubmedID:            a.ID,
		Title:               a.Title,
		PublicationDate:     year,
		NonAcademicAuthors:  strings.Join(names, types.ListSeparator),
		CompanyAffiliations: strings.Join(companies, types.ListSeparator),
		CorrespondingEmail:  email,
	}, true
}

// displayName joins given and family name with one space and trims the result.
func displayName(au author) string {
	return strings.TrimSpace(au.Given + " " + au.Family)
}
