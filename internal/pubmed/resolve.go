// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/pdiddy/get-papers/internal/httputil"
)

// SearchResult is the part of an ESearch response the pipeline uses.
type SearchResult struct {
	// IDs are the PMIDs in upstream order.
	IDs []string

	// Count is the total number of matches upstream, which may exceed len(IDs).
	Count int

	// QueryTranslation is the query as PubMed interpreted it.
	QueryTranslation string

	// Warning carries esearchresult.ERROR when PubMed rejected part of the query.
	Warning string
}

// Resolve returns up to limit PMIDs matching query, in the order PubMed
// returned them. The query is passed through unchanged.
func (c *Client) Resolve(ctx context.Context, query string, limit int) ([]string, error) {
	res, err := c.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return res.IDs, nil
}

// Search runs ESearch and returns the identifiers with the response metadata.
func (c *Client) Search(ctx context.Context, query string, limit int) (SearchResult, error) {
	if limit <= 0 {
		return SearchResult{}, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	params := c.params()
	params.Set("term", query)
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(limit))

	body, err := httputil.Get(ctx, c.httpClient, c.searchURL, params, c.userAgent)
	if err != nil {
		return SearchResult{}, transportError("esearch", c.searchURL, err)
	}

	if !gjson.ValidBytes(body) {
		return SearchResult{}, &TransportError{
			Op:  "esearch",
			URL: c.searchURL,
			Err: errors.New("response is not valid JSON"),
		}
	}

	result := gjson.GetBytes(body, "esearchresult")
	var res SearchResult
	for _, id := range result.Get("idlist").Array() {
		res.IDs = append(res.IDs, id.String())
	}
	if res.IDs == nil {
		res.IDs = []string{}
	}
	res.Count = int(result.Get("count").Int())
	res.QueryTranslation = result.Get("querytranslation").String()
	res.Warning = result.Get("ERROR").String()
	return res, nil
}

// transportError wraps a failure from httputil.Get, keeping the status code
// when there was one.
func transportError(op, url string, err error) *TransportError {
	te := &TransportError{Op: op, URL: url, Err: err}
	var se *httputil.StatusError
	if errors.As(err, &se) {
		te.StatusCode = se.StatusCode
	}
	return te
}
