// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers/pkg/types"
)

func sampleRows() []types.PaperRow {
	return []types.PaperRow{
		{
			PubmedID:            "39000001",
			Title:               "Industry-funded trials, revisited",
			PublicationDate:     "2024",
			NonAcademicAuthors:  "Bob Jones; Carol King",
			CompanyAffiliations: "Acme Pharma LLC; Widgets Ltd",
			CorrespondingEmail:  "bob@acme.com",
		},
		{
			PubmedID:            "39000002",
			Title:               "",
			PublicationDate:     types.UnknownDate,
			NonAcademicAuthors:  "Dana Park",
			CompanyAffiliations: "Delta Biotech, Inc.",
			CorrespondingEmail:  types.EmailNotFound,
		},
	}
}

// --- FormatFromPath / Resolve ---

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    types.ReportFormat
		wantErr bool
	}{
		{"", types.FormatTable, false},
		{"results.csv", types.FormatCSV, false},
		{"OUT.CSV", types.FormatCSV, false},
		{"r.json", types.FormatJSON, false},
		{"r.yaml", types.FormatYAML, false},
		{"r.yml", types.FormatYAML, false},
		{"r.db", types.FormatSQLite, false},
		{"r.sqlite", types.FormatSQLite, false},
		{"r.txt", types.FormatTable, false},
		{"r.xlsx", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	cfg, err := Resolve(types.ReportConfig{Output: "x.csv"})
	require.NoError(t, err)
	assert.Equal(t, types.FormatCSV, cfg.Format)

	cfg, err = Resolve(types.ReportConfig{Format: types.FormatJSON, Output: "x.out"})
	require.NoError(t, err)
	assert.Equal(t, types.FormatJSON, cfg.Format)

	_, err = Resolve(types.ReportConfig{Format: types.FormatSQLite})
	assert.Error(t, err)

	_, err = Resolve(types.ReportConfig{Format: "xml"})
	assert.Error(t, err)
}

// --- CSV ---

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCSV(sampleRows(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"PubmedID", "Title", "Publication Date", "Non-academic Author(s)", "Company Affiliation(s)", "Corresponding Author Email"}, records[0])
	assert.Equal(t, sampleRows()[0].Columns(), records[1])
	assert.Equal(t, []string{"39000002", "", "Unknown", "Dana Park", "Delta Biotech, Inc.", "Not found"}, records[2])
}

func TestFormatCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCSV(nil, &buf))
	assert.Equal(t, strings.Join(types.ColumnNames, ",")+"\n", buf.String())
}

// --- JSON / YAML ---

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleRows(), &buf))

	var got []types.PaperRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows(), got)
	assert.Contains(t, buf.String(), `"corresponding_author_email": "bob@acme.com"`)
}

func TestFormatJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(sampleRows(), &buf))

	var got []types.PaperRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows(), got)
	assert.Contains(t, buf.String(), "pubmed_id: \"39000001\"")
}

// --- Table ---

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleRows(), &buf)
	out := buf.String()

	lines := strings.Split(out, "\n")
	for _, name := range types.ColumnNames {
		assert.Contains(t, lines[0], name)
	}
	assert.True(t, strings.HasPrefix(lines[1], "---"))
	assert.Contains(t, out, "39000001")
	assert.Contains(t, out, "Not found")
	assert.Contains(t, out, "2 papers")
}

func TestFormatTable_TruncatesLongValues(t *testing.T) {
	rows := sampleRows()[:1]
	rows[0].Title = strings.Repeat("é", 80)

	var buf bytes.Buffer
	FormatTable(rows, &buf)
	assert.Contains(t, buf.String(), strings.Repeat("é", 47)+"...")
	assert.NotContains(t, buf.String(), strings.Repeat("é", 48))
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	assert.Equal(t, NoResults+"\n", buf.String())
}

// --- Files ---

func TestWriteFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	cfg, err := Resolve(types.ReportConfig{Output: path})
	require.NoError(t, err)
	require.NoError(t, WriteFile(cfg, sampleRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PubmedID,Title,"))
	assert.NotContains(t, string(data), "stale")
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")

	// Writing twice replaces the first database.
	require.NoError(t, WriteSQLite(path, sampleRows()))
	require.NoError(t, WriteSQLite(path, sampleRows()))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM papers`).Scan(&count))
	assert.Equal(t, 2, count)

	rs, err := db.Query(`SELECT pubmed_id, title, publication_date, non_academic_authors,
		company_affiliations, corresponding_author_email FROM papers ORDER BY position`)
	require.NoError(t, err)
	defer rs.Close()

	var got []types.PaperRow
	for rs.Next() {
		var r types.PaperRow
		require.NoError(t, rs.Scan(&r.PubmedID, &r.Title, &r.PublicationDate,
			&r.NonAcademicAuthors, &r.CompanyAffiliations, &r.CorrespondingEmail))
		got = append(got, r)
	}
	require.NoError(t, rs.Err())
	assert.Equal(t, sampleRows(), got)
}
