// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/get-papers/pkg/types"
)

const createPapersTable = `CREATE TABLE papers (
	position INTEGER PRIMARY KEY,
	pubmed_id TEXT NOT NULL,
	title TEXT,
	publication_date TEXT NOT NULL,
	non_academic_authors TEXT NOT NULL,
	company_affiliations TEXT NOT NULL,
	corresponding_author_email TEXT NOT NULL
)`

// WriteSQLite writes rows into a new SQLite database at path, in a table
// named papers. An existing file at path is replaced. Row order is kept in
// the position column.
func WriteSQLite(path string, rows []types.PaperRow) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createPapersTable); err != nil {
		return fmt.Errorf("creating papers table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO papers (position, pubmed_id, title, publication_date,
		non_academic_authors, company_affiliations, corresponding_author_email)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.Exec(i+1, r.PubmedID, r.Title, r.PublicationDate,
			r.NonAcademicAuthors, r.CompanyAffiliations, r.CorrespondingEmail); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting paper %s: %w", r.PubmedID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing papers: %w", err)
	}
	return nil
}
