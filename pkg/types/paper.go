// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers pipeline.
package types

const (
	// UnknownDate is substituted when a record carries no publication year.
	UnknownDate = "Unknown"

	// EmailNotFound is substituted when no affiliation contains an email.
	EmailNotFound = "Not found"

	// ListSeparator joins the author and affiliation lists of a PaperRow.
	ListSeparator = "; "
)

// ColumnNames lists the report columns in output order.
var ColumnNames = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// PaperRow is one line of the report: a paper with at least one author
// affiliated with a commercial organization.
//
// NonAcademicAuthors and CompanyAffiliations are ListSeparator-joined lists
// of equal length; element i of one belongs to element i of the other.
type PaperRow struct {
	// PubmedID is the PMID of the record.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title; empty when the record has none.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the publication year, or UnknownDate.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors holds display names of authors classified non-academic.
	NonAcademicAuthors string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations holds the affiliation of each non-academic author.
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found in any affiliation of the
	// record, or EmailNotFound.
	CorrespondingEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}

// Columns returns the row values in ColumnNames order.
func (r PaperRow) Columns() []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PublicationDate,
		r.NonAcademicAuthors,
		r.CompanyAffiliations,
		r.CorrespondingEmail,
	}
}
