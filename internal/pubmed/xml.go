package pubmed

import (
	"encoding/xml"
	"io"
	"strings"
)

// article is the parsed form of one PubmedArticle, before classification.
type article struct {
	ID      string
	Title   string
	Year    string
	Authors []author
}

// author is one entry of an article's AuthorList. Any field may be empty.
type author struct {
	Given       string
	Family      string
	Affiliation string
}

// EFetch XML structures. Only the fields the report needs are mapped.
type xmlArticleSet struct {
	XMLName  xml.Name           `xml:"PubmedArticleSet"`
	Articles []xmlPubmedArticle `xml:"PubmedArticle"`
}

type xmlPubmedArticle struct {
	PMID    string      `xml:"MedlineCitation>PMID"`
	Title   mixedText   `xml:"MedlineCitation>Article>ArticleTitle"`
	Year    string      `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>Year"`
	Authors []xmlAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type xmlAuthor struct {
	LastName     string      `xml:"LastName"`
	ForeName     string      `xml:"ForeName"`
	Affiliations []mixedText `xml:"AffiliationInfo>Affiliation"`
}

// mixedText collects all character data inside an element, including text
// nested in inline markup such as <i> or <sup> in titles.
type mixedText string

func (t *mixedText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tt := tok.(type) {
		case xml.CharData:
			b.Write(tt)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				*t = mixedText(b.String())
				return nil
			}
			depth--
		}
	}
}

// parseArticleSet decodes an EFetch document. The root element must be
// PubmedArticleSet; anything else, or malformed markup, is an error.
func parseArticleSet(r io.Reader) ([]article, error) {
	d := xml.NewDecoder(r)
	d.Entity = xml.HTMLEntity

	var set xmlArticleSet
	if err := d.Decode(&set); err != nil {
		return nil, err
	}

	articles := make([]article, 0, len(set.Articles))
	for _, pa := range set.Articles {
		a := article{
			ID:    strings.TrimSpace(pa.PMID),
			Title: string(pa.Title),
			Year:  strings.TrimSpace(pa.Year),
		}
		for _, xa := range pa.Authors {
			au := author{
				Given:  xa.ForeName,
				Family: xa.LastName,
			}
			if len(xa.Affiliations) > 0 {
				au.Affiliation = string(xa.Affiliations[0])
			}
			a.Authors = append(a.Authors, au)
		}
		articles = append(articles, a)
	}
	return articles, nil
}
