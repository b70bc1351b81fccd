// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation classifies author affiliation strings and pulls contact
// details out of them. Everything here is pure: no I/O, no state.
package affiliation

import "strings"

// commercialMarkers flag an affiliation as a company. Matching is
// case-sensitive substring matching.
var commercialMarkers = []string{
	"Inc",
	"Ltd",
	"LLC",
	"Pharma",
	"Biotech",
	"Corporation",
	"Company",
}

// academicMarkers veto a commercial match.
var academicMarkers = []string{
	"University",
	"College",
	"Institute",
	"Hospital",
	"School",
	"Center",
	"Centre",
}

// IsNonAcademic reports whether affiliation names a commercial organization:
// it contains at least one commercial marker and no academic marker. An
// academic marker always wins, so "XYZ Pharma Institute" is academic.
func IsNonAcademic(affiliation string) bool {
	return containsAny(affiliation, commercialMarkers) && !containsAny(affiliation, academicMarkers)
}

// CommercialMarkers returns a copy of the commercial marker set.
func CommercialMarkers() []string {
	return append([]string(nil), commercialMarkers...)
}

// AcademicMarkers returns a copy of the academic marker set.
func AcademicMarkers() []string {
	return append([]string(nil), academicMarkers...)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
