// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affiliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNonAcademic(t *testing.T) {
	tests := []struct {
		name        string
		affiliation string
		want        bool
	}{
		{"commercial only", "Acme Biotech Inc", true},
		{"llc", "Acme Pharma LLC, Boston, MA", true},
		{"ltd", "Widgets Ltd., London", true},
		{"corporation", "Big Corporation", true},
		{"company", "The Example Company", true},
		{"academic veto", "XYZ Pharma Institute", false},
		{"hospital veto", "Acme Inc and General Hospital", false},
		{"centre spelling", "Biotech Research Centre", false},
		{"center spelling", "Pharma Center", false},
		{"university only", "State University", false},
		{"neither marker", "123 Main St", false},
		{"empty", "", false},
		{"case sensitive commercial", "acme pharma llc", false},
		{"case sensitive academic", "Acme Pharma, university campus", true},
		// Substring matching: "Incorporated" and "Incyte" both contain "Inc".
		{"substring match", "Incyte", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNonAcademic(tt.affiliation))
		})
	}
}

func TestIsNonAcademic_AcademicMarkerAlwaysVetoes(t *testing.T) {
	for _, c := range commercialMarkers {
		for _, a := range academicMarkers {
			s := c + " " + a
			assert.False(t, IsNonAcademic(s), "%q should be academic", s)
		}
	}
}

func TestMarkersAreCopies(t *testing.T) {
	cm := CommercialMarkers()
	cm[0] = "changed"
	assert.Equal(t, "Inc", commercialMarkers[0])

	am := AcademicMarkers()
	am[0] = "changed"
	assert.Equal(t, "University", academicMarkers[0])
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		want   string
		wantOK bool
	}{
		{
			name:   "first string matches",
			input:  []string{"reach us at a.b@company.co", "no email here"},
			want:   "a.b@company.co",
			wantOK: true,
		},
		{
			name:   "no match",
			input:  []string{"no email here"},
			wantOK: false,
		},
		{
			name:   "nil input",
			input:  nil,
			wantOK: false,
		},
		{
			name:   "later string matches",
			input:  []string{"Acme Inc", "Dept. of X. Electronic address: jane_doe+lab@acme-bio.example.com."},
			want:   "jane_doe+lab@acme-bio.example.com",
			wantOK: true,
		},
		{
			name:   "first match within string wins",
			input:  []string{"x@one.org and y@two.org"},
			want:   "x@one.org",
			wantOK: true,
		},
		{
			name:   "earlier string wins over later",
			input:  []string{"first@a.io", "second@b.io"},
			want:   "first@a.io",
			wantOK: true,
		},
		{
			name:   "one letter tld rejected",
			input:  []string{"user@host.x"},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractEmail(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
