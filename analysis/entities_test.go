package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGazetteerExtractor_Extract(t *testing.T) {
	extractor, err := NewGazetteerExtractor()
	require.NoError(t, err)

	tests := []struct {
		name          string
		input         string
		people        []string
		places        []string
		organizations []string
		dates         []string
	}{
		{
			name:          "Mixed sentence",
			input:         "Alice flew to Paris with Dr. Smith on Monday to visit Google",
			people:        []string{"Alice", "Dr. Smith"},
			places:        []string{"Paris"},
			organizations: []string{"Google"},
			dates:         []string{"Monday"},
		},
		{
			name:   "Multi word places, case insensitive",
			input:  "I love new york and Paris",
			places: []string{"new york", "Paris"},
		},
		{
			name:  "No partial word match",
			input: "A Parisian cafe",
		},
		{
			name:          "Company suffix",
			input:         "I work at Acme Corp since 2021-03-15",
			organizations: []string{"Acme Corp"},
			dates:         []string{"2021-03-15"},
		},
		{
			name:   "Known first name with a surname",
			input:  "John Doe will call tomorrow",
			people: []string{"John Doe"},
			dates:  []string{"tomorrow"},
		},
		{
			name:  "Lowercase name is not a person",
			input: "mary had a little lamb",
		},
		{
			name:  "Relative date keeps the longest match",
			input: "see you next Friday",
			dates: []string{"next Friday"},
		},
		{
			name:  "Empty string",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			entities, err := extractor.Extract(tt.input)
			req.NoError(err)
			req.ElementsMatch(tt.people, entities.People)
			req.ElementsMatch(tt.places, entities.Places)
			req.ElementsMatch(tt.organizations, entities.Organizations)
			req.ElementsMatch(tt.dates, entities.Dates)
		})
	}
}

func TestGazetteerExtractor_KeepsOrderOfAppearance(t *testing.T) {
	req := require.New(t)
	extractor, err := NewGazetteerExtractorFromLists([]string{"Tokyo", "Berlin"}, []string{"NASA"}, []string{"Emma"})
	req.NoError(err)

	entities, err := extractor.Extract("Berlin then Tokyo then Berlin again")
	req.NoError(err)
	req.Equal([]string{"Berlin", "Tokyo"}, entities.Places)
}

func TestGazetteerExtractor_EmptyLists(t *testing.T) {
	req := require.New(t)
	extractor, err := NewGazetteerExtractorFromLists(nil, nil, nil)
	req.NoError(err)

	entities, err := extractor.Extract("Paris is nice on Sunday")
	req.NoError(err)
	req.Empty(entities.Places)
	req.Equal([]string{"Sunday"}, entities.Dates)
}
