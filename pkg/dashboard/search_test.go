package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/busload/pkg/ctdf"
)

func TestSearchLines(t *testing.T) {
	lines := []*ctdf.Line{
		sampleLine(),
		{Identifier: "204", Number: "204", Type: "Ônibus", Route: "Centro via Rodoviária", Capacity: 80},
	}

	assert.Len(t, SearchLines(lines, ""), 2)
	assert.Len(t, SearchLines(lines, "   "), 2)

	results := SearchLines(lines, "BIOPARK")
	if assert.Len(t, results, 1) {
		assert.Equal(t, "019", results[0].Identifier)
	}

	results = SearchLines(lines, "20")
	if assert.Len(t, results, 1) {
		assert.Equal(t, "204", results[0].Identifier)
	}

	assert.Empty(t, SearchLines(lines, "aeroporto"))
}
