package dashboard

import "github.com/travigo/busload/pkg/ctdf"

// SearchLines filters lines by the header search box text.
func SearchLines(lines []*ctdf.Line, search string) []LineHeader {
	query := ctdf.QueryLines{Search: search}
	results := []LineHeader{}

	for _, line := range lines {
		if query.Matches(line) {
			results = append(results, NewLineHeader(line))
		}
	}

	return results
}
