package ctdf

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

type QueryLine struct {
	Identifier string
}

func (q *QueryLine) ToBson() bson.M {
	if q.Identifier != "" {
		return bson.M{"identifier": q.Identifier}
	}

	return nil
}

// QueryLines lists the catalog. An empty Search matches every line.
type QueryLines struct {
	Search string
}

func (q *QueryLines) ToBson() bson.M {
	search := strings.TrimSpace(q.Search)
	if search == "" {
		return bson.M{}
	}

	pattern := bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}

	return bson.M{"$or": bson.A{
		bson.M{"number": pattern},
		bson.M{"route": pattern},
		bson.M{"type": pattern},
	}}
}

// Matches applies the same case-insensitive search used by the Mongo query
// to an in-memory line.
func (q *QueryLines) Matches(line *Line) bool {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return true
	}

	for _, field := range []string{line.Number, line.Route, line.Type} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}

	return false
}
