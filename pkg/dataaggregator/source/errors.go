package source

import "errors"

var (
	ErrUnsupportedQuery = errors.New("data source does not support query")
	ErrLineNotFound     = errors.New("could not find a matching Line")
)
