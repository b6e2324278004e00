package github

import "fmt"

// StatusError is returned for any non-200 API response.
type StatusError struct {
	Status int
	Msg    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GitHub API response status %d: %s", e.Status, e.Msg)
}

// NoSearchResultError is returned when a repository search has no hits.
type NoSearchResultError struct {
	Query string
}

func (e *NoSearchResultError) Error() string {
	return fmt.Sprintf("no repository was hit for query '%s'", e.Query)
}
