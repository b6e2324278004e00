package browse

import "fmt"

// OpenURLError is returned when the browser or browse command fails.
type OpenURLError struct {
	URL string
	Err error
}

func (e *OpenURLError) Error() string {
	return fmt.Sprintf("cannot open URL %s: %v", e.URL, e.Err)
}

func (e *OpenURLError) Unwrap() error {
	return e.Err
}
