package substack

import "fmt"

// StatusError reports a non-2xx response from the posts API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("posts API returned status %d", e.Code)
	}
	return fmt.Sprintf("posts API returned status %d: %s", e.Code, e.Body)
}

// TransportError reports a failure to reach the API or to read its response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
