package comdirect

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrAuthentication covers rejected credentials, failed or unsupported
	// TAN challenges and sessions the server refused to activate.
	ErrAuthentication = errors.New("authentication failed")

	// ErrSessionExpired is returned when an authenticated request is about
	// to be built while the access token is no longer valid.
	ErrSessionExpired = errors.New("session expired")
)

// ProtocolError is returned when the server answers with a status code
// outside the set a request descriptor accepts.
type ProtocolError struct {
	Accepted   []int
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("status code should be one of %v, but was %v. Response: %s",
		e.Accepted, e.StatusCode, e.Body)
}
