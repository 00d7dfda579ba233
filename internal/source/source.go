package source

import (
	"context"
	"errors"
	"fmt"
)

// AuthError indicates that authentication has failed or expired for the
// payload endpoint. It is returned by clients when a 401 response is
// received.
type AuthError struct {
	Endpoint string
	Message  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error (%s): %s", e.Endpoint, e.Message)
}

// IsAuthError reports whether err (or any error in its chain) is an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// PayloadSource is the contract for anything that can produce a raw board
// payload: the roadmap HTTP client in production, fakes in tests.
type PayloadSource interface {
	// FetchPayload retrieves the current board payload.
	FetchPayload(ctx context.Context) (*Payload, error)
}
