package acl

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/adapters/clients"
	"github.com/JavierMartorano/inspirational-quotes-challenge/internal/domain"
)

// MapHTTPError maps a provider response or client-level failure to a
// domain error. Every mapping lands on a recoverable error; callers
// treat them all as a signal to move to the next content tier.
func MapHTTPError(resp *http.Response, clientErr error, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(ServiceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewNotFoundError(ServiceName, operation)

	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.NewUnavailableError(ServiceName, "rate limit exceeded")

	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.NewUnavailableError(ServiceName,
			fmt.Sprintf("%s failed with status %d", operation, resp.StatusCode))

	default:
		// 4xx from the provider usually means a bad credential or a
		// malformed keyword. Either way the API path is unusable for
		// this request.
		return domain.NewUnavailableError(ServiceName,
			fmt.Sprintf("%s rejected with status %d", operation, resp.StatusCode))
	}
}

// mapClientError translates client-level errors to domain errors.
func mapClientError(err error, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(ServiceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(ServiceName,
			fmt.Sprintf("attempts exhausted during %s", operation))

	default:
		return domain.NewUnavailableError(ServiceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}
