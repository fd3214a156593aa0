package providers

import (
	"net/http"

	"github.com/digitalshield/shield/pkg/domain"
)

// MapStatus translates an HTTP-style backend status into the closed error
// taxonomy. Success statuses are the caller's responsibility.
func MapStatus(status int, message string) error {
	switch status {
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusPaymentRequired:
		return domain.ErrQuotaExhausted
	default:
		return domain.NewUpstreamError(status, message)
	}
}
