package validation

import (
	"net/url"
	"strings"

	apperrors "go-writing-services/internal/errors"
)

// NormalizeBaseURL trims raw, drops trailing slashes and checks that the
// result is an absolute http(s) URL endpoint paths can be appended to.
func NormalizeBaseURL(raw string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return "", apperrors.NewValidationError("base URL is empty", nil)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", apperrors.NewValidationError("base URL is malformed", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", apperrors.NewValidationError("base URL must use http or https", nil)
	}
	if u.Hostname() == "" {
		return "", apperrors.NewValidationError("base URL has no host", nil)
	}
	if u.User != nil {
		return "", apperrors.NewValidationError("base URL must not carry credentials", nil)
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return "", apperrors.NewValidationError("base URL must not carry a query or fragment", nil)
	}

	return base, nil
}
