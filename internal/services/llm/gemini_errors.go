package llm

import (
	"strings"
)

// IsRateLimitError checks if an error is a Gemini rate limit error.
// Matches 429 status codes and RESOURCE_EXHAUSTED errors.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "quota")
}

// IsAuthError checks if an error is a rejected or missing API key
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "API_KEY_INVALID") ||
		strings.Contains(errStr, "API key not valid") ||
		strings.Contains(errStr, "PERMISSION_DENIED") ||
		strings.Contains(errStr, "UNAUTHENTICATED")
}

// ErrorReason returns a short label for logs and user messages
func ErrorReason(err error) string {
	switch {
	case err == nil:
		return ""
	case IsAuthError(err):
		return "invalid_api_key"
	case IsRateLimitError(err):
		return "quota_exceeded"
	default:
		return "provider_error"
	}
}
