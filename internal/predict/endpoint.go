package predict

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultPath is appended to endpoints given as a bare base URL.
const DefaultPath = "/predict"

// ResolveEndpoint validates raw and returns the full prediction URL.
//
// Example:
//
//	endpoint, err := ResolveEndpoint("http://127.0.0.1:5000")
//	// endpoint = "http://127.0.0.1:5000/predict"
func ResolveEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("endpoint cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid endpoint %q (expected http or https URL, e.g., http://127.0.0.1:5000)", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid endpoint %q: missing host", raw)
	}

	if u.Path == "" || u.Path == "/" {
		u.Path = DefaultPath
	}
	return u.String(), nil
}
