package reader

import (
	"net/url"
	"strings"
)

// ValidateURL checks that raw is an absolute http or https URL and returns
// it trimmed.
func ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "please enter a URL")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", Errorf(EINVALID, "please enter a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "please enter a valid URL")
	}

	return raw, nil
}
