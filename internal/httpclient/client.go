package httpclient

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// youtubeConsentCookie skips the cookie consent interstitial served to EU visitors
var youtubeConsentCookie = &http.Cookie{
	Name:   "CONSENT",
	Value:  "YES+cb",
	Path:   "/",
	Domain: ".youtube.com",
}

// NewDefaultHTTPClient creates a simple HTTP client with a timeout
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// NewYouTubeClient creates an HTTP client with a cookie jar seeded for
// youtube.com, so the watch page returns the player response rather than a
// consent form. Cookies set by YouTube during a fetch are kept for the
// follow-up caption requests.
func NewYouTubeClient(timeout time.Duration) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	base, err := url.Parse("https://www.youtube.com/")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	jar.SetCookies(base, []*http.Cookie{youtubeConsentCookie})

	return &http.Client{
		Jar:     jar,
		Timeout: timeout,
	}, nil
}
