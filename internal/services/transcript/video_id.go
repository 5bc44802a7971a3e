package transcript

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidVideoURL is returned when no video ID can be found in a URL
var ErrInvalidVideoURL = errors.New("invalid video URL")

var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ParseVideoID extracts the 11-character video ID from a watch, youtu.be,
// shorts, embed or live URL. A bare ID is accepted as-is.
func ParseVideoID(rawURL string) (string, error) {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidVideoURL)
	}
	if videoIDPattern.MatchString(raw) {
		return raw, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidVideoURL, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if len(segments) > 0 && segments[0] == "watch" {
			id = u.Query().Get("v")
		} else if len(segments) > 1 {
			switch segments[0] {
			case "shorts", "embed", "live", "v", "e":
				id = segments[1]
			}
		}
	default:
		return "", fmt.Errorf("%w: unsupported host %q", ErrInvalidVideoURL, u.Hostname())
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: no video id in %q", ErrInvalidVideoURL, rawURL)
	}
	return id, nil
}
