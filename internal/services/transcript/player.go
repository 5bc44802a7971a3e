package transcript

import (
	"errors"
	"strings"
)

// playerResponseMarker marks the start of the player response JSON in watch page HTML
const playerResponseMarker = "ytInitialPlayerResponse = "

var errNoCaptionTracks = errors.New("no caption tracks")

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// tracks returns the caption tracks or an error naming why there are none
func (p *playerResponse) tracks() ([]captionTrack, error) {
	if p.Captions == nil || len(p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		if p.PlayabilityStatus != nil && p.PlayabilityStatus.Reason != "" {
			return nil, errors.New("captions unavailable: " + p.PlayabilityStatus.Reason)
		}
		return nil, errNoCaptionTracks
	}
	return p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// needsPoToken reports whether a caption track URL only works inside a browser session
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickTrack prefers a manual track in a preferred language, then an
// auto-generated one in a preferred language, then any English track,
// then the first usable one.
// The bool is false when every track needs a browser session.
func pickTrack(tracks []captionTrack, languages []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}

	for _, lang := range languages {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range languages {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// extractJSON returns the complete JSON object at the start of b by tracking brace depth outside strings
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inString := false
	escaped := false
	for i, c := range b {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
