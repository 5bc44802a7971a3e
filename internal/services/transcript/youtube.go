// Package transcript fetches YouTube caption transcripts.
//
// The watch page is scraped first: its ytInitialPlayerResponse script lists
// the caption tracks. When that fails the ANDROID innertube player endpoint
// is asked for the same list. The chosen track's timed-text XML is then
// parsed into timed segments. Nothing is retried or cached.
package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/arbor"

	"github.com/theadtya/youtube-assistant/internal/common"
	"github.com/theadtya/youtube-assistant/internal/interfaces"
	"github.com/theadtya/youtube-assistant/internal/models"
)

const (
	defaultWatchURL  = "https://www.youtube.com/watch"
	defaultPlayerURL = "https://www.youtube.com/youtubei/v1/player"

	androidClientVersion = "20.10.38"
	androidUserAgent     = "com.google.android.youtube/" + androidClientVersion + " (Linux; U; Android 11) gzip"

	maxWatchPageBytes = 6 * 1024 * 1024
	maxCaptionBytes   = 2 * 1024 * 1024
)

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

// YouTubeFetcher implements interfaces.TranscriptSource against youtube.com
type YouTubeFetcher struct {
	client    *http.Client
	languages []string
	userAgent string
	watchURL  string
	playerURL string
	logger    arbor.ILogger
}

var _ interfaces.TranscriptSource = (*YouTubeFetcher)(nil)

// NewYouTubeFetcher creates a fetcher. A nil client gets one with the configured timeout.
func NewYouTubeFetcher(client *http.Client, config *common.Config, logger arbor.ILogger) *YouTubeFetcher {
	if client == nil {
		client = &http.Client{Timeout: config.TranscriptTimeout()}
	}
	languages := config.Transcript.Languages
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	return &YouTubeFetcher{
		client:    client,
		languages: languages,
		userAgent: config.Transcript.UserAgent,
		watchURL:  defaultWatchURL,
		playerURL: defaultPlayerURL,
		logger:    logger,
	}
}

// FetchTranscript resolves the video ID in url and returns its caption segments
func (f *YouTubeFetcher) FetchTranscript(ctx context.Context, url string) (*models.Transcript, error) {
	videoID, err := ParseVideoID(url)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	tracks, err := f.tracksFromWatchPage(ctx, videoID)
	if err != nil {
		f.logger.Warn().
			Str("video_id", videoID).
			Err(err).
			Msg("Watch page scrape failed, trying player endpoint")

		tracks, err = f.tracksFromPlayer(ctx, videoID)
		if err != nil {
			return nil, fmt.Errorf("no caption tracks for video %s: %w", videoID, err)
		}
	}

	track, ok := pickTrack(tracks, f.languages)
	if !ok {
		return nil, fmt.Errorf("all caption tracks for video %s require a browser session", videoID)
	}

	segments, err := f.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	f.logger.Debug().
		Str("video_id", videoID).
		Str("language", track.LanguageCode).
		Str("kind", track.Kind).
		Int("segments", len(segments)).
		Dur("duration", time.Since(start)).
		Msg("Fetched transcript")

	return &models.Transcript{
		VideoID:  videoID,
		URL:      url,
		Language: track.LanguageCode,
		Segments: segments,
	}, nil
}

// tracksFromWatchPage finds the player response script in the watch page HTML
func (f *YouTubeFetcher) tracksFromWatchPage(ctx context.Context, videoID string) ([]captionTrack, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.watchURL+"?v="+videoID, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	body, err := f.do(req, maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}

	var raw []byte
	doc.Find("script").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := s.Text()
		idx := strings.Index(text, playerResponseMarker)
		if idx < 0 {
			return true
		}
		raw = extractJSON([]byte(text[idx+len(playerResponseMarker):]))
		return raw == nil
	})
	if raw == nil {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return player.tracks()
}

// tracksFromPlayer asks the ANDROID innertube player endpoint for caption tracks
func (f *YouTubeFetcher) tracksFromPlayer(ctx context.Context, videoID string) ([]captionTrack, error) {
	payload, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidClientVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.playerURL+"?prettyPrint=false", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidClientVersion)

	body, err := f.do(req, maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("player endpoint: %w", err)
	}

	var player playerResponse
	if err := json.Unmarshal(body, &player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return player.tracks()
}

func (f *YouTubeFetcher) fetchTimedText(ctx context.Context, baseURL string) ([]models.Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("caption url: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	body, err := f.do(req, maxCaptionBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return parseTimedText(body)
}

// do runs req and returns at most limit bytes of a 200 response body
func (f *YouTubeFetcher) do(req *http.Request, limit int64) ([]byte, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}
