package models

import (
	"strings"
	"time"
)

// Segment is one caption line with its position in the video
type Segment struct {
	Text     string        `json:"text"`
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

// Transcript is the ordered caption text of a single video.
// It is treated as immutable once returned by a TranscriptSource.
type Transcript struct {
	VideoID  string    `json:"video_id"`
	URL      string    `json:"url"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// Text joins the segment texts with single spaces
func (t *Transcript) Text() string {
	parts := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// IsEmpty reports whether the transcript carries no caption text
func (t *Transcript) IsEmpty() bool {
	if t == nil {
		return true
	}
	for _, s := range t.Segments {
		if strings.TrimSpace(s.Text) != "" {
			return false
		}
	}
	return true
}
