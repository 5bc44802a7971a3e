package models

import "time"

// Chunk is a contiguous window of transcript text used for embedding and retrieval.
// Offsets are character (rune) positions in the joined transcript text.
type Chunk struct {
	Index       int           `json:"index"`
	Text        string        `json:"text"`
	StartOffset int           `json:"start_offset"`
	EndOffset   int           `json:"end_offset"`
	StartTime   time.Duration `json:"start_time"` // Start of the caption segment holding the first character
	VideoID     string        `json:"video_id"`
}
