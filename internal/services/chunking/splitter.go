// Package chunking splits transcript text into overlapping fixed-size windows.
package chunking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theadtya/youtube-assistant/internal/models"
)

const (
	// DefaultChunkSize is the window length in characters
	DefaultChunkSize = 1000
	// DefaultChunkOverlap is the number of characters shared by neighbouring windows
	DefaultChunkOverlap = 100
)

// Splitter cuts text into windows of size characters where each window
// starts size-overlap characters after the previous one. The final window
// is truncated to the end of the text.
type Splitter struct {
	size    int
	overlap int
}

// NewSplitter creates a splitter; overlap must be smaller than size
func NewSplitter(size, overlap int) (*Splitter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", size, overlap)
	}
	return &Splitter{size: size, overlap: overlap}, nil
}

// NewDefaultSplitter returns the 1000/100 splitter used for indexing
func NewDefaultSplitter() *Splitter {
	return &Splitter{size: DefaultChunkSize, overlap: DefaultChunkOverlap}
}

// Span is a half-open [Start, End) range of character offsets
type Span struct {
	Start int
	End   int
}

// Spans returns the window ranges for a text of length characters
func (s *Splitter) Spans(length int) []Span {
	if length <= 0 {
		return nil
	}

	stride := s.size - s.overlap
	var spans []Span
	for start := 0; ; start += stride {
		end := start + s.size
		if end >= length {
			spans = append(spans, Span{Start: start, End: length})
			break
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}

// Split returns the window texts for text, in order
func (s *Splitter) Split(text string) []string {
	runes := []rune(text)
	spans := s.Spans(len(runes))

	out := make([]string, 0, len(spans))
	for _, span := range spans {
		out = append(out, string(runes[span.Start:span.End]))
	}
	return out
}

// SplitTranscript joins the transcript segments with single spaces and
// returns one chunk per window. Each chunk records the start time of the
// segment containing its first character.
func (s *Splitter) SplitTranscript(transcript *models.Transcript) []models.Chunk {
	if transcript == nil || len(transcript.Segments) == 0 {
		return nil
	}

	// Character offset where each segment begins in the joined text
	segmentStarts := make([]int, len(transcript.Segments))
	var b strings.Builder
	offset := 0
	for i, segment := range transcript.Segments {
		if i > 0 {
			b.WriteByte(' ')
			offset++
		}
		segmentStarts[i] = offset
		b.WriteString(segment.Text)
		offset += len([]rune(segment.Text))
	}

	runes := []rune(b.String())
	spans := s.Spans(len(runes))

	chunks := make([]models.Chunk, 0, len(spans))
	for i, span := range spans {
		// Last segment starting at or before the chunk start
		segment := sort.Search(len(segmentStarts), func(j int) bool {
			return segmentStarts[j] > span.Start
		}) - 1
		if segment < 0 {
			segment = 0
		}

		chunks = append(chunks, models.Chunk{
			Index:       i,
			Text:        string(runes[span.Start:span.End]),
			StartOffset: span.Start,
			EndOffset:   span.End,
			StartTime:   transcript.Segments[segment].Start,
			VideoID:     transcript.VideoID,
		})
	}
	return chunks
}
