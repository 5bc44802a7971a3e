package transcript

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/theadtya/youtube-assistant/internal/models"
)

// timedText covers both caption XML layouts served by the timedtext endpoint:
// <transcript><text start="s" dur="s"> and format 3 <timedtext><body><p t="ms" d="ms">.
type timedText struct {
	Lines      []timedTextLine      `xml:"text"`
	Paragraphs []timedTextParagraph `xml:"body>p"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

type timedTextParagraph struct {
	T     int64  `xml:"t,attr"`
	D     int64  `xml:"d,attr"`
	Text  string `xml:",chardata"`
	Words []struct {
		Text string `xml:",chardata"`
	} `xml:"s"`
}

// parseTimedText decodes caption XML into ordered segments, dropping empty lines
func parseTimedText(data []byte) ([]models.Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]models.Segment, 0, len(tt.Lines)+len(tt.Paragraphs))
	for _, line := range tt.Lines {
		if text := cleanCaption(line.Text); text != "" {
			segments = append(segments, models.Segment{
				Text:     text,
				Start:    seconds(line.Start),
				Duration: seconds(line.Dur),
			})
		}
	}

	for _, p := range tt.Paragraphs {
		raw := p.Text
		if len(p.Words) > 0 {
			words := make([]string, 0, len(p.Words))
			for _, w := range p.Words {
				words = append(words, w.Text)
			}
			raw = strings.Join(words, "")
		}
		if text := cleanCaption(raw); text != "" {
			segments = append(segments, models.Segment{
				Text:     text,
				Start:    time.Duration(p.T) * time.Millisecond,
				Duration: time.Duration(p.D) * time.Millisecond,
			})
		}
	}

	return segments, nil
}

// cleanCaption undoes the second level of HTML escaping in caption text and collapses whitespace
func cleanCaption(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
