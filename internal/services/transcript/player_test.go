package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "de"},
		{BaseURL: "u2", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "u3", LanguageCode: "en"},
		{BaseURL: "u4&exp=xpe", LanguageCode: "fr"},
	}

	track, ok := pickTrack(tracks, []string{"en"})
	assert.True(t, ok)
	assert.Equal(t, "u3", track.BaseURL, "manual track wins over auto-generated")

	track, ok = pickTrack(tracks, []string{"de", "en"})
	assert.True(t, ok)
	assert.Equal(t, "u1", track.BaseURL)

	track, ok = pickTrack(tracks, []string{"fr"})
	assert.True(t, ok)
	assert.Equal(t, "u2", track.BaseURL, "browser-only track skipped, English fallback used")

	_, ok = pickTrack([]captionTrack{{BaseURL: "x&exp=xpe"}}, []string{"en"})
	assert.False(t, ok)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `{"a":1};var x`, `{"a":1}`},
		{"nested", `{"a":{"b":{}}} trailing`, `{"a":{"b":{}}}`},
		{"brace in string", `{"a":"}{"};`, `{"a":"}{"}`},
		{"escaped quote", `{"a":"x\"}"} rest`, `{"a":"x\"}"}`},
		{"escaped backslash", `{"a":"x\\"} rest`, `{"a":"x\\"}`},
		{"not an object", `[1,2]`, ``},
		{"unterminated", `{"a":1`, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(extractJSON([]byte(tt.input))))
		})
	}
}
