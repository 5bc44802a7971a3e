package httpclient

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewYouTubeClient(t *testing.T) {
	client, err := NewYouTubeClient(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.Timeout)
	require.NotNil(t, client.Jar)

	watch, _ := url.Parse("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	cookies := client.Jar.Cookies(watch)
	require.Len(t, cookies, 1)
	assert.Equal(t, "CONSENT", cookies[0].Name)

	other, _ := url.Parse("https://example.com/")
	assert.Empty(t, client.Jar.Cookies(other))
}

func TestNewDefaultHTTPClient(t *testing.T) {
	client := NewDefaultHTTPClient(time.Minute)
	assert.Equal(t, time.Minute, client.Timeout)
	assert.Nil(t, client.Jar)
}
