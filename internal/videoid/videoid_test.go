package videoid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		url  string
		want string
		ok   bool
	}{
		{url: "https://www.youtube.com/watch?v=ABC123", want: "ABC123", ok: true},
		{url: "https://m.youtube.com/watch?v=ABC123&t=42s", want: "ABC123", ok: true},
		{url: "https://youtu.be/XYZ789", want: "XYZ789", ok: true},
		{url: "  https://youtu.be/XYZ789  ", want: "XYZ789", ok: true},
		{url: "https://www.youtube.com/watch", ok: false},
		{url: "https://www.youtube.com/watch?v=", ok: false},
		{url: "https://youtu.be/", ok: false},
		{url: "https://example.com/video", ok: false},
		{url: "https://example.com/watch?v=ABC123", ok: false},
		{url: "not a url", ok: false},
		{url: "", ok: false},
	}
	for _, tc := range cases {
		id, ok := Extract(tc.url)
		require.Equal(t, tc.ok, ok, tc.url)
		require.Equal(t, tc.want, id, tc.url)
	}
}

func TestParse_InvalidURL(t *testing.T) {
	_, err := Parse("http://[::1")
	require.Error(t, err)

	id, ok := Extract("http://[::1")
	require.False(t, ok)
	require.Empty(t, id)
}

func TestWatchURL(t *testing.T) {
	url := WatchURL("ABC123")
	require.Equal(t, "https://www.youtube.com/watch?v=ABC123", url)
	require.True(t, IsWatchURL(url))

	id, ok := Extract(url)
	require.True(t, ok)
	require.Equal(t, "ABC123", id)

	require.False(t, IsWatchURL("https://www.youtube.com/channel/UC123"))
}

func TestResolve(t *testing.T) {
	id, ok := Resolve("dQw4w9WgXcQ")
	require.True(t, ok)
	require.Equal(t, "dQw4w9WgXcQ", id)

	id, ok = Resolve("https://youtu.be/dQw4w9WgXcQ")
	require.True(t, ok)
	require.Equal(t, "dQw4w9WgXcQ", id)

	_, ok = Resolve("https://example.com/video")
	require.False(t, ok)
	_, ok = Resolve("short")
	require.False(t, ok)
}
