package ranking

import (
	"testing"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/stretchr/testify/require"
)

func longVideo(id string) po.VideoItem {
	return po.VideoItem{
		ID: id,
		Snippet: &po.Snippet{
			Title:       "Building a compiler from scratch",
			Description: "Part one of the series",
			ChannelID:   "chan-1",
		},
		ContentDetails: &po.ContentDetails{
			Duration:  "PT6M40S",
			Dimension: &po.Dimension{Width: 1280, Height: 720},
		},
	}
}

func TestIsShortForm(t *testing.T) {
	t.Run("short duration", func(t *testing.T) {
		item := longVideo("v1")
		item.ContentDetails.Duration = "PT2M"
		require.True(t, IsShortForm(&item))
	})

	t.Run("boundary duration is kept", func(t *testing.T) {
		item := longVideo("v1")
		item.ContentDetails.Duration = "PT3M"
		require.False(t, IsShortForm(&item))
	})

	t.Run("shorts hashtag in title", func(t *testing.T) {
		item := longVideo("v1")
		item.Snippet.Title = "Crazy trick #Shorts"
		require.True(t, IsShortForm(&item))
	})

	t.Run("shorts link in description", func(t *testing.T) {
		item := longVideo("v1")
		item.Snippet.Description = "see https://youtube.com/shorts/abc"
		require.True(t, IsShortForm(&item))
	})

	t.Run("shorts tag", func(t *testing.T) {
		item := longVideo("v1")
		item.Snippet.Tags = []string{"coding", "#ytshorts"}
		require.True(t, IsShortForm(&item))
	})

	t.Run("shorts path in id", func(t *testing.T) {
		item := longVideo("watch/shorts/abc")
		require.True(t, IsShortForm(&item))
	})

	t.Run("portrait dimension", func(t *testing.T) {
		item := longVideo("v1")
		item.ContentDetails.Dimension = &po.Dimension{Width: 360, Height: 640}
		require.True(t, IsShortForm(&item))
	})

	t.Run("landscape long video", func(t *testing.T) {
		item := longVideo("v1")
		require.False(t, IsShortForm(&item))
	})

	t.Run("missing dimension", func(t *testing.T) {
		item := longVideo("v1")
		item.ContentDetails.Dimension = nil
		require.False(t, IsShortForm(&item))
	})

	t.Run("missing content details", func(t *testing.T) {
		item := longVideo("v1")
		item.ContentDetails = nil
		require.True(t, IsShortForm(&item))
	})

	t.Run("missing snippet", func(t *testing.T) {
		item := longVideo("v1")
		item.Snippet = nil
		require.True(t, IsShortForm(&item))
	})

	t.Run("malformed duration", func(t *testing.T) {
		item := longVideo("v1")
		item.ContentDetails.Duration = "ten minutes"
		require.True(t, IsShortForm(&item))
	})

	require.True(t, IsShortForm(nil))
}

func TestFilterShortForm(t *testing.T) {
	short := longVideo("short")
	short.ContentDetails.Duration = "PT30S"
	items := []po.VideoItem{longVideo("a"), short, longVideo("b")}

	kept := FilterShortForm(items, func(v *po.VideoItem) *po.VideoItem { return v })

	require.Len(t, kept, 2)
	require.Equal(t, "a", kept[0].ID)
	require.Equal(t, "b", kept[1].ID)
}
