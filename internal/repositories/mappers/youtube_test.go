package mappers

import (
	"testing"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/stretchr/testify/require"
	ytapi "google.golang.org/api/youtube/v3"
)

func TestVideoItemFromAPI(t *testing.T) {
	video := &ytapi.Video{
		Id: "vid-1",
		Snippet: &ytapi.VideoSnippet{
			Title:        "Title",
			Description:  "Description",
			Tags:         []string{"go", "backend"},
			ChannelId:    "chan-1",
			ChannelTitle: "Channel",
			PublishedAt:  "2024-05-01T00:00:00Z",
			Thumbnails: &ytapi.ThumbnailDetails{
				Default: &ytapi.Thumbnail{Url: "https://i.ytimg.com/default.jpg"},
				High:    &ytapi.Thumbnail{Url: "https://i.ytimg.com/high.jpg"},
			},
		},
		ContentDetails: &ytapi.VideoContentDetails{Duration: "PT12M"},
		Statistics:     &ytapi.VideoStatistics{ViewCount: 1500, LikeCount: 30},
		Player:         &ytapi.VideoPlayer{EmbedWidth: 640, EmbedHeight: 360},
	}

	item := VideoItemFromAPI(video)

	require.Equal(t, "vid-1", item.ID)
	require.Equal(t, "chan-1", item.ChannelID())
	require.Equal(t, []string{"go", "backend"}, item.Snippet.Tags)
	require.Equal(t, map[string]string{
		"default": "https://i.ytimg.com/default.jpg",
		"high":    "https://i.ytimg.com/high.jpg",
	}, item.Snippet.Thumbnails)
	require.Equal(t, "PT12M", item.ContentDetails.Duration)
	require.Equal(t, &po.Dimension{Width: 640, Height: 360}, item.ContentDetails.Dimension)
	require.Equal(t, &po.Statistics{ViewCount: 1500, LikeCount: 30}, item.Statistics)
}

func TestVideoItemFromAPI_PartialRecord(t *testing.T) {
	item := VideoItemFromAPI(&ytapi.Video{
		Id:             "vid-2",
		ContentDetails: &ytapi.VideoContentDetails{Duration: "PT1M"},
		Player:         &ytapi.VideoPlayer{EmbedHtml: "<iframe>"},
	})

	require.Equal(t, "vid-2", item.ID)
	require.Nil(t, item.Snippet)
	require.Nil(t, item.Statistics)
	require.NotNil(t, item.ContentDetails)
	require.Nil(t, item.ContentDetails.Dimension)

	require.Equal(t, po.VideoItem{}, VideoItemFromAPI(nil))
}

func TestSearchResultVideoIDs(t *testing.T) {
	ids := SearchResultVideoIDs([]*ytapi.SearchResult{
		{Id: &ytapi.ResourceId{Kind: "youtube#video", VideoId: "a"}},
		{Id: &ytapi.ResourceId{Kind: "youtube#channel", ChannelId: "c"}},
		nil,
		{Id: &ytapi.ResourceId{Kind: "youtube#video", VideoId: "b"}},
	})
	require.Equal(t, []string{"a", "b"}, ids)
}
