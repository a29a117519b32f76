package repositories_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/bionicotaku/lingo-services-discover/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/bionicotaku/lingo-services-discover/internal/repositories"
	"github.com/stretchr/testify/require"
)

func fixtureVideo(id string) po.VideoItem {
	return po.VideoItem{
		ID:             id,
		Snippet:        &po.Snippet{Title: "Video " + id, ChannelID: "chan-" + id},
		ContentDetails: &po.ContentDetails{Duration: "PT10M"},
	}
}

func TestFixtureVideoSource_ExplicitRelated(t *testing.T) {
	src := repositories.NewFixtureVideoSourceFromData(repositories.FixtureFile{
		Videos:  []po.VideoItem{fixtureVideo("a"), fixtureVideo("b"), fixtureVideo("c")},
		Related: map[string][]string{"a": {"c", "missing", "b"}},
	}, rand.New(rand.NewSource(1)), stdLogger)

	video, err := src.GetVideo(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, "a", video.ID)

	page, err := src.SearchRelated(context.Background(), "a", "ignored")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, "c", page.Items[0].ID)
	require.Equal(t, "b", page.Items[1].ID)
	require.Empty(t, page.NextPageToken)
}

func TestFixtureVideoSource_RandomRelated(t *testing.T) {
	src := repositories.NewFixtureVideoSourceFromData(repositories.FixtureFile{
		Videos: []po.VideoItem{fixtureVideo("a"), fixtureVideo("b"), fixtureVideo("c"), fixtureVideo("d")},
	}, rand.New(rand.NewSource(2)), stdLogger)

	page, err := src.SearchRelated(context.Background(), "b", "")
	require.NoError(t, err)

	ids := make([]string, len(page.Items))
	for i, item := range page.Items {
		ids[i] = item.ID
	}
	require.ElementsMatch(t, []string{"a", "c", "d"}, ids)
}

func TestFixtureVideoSource_NotFound(t *testing.T) {
	src := repositories.NewFixtureVideoSourceFromData(repositories.FixtureFile{}, rand.New(rand.NewSource(3)), stdLogger)

	_, err := src.GetVideo(context.Background(), "x")
	require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	_, err = src.SearchRelated(context.Background(), "x", "")
	require.ErrorIs(t, err, repositories.ErrVideoNotFound)
}

func TestProvideVideoStore_Fixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.json")
	raw, err := json.Marshal(repositories.FixtureFile{Videos: []po.VideoItem{fixtureVideo("a")}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	store, err := repositories.ProvideVideoStore(&configloader.Config{
		YouTube: configloader.YouTubeConfig{FixturePath: path},
	}, stdLogger)
	require.NoError(t, err)
	require.IsType(t, &repositories.FixtureVideoSource{}, store)

	video, err := store.GetVideo(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, "chan-a", video.ChannelID())
}

func TestNewFixtureVideoSource_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := repositories.NewFixtureVideoSource(path, stdLogger)
	require.Error(t, err)

	_, err = repositories.NewFixtureVideoSource(filepath.Join(t.TempDir(), "absent.json"), stdLogger)
	require.Error(t, err)
}

func TestFixtureVideoSource_ShippedFixture(t *testing.T) {
	src, err := repositories.NewFixtureVideoSource(filepath.Join("..", "..", "..", "configs", "fixtures", "videos.json"), stdLogger)
	require.NoError(t, err)

	video, err := src.GetVideo(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Equal(t, int64(1500000000), video.Statistics.ViewCount)
	require.Equal(t, int64(640), video.ContentDetails.Dimension.Width)

	page, err := src.SearchRelated(context.Background(), "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.Len(t, page.Items, 4)
	require.Equal(t, "9bZkp7q19f0", page.Items[0].ID)
}
