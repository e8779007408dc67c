package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/instagrowth/internal/types"
)

func withImage(id string) types.MediaItem {
	return types.MediaItem{
		ID: id,
		ImageVersions: &types.ImageVersions2{
			Candidates: []types.ImageVersion{{URL: "https://cdn.example.com/" + id + ".jpg"}},
		},
	}
}

func TestRenderable_DropsItemsWithoutRenditions(t *testing.T) {
	media := []types.MediaItem{
		withImage("a"),
		{ID: "no-image"},
		{ID: "empty-candidates", ImageVersions: &types.ImageVersions2{}},
		withImage("b"),
	}

	out := Renderable(media)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
}

func TestRenderable_EmptyInputDoesNotPanic(t *testing.T) {
	assert.Empty(t, Renderable(nil))
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	media := []types.MediaItem{
		{ID: "old", TakenAt: 100},
		{ID: "new", TakenAt: 200},
	}

	out := Sorted(media, SortLatest, 0)
	assert.Equal(t, "new", out[0].ID)
	assert.Equal(t, "old", media[0].ID)
}

func TestSorted_Orders(t *testing.T) {
	media := []types.MediaItem{
		{ID: "a", TakenAt: 1, LikeCount: 10, CommentCount: 90},
		{ID: "b", TakenAt: 3, LikeCount: 50, CommentCount: 5},
		{ID: "c", TakenAt: 2, LikeCount: 30, CommentCount: 30},
	}

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortLatest, []string{"b", "c", "a"}},
		{SortLikes, []string{"b", "c", "a"}},
		{SortComments, []string{"a", "c", "b"}},
		{SortEngagement, []string{"a", "c", "b"}},
	}

	for _, tt := range tests {
		out := Sorted(media, tt.key, 1000)
		got := make([]string, len(out))
		for i := range out {
			got[i] = out[i].ID
		}
		assert.Equal(t, tt.want, got, "key %s", tt.key)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"latest", "Likes", " comments ", "ENGAGEMENT"} {
		key, err := ParseSortKey(valid)
		require.NoError(t, err, valid)
		assert.NotEmpty(t, key)
	}

	_, err := ParseSortKey("random")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort order")
}

func TestTopByInteractions_CapsAndOrders(t *testing.T) {
	media := []types.MediaItem{
		{ID: "low", LikeCount: 1},
		{ID: "high", LikeCount: 90, CommentCount: 10},
		{ID: "mid", LikeCount: 40},
	}

	top := TopByInteractions(media, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].ID)
	assert.Equal(t, "mid", top[1].ID)
}
