package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vnkhanh/podcast-site/models"
)

func TestFilterPublished(t *testing.T) {
	p := newPodcast("techtalk", "")

	tests := []struct {
		name   string
		status models.MediaStatus
		trash  bool
		keep   bool
	}{
		{name: "published", status: models.StatusPublish, keep: true},
		{name: "published but trashed", status: models.StatusPublish, trash: true, keep: false},
		{name: "draft", status: models.StatusDraft, keep: false},
		{name: "unreviewed", status: models.StatusUnreviewed, keep: false},
		{name: "unencoded", status: models.StatusUnencoded, keep: false},
		{name: "unknown status", status: models.MediaStatus("bogus"), keep: false},
		{name: "empty status", status: "", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newEpisode(&p, tt.name, tt.status, tt.trash, day(1))
			got := FilterPublished([]models.Media{m})
			if tt.keep {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFilterPublishedKeepsOrder(t *testing.T) {
	p := newPodcast("techtalk", "")
	in := []models.Media{
		newEpisode(&p, "a", models.StatusPublish, false, day(1)),
		newEpisode(&p, "b", models.StatusDraft, false, day(2)),
		newEpisode(&p, "c", models.StatusPublish, false, day(3)),
		newEpisode(&p, "d", models.StatusPublish, true, day(4)),
		newEpisode(&p, "e", models.StatusPublish, false, day(5)),
	}

	got := FilterPublished(in)

	titles := make([]string, 0, len(got))
	for _, m := range got {
		titles = append(titles, m.Title)
	}
	assert.Equal(t, []string{"a", "c", "e"}, titles)
}

func TestFilterPublishedEmpty(t *testing.T) {
	assert.Empty(t, FilterPublished(nil))
	assert.Empty(t, FilterPublished([]models.Media{}))
}

func TestSortNewestFirst(t *testing.T) {
	p := newPodcast("techtalk", "")
	media := []models.Media{
		newEpisode(&p, "old", models.StatusPublish, false, day(1)),
		newEpisode(&p, "undated", models.StatusPublish, false, nil),
		newEpisode(&p, "newest", models.StatusPublish, false, day(20)),
		newEpisode(&p, "middle", models.StatusPublish, false, day(10)),
	}

	SortNewestFirst(media)

	var titles []string
	for _, m := range media {
		titles = append(titles, m.Title)
	}
	assert.Equal(t, []string{"newest", "middle", "old", "undated"}, titles)
}
