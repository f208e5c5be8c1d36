package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vnkhanh/podcast-site/models"
	"github.com/vnkhanh/podcast-site/repository"
)

type fakeRepo struct {
	podcasts []models.Podcast
	media    []models.Media
	topics   []models.Topic
	err      error

	episodeCalls int
}

func (f *fakeRepo) ListPodcasts(context.Context) ([]models.Podcast, error) {
	return f.podcasts, f.err
}

func (f *fakeRepo) FindPodcastBySlug(_ context.Context, slug string) (*models.Podcast, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.podcasts {
		if f.podcasts[i].Slug == slug {
			p := f.podcasts[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("podcast %q: %w", slug, repository.ErrNotFound)
}

func (f *fakeRepo) ListPodcastEpisodes(context.Context) ([]models.Media, error) {
	f.episodeCalls++
	var out []models.Media
	for _, m := range f.media {
		if m.PodcastID != nil {
			out = append(out, m)
		}
	}
	return out, f.err
}

func (f *fakeRepo) ListEpisodesForPodcast(_ context.Context, id uuid.UUID) ([]models.Media, error) {
	f.episodeCalls++
	var out []models.Media
	for _, m := range f.media {
		if m.PodcastID != nil && *m.PodcastID == id {
			out = append(out, m)
		}
	}
	return out, f.err
}

func (f *fakeRepo) ListTopics(context.Context) ([]models.Topic, error) {
	return f.topics, f.err
}

func day(d int) *time.Time {
	t := time.Date(2024, time.March, d, 9, 0, 0, 0, time.UTC)
	return &t
}

func newPodcast(slug, feedburner string) models.Podcast {
	return models.Podcast{ID: uuid.New(), Slug: slug, Title: slug, FeedburnerURL: feedburner}
}

func newEpisode(p *models.Podcast, title string, status models.MediaStatus, trash bool, publishOn *time.Time) models.Media {
	m := models.Media{
		ID:        uuid.New(),
		Slug:      title,
		Title:     title,
		Status:    status,
		Trash:     trash,
		PublishOn: publishOn,
	}
	if p != nil {
		id := p.ID
		m.PodcastID = &id
	}
	return m
}

// publishedEpisodes tạo n tập đã xuất bản, ngày tăng dần theo thứ tự tạo
func publishedEpisodes(p *models.Podcast, n int) []models.Media {
	out := make([]models.Media, 0, n)
	base := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		t := base.Add(time.Duration(i) * time.Hour)
		out = append(out, newEpisode(p, fmt.Sprintf("%s-ep-%d", p.Slug, i), models.StatusPublish, false, &t))
	}
	return out
}
