package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/vnkhanh/podcast-site/models"
	"github.com/vnkhanh/podcast-site/repository"
)

// ListingConfig gom các kích thước trang và cờ hiển thị
type ListingConfig struct {
	IndexPerPage          int
	IndexFirstPage        int
	ViewPerPage           int
	PreviewEpisodes       int
	FeedMaxEpisodes       int
	RedirectSinglePodcast bool
}

func DefaultListingConfig() ListingConfig {
	return ListingConfig{
		IndexPerPage:    12,
		IndexFirstPage:  7,
		ViewPerPage:     10,
		PreviewEpisodes: 4,
		FeedMaxEpisodes: MaxFeedEpisodes,
	}
}

type PodcastService struct {
	repo repository.PodcastRepository
	cfg  ListingConfig
	log  *zap.Logger
}

func NewPodcastService(repo repository.PodcastRepository, cfg ListingConfig, log *zap.Logger) *PodcastService {
	if cfg.FeedMaxEpisodes < 1 || cfg.FeedMaxEpisodes > MaxFeedEpisodes {
		cfg.FeedMaxEpisodes = MaxFeedEpisodes
	}
	return &PodcastService{repo: repo, cfg: cfg, log: log}
}

type IndexResult struct {
	Podcasts        []models.Podcast
	Episodes        Page[models.Media]
	PodcastEpisodes map[string][]models.Media
	Topics          []models.Topic
	// RedirectSlug khác rỗng khi chỉ có một podcast và bật INDEX_REDIRECT_SINGLE_PODCAST
	RedirectSlug string
}

type ViewResult struct {
	Podcast     *models.Podcast
	Episodes    Page[models.Media]
	Podcasts    []models.Podcast
	Topics      []models.Topic
	ResultCount int
}

// Index liệt kê mọi podcast cùng các tập đã xuất bản, trang đầu ít tập hơn.
func (s *PodcastService) Index(ctx context.Context, page int) (*IndexResult, error) {
	podcasts, err := s.repo.ListPodcasts(ctx)
	if err != nil {
		return nil, err
	}
	if s.cfg.RedirectSinglePodcast && len(podcasts) == 1 {
		listingRequests.WithLabelValues("index").Inc()
		return &IndexResult{Podcasts: podcasts, RedirectSlug: podcasts[0].Slug}, nil
	}

	candidates, err := s.repo.ListPodcastEpisodes(ctx)
	if err != nil {
		return nil, err
	}
	episodes := publishedNewestFirst(lo.Filter(candidates, func(m models.Media, _ int) bool {
		return m.PodcastID != nil
	}))

	topics, err := s.repo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	listingRequests.WithLabelValues("index").Inc()
	return &IndexResult{
		Podcasts:        podcasts,
		Episodes:        Paginate(episodes, page, s.cfg.IndexPerPage, s.cfg.IndexFirstPage),
		PodcastEpisodes: previewEpisodes(podcasts, episodes, s.cfg.PreviewEpisodes),
		Topics:          topics,
	}, nil
}

// View trả về một podcast và các tập của nó.
func (s *PodcastService) View(ctx context.Context, podcastSlug string, page int) (*ViewResult, error) {
	podcast, err := s.findPodcast(ctx, podcastSlug)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repo.ListEpisodesForPodcast(ctx, podcast.ID)
	if err != nil {
		return nil, err
	}
	episodes := publishedNewestFirst(belongingTo(candidates, podcast.ID))

	podcasts, err := s.repo.ListPodcasts(ctx)
	if err != nil {
		return nil, err
	}
	topics, err := s.repo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	listingRequests.WithLabelValues("view").Inc()
	return &ViewResult{
		Podcast:     podcast,
		Episodes:    Paginate(episodes, page, s.cfg.ViewPerPage, 0),
		Podcasts:    podcasts,
		Topics:      topics,
		ResultCount: len(episodes),
	}, nil
}

// Topics dùng cho menu điều hướng
func (s *PodcastService) Topics(ctx context.Context) ([]models.Topic, error) {
	return s.repo.ListTopics(ctx)
}

// findPodcast tìm theo slug đúng như lưu trong DB; nếu không thấy thì thử
// dạng chuẩn hóa (vd. "Tech Talk" -> "tech-talk").
func (s *PodcastService) findPodcast(ctx context.Context, podcastSlug string) (*models.Podcast, error) {
	if podcastSlug == "" {
		return nil, fmt.Errorf("slug rỗng: %w", repository.ErrNotFound)
	}

	podcast, err := s.repo.FindPodcastBySlug(ctx, podcastSlug)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return podcast, err
	}

	canonical := slug.Make(podcastSlug)
	if canonical == "" || canonical == podcastSlug {
		return nil, err
	}
	return s.repo.FindPodcastBySlug(ctx, canonical)
}

func belongingTo(media []models.Media, podcastID uuid.UUID) []models.Media {
	return lo.Filter(media, func(m models.Media, _ int) bool {
		return m.PodcastID != nil && *m.PodcastID == podcastID
	})
}

func previewEpisodes(podcasts []models.Podcast, episodes []models.Media, n int) map[string][]models.Media {
	byPodcast := lo.GroupBy(episodes, func(m models.Media) uuid.UUID {
		return *m.PodcastID
	})
	out := make(map[string][]models.Media, len(podcasts))
	for _, p := range podcasts {
		eps := byPodcast[p.ID]
		if len(eps) > n {
			eps = eps[:n]
		}
		out[p.Slug] = eps
	}
	return out
}
