package services

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/vnkhanh/podcast-site/models"
)

// MaxFeedEpisodes là số tập tối đa trong một feed RSS
const MaxFeedEpisodes = 25

const (
	ContentTypeRSS  = "application/rss+xml"
	ContentTypeXML  = "application/xml"
	ContentTypeHTML = "text/html"
)

// FeedOptions thay cho các tham số tùy chọn của endpoint feed
type FeedOptions struct {
	FeedburnerBypass bool
	// Limit trong khoảng 1..MaxFeedEpisodes, giá trị khác dùng mặc định
	Limit int
}

type FeedRequest struct {
	UserAgent string
	Accept    string
	Options   FeedOptions
}

// FeedResult: RedirectURL khác rỗng thì chuyển hướng, ngược lại render RSS.
type FeedResult struct {
	RedirectURL string
	ContentType string
	Podcast     *models.Podcast
	Episodes    []models.Media
}

// ShouldRedirect: chuyển sang FeedBurner khi podcast có feedburner_url,
// user-agent không phải FeedBurner và không có cờ bypass.
func ShouldRedirect(p *models.Podcast, userAgent string, bypass bool) bool {
	return strings.TrimSpace(p.FeedburnerURL) != "" &&
		!strings.Contains(strings.ToLower(userAgent), "feedburner") &&
		!bypass
}

// NegotiateContentType chọn content-type theo thứ tự ưu tiên rss+xml, xml, text/html.
func NegotiateContentType(accept string) string {
	for _, ct := range []string{ContentTypeRSS, ContentTypeXML} {
		if strings.Contains(accept, ct) {
			return ct
		}
	}
	return ContentTypeHTML
}

// redirectTarget percent-encode URL nếu parse được, ngược lại giữ nguyên chuỗi
func redirectTarget(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw, err
	}
	return u.String(), nil
}

func (s *PodcastService) feedLimit(requested int) int {
	if requested >= 1 && requested <= s.cfg.FeedMaxEpisodes {
		return requested
	}
	return s.cfg.FeedMaxEpisodes
}

// Feed quyết định chuyển hướng hoặc trả về dữ liệu để render RSS.
func (s *PodcastService) Feed(ctx context.Context, podcastSlug string, req FeedRequest) (*FeedResult, error) {
	podcast, err := s.findPodcast(ctx, podcastSlug)
	if err != nil {
		return nil, err
	}

	if ShouldRedirect(podcast, req.UserAgent, req.Options.FeedburnerBypass) {
		target, err := redirectTarget(podcast.FeedburnerURL)
		if err != nil {
			s.log.Warn("feedburner_url không parse được, chuyển hướng nguyên văn",
				zap.String("slug", podcast.Slug),
				zap.String("feedburner_url", podcast.FeedburnerURL),
				zap.Error(err))
		}
		feedResponses.WithLabelValues("redirect").Inc()
		return &FeedResult{RedirectURL: target, Podcast: podcast}, nil
	}

	candidates, err := s.repo.ListEpisodesForPodcast(ctx, podcast.ID)
	if err != nil {
		return nil, err
	}
	episodes := publishedNewestFirst(belongingTo(candidates, podcast.ID))
	if limit := s.feedLimit(req.Options.Limit); len(episodes) > limit {
		episodes = episodes[:limit]
	}

	feedResponses.WithLabelValues("rss").Inc()
	return &FeedResult{
		ContentType: NegotiateContentType(req.Accept),
		Podcast:     podcast,
		Episodes:    episodes,
	}, nil
}
