package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-site/models"
)

// ErrNotFound được trả về khi không tìm thấy bản ghi theo slug/id
var ErrNotFound = errors.New("không tìm thấy bản ghi")

// PodcastRepository chỉ đọc. Việc lọc media đã xuất bản do services đảm nhận.
type PodcastRepository interface {
	ListPodcasts(ctx context.Context) ([]models.Podcast, error)
	FindPodcastBySlug(ctx context.Context, slug string) (*models.Podcast, error)
	// ListPodcastEpisodes trả về mọi media có podcast, mới nhất trước
	ListPodcastEpisodes(ctx context.Context) ([]models.Media, error)
	ListEpisodesForPodcast(ctx context.Context, podcastID uuid.UUID) ([]models.Media, error)
	// ListTopics chỉ gồm topic có ít nhất 1 media đã xuất bản, sắp theo tên
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

type GormPodcastRepository struct {
	db *gorm.DB
}

func NewGormPodcastRepository(db *gorm.DB) *GormPodcastRepository {
	return &GormPodcastRepository{db: db}
}

const (
	podcastMediaCountSQL = `(SELECT COUNT(*) FROM media
		WHERE media.podcast_id = podcasts.id AND media.status IN ? AND media.trash = false) AS published_media_count`
	topicMediaCountSQL = `(SELECT COUNT(*) FROM media
		JOIN media_topics ON media_topics.media_id = media.id
		WHERE media_topics.topic_id = topics.id AND media.status IN ? AND media.trash = false)`
	mediaCommentCountSQL = `(SELECT COUNT(*) FROM comments
		WHERE comments.media_id = media.id AND comments.status IN ?) AS comment_count`
)

func (r *GormPodcastRepository) podcasts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Select("podcasts.*, "+podcastMediaCountSQL, models.PublishedStatuses())
}

func (r *GormPodcastRepository) episodes(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Media{}).
		Select("media.*, "+mediaCommentCountSQL, models.PublishedStatuses()).
		Order("media.publish_on DESC NULLS LAST")
}

func (r *GormPodcastRepository) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	if err := r.podcasts(ctx).Order("podcasts.title").Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("lấy danh sách podcast: %w", err)
	}
	return podcasts, nil
}

func (r *GormPodcastRepository) FindPodcastBySlug(ctx context.Context, slug string) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.podcasts(ctx).Where("podcasts.slug = ?", slug).First(&podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("podcast %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("lấy podcast %q: %w", slug, err)
	}
	return &podcast, nil
}

func (r *GormPodcastRepository) ListPodcastEpisodes(ctx context.Context) ([]models.Media, error) {
	var media []models.Media
	if err := r.episodes(ctx).Where("media.podcast_id IS NOT NULL").Find(&media).Error; err != nil {
		return nil, fmt.Errorf("lấy danh sách tập: %w", err)
	}
	return media, nil
}

func (r *GormPodcastRepository) ListEpisodesForPodcast(ctx context.Context, podcastID uuid.UUID) ([]models.Media, error) {
	var media []models.Media
	if err := r.episodes(ctx).Where("media.podcast_id = ?", podcastID).Find(&media).Error; err != nil {
		return nil, fmt.Errorf("lấy tập của podcast %s: %w", podcastID, err)
	}
	return media, nil
}

func (r *GormPodcastRepository) ListTopics(ctx context.Context) ([]models.Topic, error) {
	statuses := models.PublishedStatuses()
	var topics []models.Topic
	err := r.db.WithContext(ctx).
		Model(&models.Topic{}).
		Select("topics.*, "+topicMediaCountSQL+" AS published_media_count", statuses).
		Where(topicMediaCountSQL+" >= 1", statuses).
		Order("topics.name").
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("lấy danh sách chủ đề: %w", err)
	}
	return topics, nil
}
