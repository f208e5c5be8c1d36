package models

import (
	"time"

	"github.com/google/uuid"
)

// Media là một tập (episode); có thể không thuộc podcast nào
type Media struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PodcastID   *uuid.UUID  `gorm:"type:uuid;index" json:"podcast_id"`
	Podcast     *Podcast    `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	Slug        string      `gorm:"size:150;not null;uniqueIndex" json:"slug"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Author      string      `gorm:"size:255" json:"author"`
	MediaURL    string      `gorm:"type:text" json:"media_url"`
	MediaType   string      `gorm:"size:100;default:'audio/mpeg'" json:"media_type"`
	SizeBytes   int64       `gorm:"default:0" json:"size_bytes"`
	DurationSec int         `gorm:"default:0" json:"duration_sec"`
	Status      MediaStatus `gorm:"type:VARCHAR(20);default:'draft';index" json:"status"`
	Trash       bool        `gorm:"default:false;index" json:"-"`
	PublishOn   *time.Time  `gorm:"index" json:"publish_on"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`

	Topics []Topic `gorm:"many2many:media_topics" json:"topics,omitempty"`
}

func (Media) TableName() string {
	return "media"
}

// IsPublished: status >= publish và không nằm trong thùng rác
func (m Media) IsPublished() bool {
	return m.Status.AtLeast(StatusPublish) && !m.Trash
}
