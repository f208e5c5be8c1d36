package models

import (
	"time"

	"github.com/google/uuid"
)

type Podcast struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug          string    `gorm:"size:150;not null;uniqueIndex" json:"slug"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Subtitle      string    `gorm:"size:255" json:"subtitle"`
	Description   string    `gorm:"type:text" json:"description"`
	Author        string    `gorm:"size:255" json:"author"`
	Email         string    `gorm:"size:255" json:"email"`
	Category      string    `gorm:"size:100" json:"category"`
	Copyright     string    `gorm:"size:255" json:"copyright"`
	Explicit      bool      `gorm:"default:false" json:"explicit"`
	FeedburnerURL string    `gorm:"type:text" json:"feedburner_url"`
	ITunesURL     string    `gorm:"type:text" json:"itunes_url"`
	CoverImage    string    `gorm:"type:text" json:"cover_image"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Đếm từ subquery, không lưu vào bảng
	PublishedMediaCount int64 `gorm:"->;-:migration" json:"published_media_count"`

	Media []Media `gorm:"foreignKey:PodcastID" json:"-"`
}
