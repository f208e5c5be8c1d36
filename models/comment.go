package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MediaID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"media_id"`
	Author    string      `gorm:"size:255" json:"author"`
	Body      string      `gorm:"type:text;not null" json:"body"`
	Status    MediaStatus `gorm:"type:VARCHAR(20);default:'unreviewed'" json:"status"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
}
