package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/eduncan911/podcast"

	"github.com/vnkhanh/podcast-site/models"
)

// enclosureTypes ánh xạ media_type sang kiểu enclosure mà thư viện hỗ trợ
var enclosureTypes = map[string]podcast.EnclosureType{
	"audio/mpeg":      podcast.MP3,
	"audio/x-m4a":     podcast.M4A,
	"video/x-m4v":     podcast.M4V,
	"video/mp4":       podcast.MP4,
	"video/quicktime": podcast.MOV,
	"application/pdf": podcast.PDF,
	"document/x-epub": podcast.EPUB,
}

// FormatSecondsToHHMMSS chuyển số giây thành HH:MM:SS
func FormatSecondsToHHMMSS(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// firstNonEmpty: thư viện bắt buộc description, rơi về title nếu trống
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// RenderRSS dựng tài liệu RSS 2.0 (kèm thẻ iTunes) cho podcast.
func RenderRSS(p *models.Podcast, episodes []models.Media, siteURL string) ([]byte, error) {
	base := strings.TrimRight(siteURL, "/")

	var published *time.Time
	if len(episodes) > 0 && episodes[0].PublishOn != nil {
		t := episodes[0].PublishOn.UTC()
		published = &t
	}
	channel := podcast.New(
		p.Title,
		fmt.Sprintf("%s/podcasts/%s", base, p.Slug),
		firstNonEmpty(p.Description, p.Title),
		published,
		published,
	)
	channel.Generator = "podcast-site"
	channel.Copyright = p.Copyright
	channel.IExplicit = yesNo(p.Explicit)
	channel.AddAuthor(p.Author, p.Email)
	if p.Author != "" || p.Email != "" {
		channel.IOwner = &podcast.Author{Name: p.Author, Email: p.Email}
	}
	channel.AddSubTitle(p.Subtitle)
	channel.AddSummary(p.Description)
	channel.AddImage(p.CoverImage)
	if p.Category != "" {
		channel.AddCategory(p.Category, nil)
	}

	for _, m := range episodes {
		item := podcast.Item{
			Title:       m.Title,
			Link:        fmt.Sprintf("%s/media/%s", base, m.Slug),
			Description: firstNonEmpty(m.Description, m.Title),
			GUID:        m.ID.String(),
			IAuthor:     m.Author,
		}
		if m.PublishOn != nil {
			published := m.PublishOn.UTC()
			item.AddPubDate(&published)
		}
		if m.DurationSec > 0 {
			item.IDuration = FormatSecondsToHHMMSS(m.DurationSec)
		}
		if t, ok := enclosureTypes[m.MediaType]; ok && m.MediaURL != "" {
			item.AddEnclosure(m.MediaURL, t, m.SizeBytes)
		}
		if _, err := channel.AddItem(item); err != nil {
			return nil, fmt.Errorf("render rss %q, tập %q: %w", p.Slug, m.Slug, err)
		}
	}

	var buf bytes.Buffer
	if err := channel.Encode(&buf); err != nil {
		return nil, fmt.Errorf("render rss %q: %w", p.Slug, err)
	}
	return buf.Bytes(), nil
}
