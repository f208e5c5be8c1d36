package services

import (
	"sort"

	"github.com/samber/lo"

	"github.com/vnkhanh/podcast-site/models"
)

// FilterPublished chỉ giữ media có status >= publish và không bị trash.
// Thứ tự đầu vào được giữ nguyên.
func FilterPublished(media []models.Media) []models.Media {
	return lo.Filter(media, func(m models.Media, _ int) bool {
		return m.IsPublished()
	})
}

// SortNewestFirst sắp xếp theo PublishOn giảm dần, media chưa có ngày nằm cuối.
func SortNewestFirst(media []models.Media) {
	sort.SliceStable(media, func(i, j int) bool {
		a, b := media[i].PublishOn, media[j].PublishOn
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}

func publishedNewestFirst(media []models.Media) []models.Media {
	out := FilterPublished(media)
	SortNewestFirst(out)
	return out
}
