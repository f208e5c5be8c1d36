package models

// MediaStatus là trạng thái trong quy trình biên tập của media.
// Thứ tự: draft < unreviewed < unencoded < publish
type MediaStatus string

const (
	StatusDraft      MediaStatus = "draft"
	StatusUnreviewed MediaStatus = "unreviewed"
	StatusUnencoded  MediaStatus = "unencoded"
	StatusPublish    MediaStatus = "publish"
)

var statusOrder = []MediaStatus{
	StatusDraft,
	StatusUnreviewed,
	StatusUnencoded,
	StatusPublish,
}

// Rank trả về vị trí của trạng thái, -1 nếu không hợp lệ
func (s MediaStatus) Rank() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// AtLeast reports whether s is a known state ordered at or after other.
func (s MediaStatus) AtLeast(other MediaStatus) bool {
	r := s.Rank()
	return r >= 0 && r >= other.Rank()
}

// PublishedStatuses liệt kê các trạng thái >= publish (dùng cho truy vấn SQL)
func PublishedStatuses() []MediaStatus {
	var out []MediaStatus
	for _, st := range statusOrder {
		if st.AtLeast(StatusPublish) {
			out = append(out, st)
		}
	}
	return out
}
