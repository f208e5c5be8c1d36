package services

// Page là một trang kết quả. FirstPage = 0 nghĩa là các trang cùng kích thước.
type Page[T any] struct {
	Items      []T  `json:"-"`
	Number     int  `json:"page"`
	PerPage    int  `json:"per_page"`
	FirstPage  int  `json:"first_page,omitempty"`
	TotalItems int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Paginate cắt items theo trang. Trang đầu có firstPage phần tử (nếu > 0),
// các trang sau có perPage phần tử. Số trang ngoài khoảng bị kẹp về [1, last].
func Paginate[T any](items []T, page, perPage, firstPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}
	first := firstPage
	if first < 1 {
		first = perPage
	}

	total := len(items)
	totalPages := 1
	if total > first {
		totalPages += (total - first + perPage - 1) / perPage
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start, size := 0, first
	if page > 1 {
		start = first + (page-2)*perPage
		size = perPage
	}
	end := min(start+size, total)
	start = min(start, total)

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		PerPage:    perPage,
		FirstPage:  firstPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
