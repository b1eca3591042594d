package services

import "strconv"

// Pagination describes one page of a fixed-size listing. Page numbers are
// 1-based; requests beyond the last page clamp to it, and tokens that do not
// parse as integers fall back to the first page.
type Pagination struct {
	Page     int
	PageSize int
	NumPages int
	Total    int64
}

func Paginate(pageToken string, pageSize int, total int64) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}

	numPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if numPages < 1 {
		numPages = 1
	}

	page, err := strconv.Atoi(pageToken)
	if err != nil || page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
		NumPages: numPages,
		Total:    total,
	}
}

func (pagination Pagination) Offset() int {
	return (pagination.Page - 1) * pagination.PageSize
}

func (pagination Pagination) HasPrevious() bool {
	return pagination.Page > 1
}

func (pagination Pagination) HasNext() bool {
	return pagination.Page < pagination.NumPages
}

func (pagination Pagination) PreviousPage() int {
	if pagination.Page <= 1 {
		return 1
	}
	return pagination.Page - 1
}

func (pagination Pagination) NextPage() int {
	if pagination.Page >= pagination.NumPages {
		return pagination.NumPages
	}
	return pagination.Page + 1
}

// PageNumbers lists every page number for template pagination controls.
func (pagination Pagination) PageNumbers() []int {
	numbers := make([]int, 0, pagination.NumPages)
	for number := 1; number <= pagination.NumPages; number++ {
		numbers = append(numbers, number)
	}
	return numbers
}
