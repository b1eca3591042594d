package services

import "testing"

func TestPaginateComputesPageCount(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{total: 0, pageSize: 2, want: 1},
		{total: 1, pageSize: 2, want: 1},
		{total: 2, pageSize: 2, want: 1},
		{total: 3, pageSize: 2, want: 2},
		{total: 5, pageSize: 2, want: 3},
		{total: 9, pageSize: 3, want: 3},
		{total: 10, pageSize: 3, want: 4},
	}
	for _, testCase := range cases {
		pagination := Paginate("1", testCase.pageSize, testCase.total)
		if pagination.NumPages != testCase.want {
			t.Errorf("Paginate(total=%d, size=%d).NumPages = %d, want %d",
				testCase.total, testCase.pageSize, pagination.NumPages, testCase.want)
		}
	}
}

func TestPaginateTokenFallsBackToFirstPage(t *testing.T) {
	for _, token := range []string{"", "abc", "-1", "0", "1.5"} {
		pagination := Paginate(token, 2, 10)
		if pagination.Page != 1 {
			t.Errorf("Paginate(%q).Page = %d, want 1", token, pagination.Page)
		}
	}
}

func TestPaginateClampsToLastPage(t *testing.T) {
	pagination := Paginate("99", 2, 5)
	if pagination.Page != 3 {
		t.Fatalf("Page = %d, want 3", pagination.Page)
	}
	if pagination.Offset() != 4 {
		t.Fatalf("Offset() = %d, want 4", pagination.Offset())
	}
}

func TestPaginationNavigation(t *testing.T) {
	middle := Paginate("2", 2, 5)
	if !middle.HasPrevious() || !middle.HasNext() {
		t.Fatalf("page 2 of 3: HasPrevious = %v, HasNext = %v", middle.HasPrevious(), middle.HasNext())
	}
	if middle.PreviousPage() != 1 || middle.NextPage() != 3 {
		t.Fatalf("neighbours = %d / %d, want 1 / 3", middle.PreviousPage(), middle.NextPage())
	}

	first := Paginate("1", 2, 5)
	if first.HasPrevious() {
		t.Fatal("first page must not have a previous page")
	}
	if first.PreviousPage() != 1 {
		t.Fatalf("first.PreviousPage() = %d, want 1", first.PreviousPage())
	}

	last := Paginate("3", 2, 5)
	if last.HasNext() {
		t.Fatal("last page must not have a next page")
	}
	if last.NextPage() != 3 {
		t.Fatalf("last.NextPage() = %d, want 3", last.NextPage())
	}
}

func TestPageNumbersListsEveryPage(t *testing.T) {
	pagination := Paginate("1", 2, 5)
	numbers := pagination.PageNumbers()
	want := []int{1, 2, 3}
	if len(numbers) != len(want) {
		t.Fatalf("PageNumbers() = %v, want %v", numbers, want)
	}
	for index := range want {
		if numbers[index] != want[index] {
			t.Fatalf("PageNumbers() = %v, want %v", numbers, want)
		}
	}
}
