package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage_WindowMath(t *testing.T) {
	// 30 items, 25 per page
	first := make([]int, 25)
	second := make([]int, 5)

	tests := []struct {
		name     string
		items    []int
		page     int
		total    int64
		wantLen  int
		hasNext  bool
		hasPrev  bool
		nextNum  int
		prevNum  int
	}{
		{
			name:    "first page full",
			items:   first,
			page:    1,
			total:   30,
			wantLen: 25,
			hasNext: true,
			nextNum: 2,
		},
		{
			name:    "last page partial",
			items:   second,
			page:    2,
			total:   30,
			wantLen: 5,
			hasNext: false,
			hasPrev: true,
			prevNum: 1,
		},
		{
			name:    "exact fit has no next",
			items:   first,
			page:    1,
			total:   25,
			wantLen: 25,
		},
		{
			name:    "out of range page is empty, not an error",
			items:   nil,
			page:    5,
			total:   30,
			wantLen: 0,
			hasPrev: true,
			prevNum: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage(tc.items, tc.page, 25, tc.total)
			require.NotNil(t, p.Items)
			assert.Len(t, p.Items, tc.wantLen)
			assert.Equal(t, tc.hasNext, p.HasNext)
			assert.Equal(t, tc.hasPrev, p.HasPrev)
			assert.Equal(t, tc.nextNum, p.NextNum)
			assert.Equal(t, tc.prevNum, p.PrevNum)
			assert.Equal(t, tc.total, p.Total)
		})
	}
}

func TestNewPage_NormalizesPageNumber(t *testing.T) {
	p := NewPage([]string{"a"}, 0, 10, 1)
	assert.Equal(t, 1, p.Page)
	assert.False(t, p.HasPrev)
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, PageOffset(1, 25))
	assert.Equal(t, 25, PageOffset(2, 25))
	assert.Equal(t, 0, PageOffset(0, 25))
	assert.Equal(t, 0, PageOffset(-3, 25))
}
