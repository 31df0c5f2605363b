package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_TwentyThreeItems(t *testing.T) {
	items := seq(23)

	first, err := Paginate(items, 1, DefaultPageSize)
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 23, first.TotalCount)
	assert.Equal(t, seq(10), first.Items)

	last, err := Paginate(items, 3, DefaultPageSize)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 21, 22}, last.Items)
}

func TestPaginate_PastLastPageIsEmpty(t *testing.T) {
	p, err := Paginate(seq(23), 4, DefaultPageSize)
	require.NoError(t, err)
	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 4, p.Page)
}

func TestPaginate_InvalidPage(t *testing.T) {
	_, err := Paginate(seq(5), 0, DefaultPageSize)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestPaginate_EmptyList(t *testing.T) {
	p, err := Paginate([]string{}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Empty(t, p.Items)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
}
