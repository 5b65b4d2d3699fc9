package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		page, perPage string
		want          Page
		err           bool
	}{
		{"", "", Page{}, false},
		{"2", "5", Page{Page: 2, PerPage: 5}, false},
		{" 3 ", "10", Page{Page: 3, PerPage: 10}, false},
		{"2", "", Page{Page: 2}, false},
		{"0", "5", Page{}, true},
		{"1", "-1", Page{}, true},
		{"one", "5", Page{}, true},
	}
	for _, c := range cases {
		got, err := ParsePage(c.page, c.perPage)
		if c.err {
			assert.ErrorIs(t, err, ErrBadPage, "%q/%q", c.page, c.perPage)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%q/%q", c.page, c.perPage)
	}
}

func TestPartialPageIsNotAWindow(t *testing.T) {
	p, err := ParsePage("2", "")
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	p = p.WithDefaults(1, 10)
	assert.Equal(t, Page{Page: 2, PerPage: 10}, p)
	assert.Equal(t, 10, p.Offset())
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{TotalRecords: 7, TotalPages: 1}, NewPagination(Page{}, 7))
	assert.Equal(t, Pagination{Page: 2, PerPage: 3, TotalRecords: 7, TotalPages: 3}, NewPagination(Page{Page: 2, PerPage: 3}, 7))
	assert.Equal(t, Pagination{Page: 1, PerPage: 10, TotalRecords: 0, TotalPages: 0}, NewPagination(Page{Page: 1, PerPage: 10}, 0))
	assert.Equal(t, Pagination{TotalRecords: 0, TotalPages: 1}, NewPagination(Page{}, 0))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", EscapeLike("plain"))
	assert.Equal(t, "50!% off", EscapeLike("50% off"))
	assert.Equal(t, "a!_b", EscapeLike("a_b"))
	assert.Equal(t, "wow!!", EscapeLike("wow!"))
	assert.Equal(t, `c:\tmp`, EscapeLike(`c:\tmp`))
}
