// Package orm holds the small query helpers shared by the repositories.
package orm

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// ErrBadPage is returned when page or perPage is not a positive integer.
var ErrBadPage = errors.New("page and perPage must be positive integers")

// Page is the requested window. A zero Page means "everything".
type Page struct {
	Page    int
	PerPage int
}

// Enabled reports whether an offset/limit window was requested.
func (p Page) Enabled() bool { return p.Page > 0 && p.PerPage > 0 }

// Offset is the zero-based row offset for the window.
func (p Page) Offset() int { return (p.Page - 1) * p.PerPage }

// ParsePage reads page and perPage from raw query values. Both empty yields
// the zero Page. When only one is given the window is not applied unless
// WithDefaults fills the other.
func ParsePage(rawPage, rawPerPage string) (Page, error) {
	rawPage, rawPerPage = strings.TrimSpace(rawPage), strings.TrimSpace(rawPerPage)

	var p Page
	if rawPage != "" {
		n, err := strconv.Atoi(rawPage)
		if err != nil || n < 1 {
			return Page{}, ErrBadPage
		}
		p.Page = n
	}
	if rawPerPage != "" {
		n, err := strconv.Atoi(rawPerPage)
		if err != nil || n < 1 {
			return Page{}, ErrBadPage
		}
		p.PerPage = n
	}
	return p, nil
}

// WithDefaults fills missing values, for endpoints that always paginate.
func (p Page) WithDefaults(page, perPage int) Page {
	if p.Page < 1 {
		p.Page = page
	}
	if p.PerPage < 1 {
		p.PerPage = perPage
	}
	return p
}

// Pagination is the metadata attached to list responses.
type Pagination struct {
	Page         int   `json:"page,omitempty"`
	PerPage      int   `json:"perPage,omitempty"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages"`
}

// NewPagination computes totals for p. An unpaginated result is one page;
// a paginated one has ceil(total/perPage) pages, so zero rows is zero pages.
func NewPagination(p Page, total int64) Pagination {
	out := Pagination{TotalRecords: total, TotalPages: 1}
	if !p.Enabled() {
		return out
	}
	out.Page = p.Page
	out.PerPage = p.PerPage
	out.TotalPages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	return out
}

// Paginate is a GORM scope applying the window when one was requested.
func Paginate(p Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !p.Enabled() {
			return db
		}
		return db.Offset(p.Offset()).Limit(p.PerPage)
	}
}

// likeEscape is portable across the SQL dialects; a backslash is itself an
// escape inside MySQL string literals.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// EscapeLike quotes the LIKE wildcards in s so it matches literally under
// ESCAPE '!'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// NameContains is a GORM scope for a case-insensitive substring filter on
// column. An empty needle leaves the query untouched. Wildcards in needle
// match literally.
func NameContains(column, needle string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		needle = strings.TrimSpace(needle)
		if needle == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE LOWER(?) ESCAPE '"+likeEscape+"'", "%"+EscapeLike(needle)+"%")
	}
}

// Enabled restricts a query to rows that have not been soft-deleted.
func Enabled(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if table == "" {
			return db.Where("enabled = ?", true)
		}
		return db.Where(table+".enabled = ?", true)
	}
}
