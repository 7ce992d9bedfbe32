// Package pagination normalizes page requests and computes the
// navigation-link metadata that accompanies collection responses.
package pagination

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Bounds for a page request. Out-of-range inputs are clamped, never rejected.
const (
	MinPageSize = 1
	MaxPageSize = 20
)

// Page is a normalized page request: a 1-based page number and a size
// within [MinPageSize, MaxPageSize].
type Page struct {
	Number int
	Size   int
}

// Normalize clamps raw query inputs into a valid page request.
func Normalize(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < MinPageSize {
		size = MinPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the zero-based item offset of the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Links is the pagination metadata record serialized into the
// X-Pagination response header. It travels in a header, not the body,
// so list responses stay a plain array of resources.
type Links struct {
	PreviousPageLink *string `json:"previousPageLink"`
	NextPageLink     string  `json:"nextPageLink"`
	PageSize         int     `json:"pageSize"`
	CurrentPage      int     `json:"currentPage"`
	TotalCount       int     `json:"totalCount"`
	TotalPages       int     `json:"totalPages"`
}

// BuildLinks computes navigation links for a normalized page request
// against a point-in-time total count. The previous link is absent on
// the first page. The next link is always present, even past the last
// page: clients probing forward get a syntactically valid link that
// yields an empty page.
func BuildLinks(basePath string, page Page, totalCount int) Links {
	links := Links{
		NextPageLink: pageLink(basePath, page.Number+1, page.Size),
		PageSize:     page.Size,
		CurrentPage:  page.Number,
		TotalCount:   totalCount,
		TotalPages:   totalPages(totalCount, page.Size),
	}
	if page.Number > 1 {
		prev := pageLink(basePath, page.Number-1, page.Size)
		links.PreviousPageLink = &prev
	}
	return links
}

// Header renders the metadata as a single JSON header value.
func (l Links) Header() (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("marshal pagination metadata: %w", err)
	}
	return string(b), nil
}

func totalPages(totalCount, pageSize int) int {
	return (totalCount + pageSize - 1) / pageSize
}

func pageLink(basePath string, number, size int) string {
	query := url.Values{}
	query.Set("pageNumber", strconv.Itoa(number))
	query.Set("pageSize", strconv.Itoa(size))
	return basePath + "?" + query.Encode()
}
