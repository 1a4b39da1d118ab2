package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 5
)

// Request holds the list-shaping parameters extracted from a request.
type Request struct {
	PageNumber     int
	PageSize       int
	SortBy         string
	SortDescending bool
}

// FromContext extracts pagination and sorting parameters from the echo
// context. Missing or non-positive page values fall back to the defaults so
// a negative skip can never reach the store. There is no upper bound on
// pageSize; callers asking for very large pages get them.
func FromContext(c echo.Context) Request {
	pageNumber, _ := strconv.Atoi(c.QueryParam("pageNumber"))
	if pageNumber < 1 {
		pageNumber = DefaultPageNumber
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	desc, _ := strconv.ParseBool(c.QueryParam("sortDescending"))
	return Request{
		PageNumber:     pageNumber,
		PageSize:       pageSize,
		SortBy:         c.QueryParam("sortBy"),
		SortDescending: desc,
	}
}

// Page wraps one page of results with its pagination metadata.
type Page struct {
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
	PageNumber   int `json:"pageNumber"`
	PageSize     int `json:"pageSize"`
	Data         any `json:"data"`
}

// NewPage builds the response shape for one page. TotalPages is the ceiling
// of total/pageSize.
func NewPage(data any, total int, req Request) *Page {
	totalPages := (total + req.PageSize - 1) / req.PageSize
	return &Page{
		TotalRecords: total,
		TotalPages:   totalPages,
		PageNumber:   req.PageNumber,
		PageSize:     req.PageSize,
		Data:         data,
	}
}
