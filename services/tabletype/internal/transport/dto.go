package transport

import (
	"strings"

	"github.com/tuanle-dev/table-management/pkg/httpx"
)

const (
	MinCapacity = 1
	MaxCapacity = 20
)

type TableTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

func (r *TableTypeRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return httpx.BadRequest("name must not be blank")
	}
	if len(r.Name) > 100 {
		return httpx.BadRequest("name must not exceed 100 characters")
	}
	if r.Capacity < MinCapacity || r.Capacity > MaxCapacity {
		return httpx.BadRequest("capacity must be between 1 and 20")
	}
	return nil
}

// ListQuery carries optional filters for the unpaged listing.
type ListQuery struct {
	Keyword  string `query:"keyword"`
	Capacity int    `query:"capacity"`
}

// PageQuery carries pagination and sorting parameters.
type PageQuery struct {
	Page     int    `query:"page"`
	Size     int    `query:"size"`
	SortBy   string `query:"sortBy"`
	SortDir  string `query:"sortDir"`
	Keyword  string `query:"keyword"`
	Capacity int    `query:"capacity"`
}
