package transport

import (
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/services/table/internal/models"
)

type TableRequest struct {
	Number      int     `json:"number"`
	TableTypeID uint    `json:"tableTypeId"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

func (r *TableRequest) Validate() error {
	if r.Number <= 0 {
		return httpx.BadRequest("number must be a positive integer")
	}
	if r.TableTypeID == 0 {
		return httpx.BadRequest("tableTypeId is required")
	}
	if r.Price < 0 {
		return httpx.BadRequest("price must not be negative")
	}
	if r.Status == "" {
		r.Status = models.StatusAvailable
	}
	if !models.ValidStatus(r.Status) {
		return httpx.BadRequest("status must be one of AVAILABLE, OCCUPIED, RESERVED, CLEANING")
	}
	return nil
}

// PageQuery carries pagination plus the table filters.
type PageQuery struct {
	Page        int     `query:"page"`
	Size        int     `query:"size"`
	SortBy      string  `query:"sortBy"`
	SortDir     string  `query:"sortDir"`
	Number      int     `query:"number"`
	TableTypeID uint    `query:"tableTypeId"`
	Status      string  `query:"status"`
	MinPrice    float64 `query:"minPrice"`
	MaxPrice    float64 `query:"maxPrice"`
}
