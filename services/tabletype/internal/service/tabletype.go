package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/models"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/repo"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/transport"
)

type TableTypeService struct {
	Repo *repo.GormRepo
}

func (s *TableTypeService) List(ctx context.Context, q transport.ListQuery) ([]models.TableType, error) {
	return s.Repo.List(ctx, q.Keyword, q.Capacity)
}

func (s *TableTypeService) Page(ctx context.Context, q transport.PageQuery) (httpx.PageData, error) {
	offset, limit := httpx.PageWindow(q.Page, q.Size)
	total, items, err := s.Repo.Page(ctx, q, offset, limit)
	if err != nil {
		return httpx.PageData{}, err
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return httpx.NewPageData(items, q.Page, limit, total), nil
}

func (s *TableTypeService) Get(ctx context.Context, id uint) (*models.TableType, error) {
	tt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httpx.NotFound("Table type not found")
		}
		return nil, err
	}
	return tt, nil
}

func (s *TableTypeService) Create(ctx context.Context, req transport.TableTypeRequest) (*models.TableType, error) {
	l := logging.FromContext(ctx).With("svc", "tabletype.create", "name", req.Name)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsByName(ctx, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		l.Warn("create rejected", "reason", "name already in use")
		return nil, httpx.Conflict("Table type name already exists")
	}

	tt := &models.TableType{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
	}
	if err := s.Repo.Create(ctx, tt); err != nil {
		return nil, err
	}

	l.Info("table type created", "id", tt.ID)
	return tt, nil
}

func (s *TableTypeService) Update(ctx context.Context, id uint, req transport.TableTypeRequest) (*models.TableType, error) {
	l := logging.FromContext(ctx).With("svc", "tabletype.update", "id", id)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	tt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsByName(ctx, req.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		l.Warn("update rejected", "reason", "name already in use")
		return nil, httpx.Conflict("Table type name already exists")
	}

	tt.Name = req.Name
	tt.Description = req.Description
	tt.Capacity = req.Capacity
	if err := s.Repo.Save(ctx, tt); err != nil {
		return nil, err
	}

	l.Info("table type updated")
	return tt, nil
}

func (s *TableTypeService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "tabletype.delete", "id", id)

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpx.NotFound("Table type not found")
		}
		return err
	}

	l.Info("table type deleted")
	return nil
}
