package service

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/tuanle-dev/table-management/pkg/events"
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
	"github.com/tuanle-dev/table-management/services/table/internal/models"
	"github.com/tuanle-dev/table-management/services/table/internal/repo"
	"github.com/tuanle-dev/table-management/services/table/internal/transport"
	"github.com/tuanle-dev/table-management/services/table/internal/typeclient"
)

// TypeLookup resolves table types from the table-type service. It is an
// interface so tests can substitute a fake without a live service.
type TypeLookup interface {
	GetByID(ctx context.Context, id uint) (*typeclient.TableType, error)
}

type TableService struct {
	Repo     *repo.GormRepo
	Types    TypeLookup
	Producer *events.Producer
}

type tableEvent struct {
	Type  string                  `json:"type"`
	Table *models.RestaurantTable `json:"table"`
}

func (s *TableService) publish(ctx context.Context, eventType string, table *models.RestaurantTable) {
	key := strconv.FormatUint(uint64(table.ID), 10)
	if err := s.Producer.Publish(ctx, key, tableEvent{Type: eventType, Table: table}); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "type", eventType, "error", err)
	}
}

func (s *TableService) checkType(ctx context.Context, id uint) error {
	if _, err := s.Types.GetByID(ctx, id); err != nil {
		if errors.Is(err, typeclient.ErrNotFound) {
			return httpx.NotFound("Table type not found")
		}
		return err
	}
	return nil
}

func (s *TableService) Page(ctx context.Context, q transport.PageQuery) (httpx.PageData, error) {
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

func (s *TableService) Get(ctx context.Context, id uint) (*models.RestaurantTable, error) {
	table, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httpx.NotFound("Table not found")
		}
		return nil, err
	}
	return table, nil
}

func (s *TableService) Create(ctx context.Context, req transport.TableRequest) (*models.RestaurantTable, error) {
	l := logging.FromContext(ctx).With("svc", "table.create", "number", req.Number)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsByNumber(ctx, req.Number, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		l.Warn("create rejected", "reason", "number already in use")
		return nil, httpx.Conflict("Table number already exists")
	}

	if err := s.checkType(ctx, req.TableTypeID); err != nil {
		return nil, err
	}

	table := &models.RestaurantTable{
		Number:      req.Number,
		TableTypeID: req.TableTypeID,
		Price:       req.Price,
		Status:      req.Status,
	}
	if err := s.Repo.Create(ctx, table); err != nil {
		return nil, err
	}

	s.publish(ctx, "table_created", table)
	l.Info("table created", "id", table.ID)
	return table, nil
}

func (s *TableService) Update(ctx context.Context, id uint, req transport.TableRequest) (*models.RestaurantTable, error) {
	l := logging.FromContext(ctx).With("svc", "table.update", "id", id)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	table, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsByNumber(ctx, req.Number, id)
	if err != nil {
		return nil, err
	}
	if taken {
		l.Warn("update rejected", "reason", "number already in use")
		return nil, httpx.Conflict("Table number already exists")
	}

	// The referenced type is re-checked on every update; a type that was
	// deleted since the table was created fails the update.
	if err := s.checkType(ctx, req.TableTypeID); err != nil {
		return nil, err
	}

	table.Number = req.Number
	table.TableTypeID = req.TableTypeID
	table.Price = req.Price
	table.Status = req.Status
	if err := s.Repo.Save(ctx, table); err != nil {
		return nil, err
	}

	s.publish(ctx, "table_updated", table)
	l.Info("table updated")
	return table, nil
}

func (s *TableService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "table.delete", "id", id)

	table, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpx.NotFound("Table not found")
		}
		return err
	}

	s.publish(ctx, "table_deleted", table)
	l.Info("table deleted")
	return nil
}
