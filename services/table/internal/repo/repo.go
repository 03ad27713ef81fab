package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tuanle-dev/table-management/services/table/internal/models"
	"github.com/tuanle-dev/table-management/services/table/internal/transport"
)

type GormRepo struct {
	DB *gorm.DB
}

var sortColumns = map[string]string{
	"id":        "id",
	"number":    "number",
	"price":     "price",
	"status":    "status",
	"createdAt": "created_at",
}

func (r *GormRepo) active(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&models.RestaurantTable{}).Where("is_deleted = ?", false)
}

func applyFilters(q *gorm.DB, f transport.PageQuery) *gorm.DB {
	if f.Number > 0 {
		q = q.Where("number = ?", f.Number)
	}
	if f.TableTypeID > 0 {
		q = q.Where("table_type_id = ?", f.TableTypeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", strings.ToUpper(f.Status))
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	return q
}

func (r *GormRepo) Page(ctx context.Context, q transport.PageQuery, offset, limit int) (int64, []models.RestaurantTable, error) {
	base := applyFilters(r.active(ctx), q)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "id"
	}
	dir := "ASC"
	if strings.EqualFold(q.SortDir, "desc") {
		dir = "DESC"
	}

	var items []models.RestaurantTable
	if err := base.Order(column + " " + dir).Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*models.RestaurantTable, error) {
	var table models.RestaurantTable
	if err := r.active(ctx).Where("id = ?", id).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// ExistsByNumber reports whether another live row already uses this
// table number. excludeID skips the row being updated; pass 0 on create.
func (r *GormRepo) ExistsByNumber(ctx context.Context, number int, excludeID uint) (bool, error) {
	var count int64
	q := r.active(ctx).Where("number = ?", number)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) Create(ctx context.Context, table *models.RestaurantTable) error {
	return r.DB.WithContext(ctx).Create(table).Error
}

func (r *GormRepo) Save(ctx context.Context, table *models.RestaurantTable) error {
	return r.DB.WithContext(ctx).Save(table).Error
}

func (r *GormRepo) Delete(ctx context.Context, id uint) error {
	res := r.active(ctx).Where("id = ?", id).Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
