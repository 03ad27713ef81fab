package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tuanle-dev/table-management/services/tabletype/internal/models"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/transport"
)

type GormRepo struct {
	DB *gorm.DB
}

// sortColumns whitelists the fields a client may order by.
var sortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"capacity":  "capacity",
	"createdAt": "created_at",
}

func (r *GormRepo) active(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&models.TableType{}).Where("is_deleted = ?", false)
}

func applyFilters(q *gorm.DB, keyword string, capacity int) *gorm.DB {
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		like := "%" + strings.ToLower(keyword) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if capacity > 0 {
		q = q.Where("capacity = ?", capacity)
	}
	return q
}

func (r *GormRepo) List(ctx context.Context, keyword string, capacity int) ([]models.TableType, error) {
	var items []models.TableType
	q := applyFilters(r.active(ctx), keyword, capacity)
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) Page(ctx context.Context, q transport.PageQuery, offset, limit int) (int64, []models.TableType, error) {
	base := applyFilters(r.active(ctx), q.Keyword, q.Capacity)

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

	var items []models.TableType
	if err := base.Order(column + " " + dir).Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) GetByID(ctx context.Context, id uint) (*models.TableType, error) {
	var tt models.TableType
	if err := r.active(ctx).Where("id = ?", id).First(&tt).Error; err != nil {
		return nil, err
	}
	return &tt, nil
}

// ExistsByName reports whether another live row already uses this name.
// excludeID skips the row being updated; pass 0 on create.
func (r *GormRepo) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.active(ctx).Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) Create(ctx context.Context, tt *models.TableType) error {
	return r.DB.WithContext(ctx).Create(tt).Error
}

func (r *GormRepo) Save(ctx context.Context, tt *models.TableType) error {
	return r.DB.WithContext(ctx).Save(tt).Error
}

// Delete marks the row deleted without removing it.
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
