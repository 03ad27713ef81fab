package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/services/table/internal/models"
	"github.com/tuanle-dev/table-management/services/table/internal/repo"
	"github.com/tuanle-dev/table-management/services/table/internal/transport"
	"github.com/tuanle-dev/table-management/services/table/internal/typeclient"
)

// fakeTypes serves table types from a map instead of the network.
type fakeTypes struct {
	types map[uint]*typeclient.TableType
}

func (f *fakeTypes) GetByID(_ context.Context, id uint) (*typeclient.TableType, error) {
	tt, ok := f.types[id]
	if !ok {
		return nil, typeclient.ErrNotFound
	}
	return tt, nil
}

func newTestService(t *testing.T) *TableService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.RestaurantTable{}))

	return &TableService{
		Repo: &repo.GormRepo{DB: db},
		Types: &fakeTypes{types: map[uint]*typeclient.TableType{
			1: {ID: 1, Name: "Booth", Capacity: 4},
			2: {ID: 2, Name: "Terrace", Capacity: 6},
		}},
	}
}

func mustCreate(t *testing.T, svc *TableService, number int, typeID uint) *models.RestaurantTable {
	t.Helper()
	table, err := svc.Create(context.Background(), transport.TableRequest{
		Number:      number,
		TableTypeID: typeID,
		Price:       25,
	})
	require.NoError(t, err)
	return table
}

func TestTableService_Create(t *testing.T) {
	svc := newTestService(t)

	table, err := svc.Create(context.Background(), transport.TableRequest{
		Number:      7,
		TableTypeID: 1,
		Price:       30,
	})
	require.NoError(t, err)
	assert.NotZero(t, table.ID)
	assert.Equal(t, 7, table.Number)
	// Status defaults to AVAILABLE when the request omits it.
	assert.Equal(t, models.StatusAvailable, table.Status)
}

func TestTableService_Create_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		req  transport.TableRequest
	}{
		{"non positive number", transport.TableRequest{Number: 0, TableTypeID: 1}},
		{"missing type", transport.TableRequest{Number: 1}},
		{"negative price", transport.TableRequest{Number: 1, TableTypeID: 1, Price: -5}},
		{"bad status", transport.TableRequest{Number: 1, TableTypeID: 1, Status: "BROKEN"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			var apiErr *httpx.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.HTTPStatus)
		})
	}
}

func TestTableService_Create_UnknownType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), transport.TableRequest{Number: 1, TableTypeID: 999})
	var apiErr *httpx.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPStatus)
}

func TestTableService_Create_NumberConflict(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, 7, 1)

	_, err := svc.Create(context.Background(), transport.TableRequest{Number: 7, TableTypeID: 2})
	var apiErr *httpx.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.HTTPStatus)

	// The number conflict is reported before the type lookup runs.
	_, err = svc.Create(context.Background(), transport.TableRequest{Number: 7, TableTypeID: 999})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.HTTPStatus)
}

func TestTableService_Update(t *testing.T) {
	svc := newTestService(t)
	table := mustCreate(t, svc, 7, 1)
	mustCreate(t, svc, 8, 1)

	updated, err := svc.Update(context.Background(), table.ID, transport.TableRequest{
		Number:      7,
		TableTypeID: 2,
		Price:       40,
		Status:      models.StatusReserved,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), updated.TableTypeID)
	assert.Equal(t, models.StatusReserved, updated.Status)

	var apiErr *httpx.APIError

	_, err = svc.Update(context.Background(), table.ID, transport.TableRequest{Number: 8, TableTypeID: 2})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.HTTPStatus)

	_, err = svc.Update(context.Background(), 999, transport.TableRequest{Number: 9, TableTypeID: 1})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPStatus)

	// Switching to a type the table-type service does not know is rejected.
	_, err = svc.Update(context.Background(), table.ID, transport.TableRequest{Number: 7, TableTypeID: 999})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPStatus)
}

func TestTableService_Update_RechecksUnchangedType(t *testing.T) {
	svc := newTestService(t)
	table := mustCreate(t, svc, 7, 2)

	// The type is validated on every update, so a table keeping a type
	// that has since been deleted fails with 404.
	delete(svc.Types.(*fakeTypes).types, uint(2))

	_, err := svc.Update(context.Background(), table.ID, transport.TableRequest{
		Number: 7, TableTypeID: 2, Status: models.StatusCleaning,
	})
	var apiErr *httpx.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPStatus)
}

func TestTableService_Delete(t *testing.T) {
	svc := newTestService(t)
	table := mustCreate(t, svc, 7, 1)

	require.NoError(t, svc.Delete(context.Background(), table.ID))

	var apiErr *httpx.APIError
	_, err := svc.Get(context.Background(), table.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPStatus)

	// The freed number can be reused.
	_, err = svc.Create(context.Background(), transport.TableRequest{Number: 7, TableTypeID: 1})
	assert.NoError(t, err)

	err = svc.Delete(context.Background(), table.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPStatus)
}

func TestTableService_Page(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, 1, 1)
	mustCreate(t, svc, 2, 1)
	t3 := mustCreate(t, svc, 3, 2)

	_, err := svc.Update(context.Background(), t3.ID, transport.TableRequest{
		Number: 3, TableTypeID: 2, Price: 100, Status: models.StatusOccupied,
	})
	require.NoError(t, err)

	page, err := svc.Page(context.Background(), transport.PageQuery{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, int64(2), page.TotalPages)

	page, err = svc.Page(context.Background(), transport.PageQuery{Page: 1, Size: 10, TableTypeID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = svc.Page(context.Background(), transport.PageQuery{Page: 1, Size: 10, Status: "occupied"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = svc.Page(context.Background(), transport.PageQuery{Page: 1, Size: 10, MinPrice: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = svc.Page(context.Background(), transport.PageQuery{
		Page: 1, Size: 10, SortBy: "number", SortDir: "desc",
	})
	require.NoError(t, err)
	got := page.Items.([]models.RestaurantTable)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Number)
}
