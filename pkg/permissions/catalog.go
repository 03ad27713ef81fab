package permissions

import "net/http"

// Named permissions over the service route surface.
var (
	permLogin        = Permission{http.MethodPost, "/auth/login"}
	permRefreshToken = Permission{http.MethodPost, "/auth/refresh-token"}

	permDocsIndex = Permission{http.MethodGet, "/docs"}
	permDocsPage  = Permission{http.MethodGet, "/docs/*"}

	permTableTypeList   = Permission{http.MethodGet, "/table-type/list"}
	permTableTypePage   = Permission{http.MethodGet, "/table-type/page"}
	permTableTypeDetail = Permission{http.MethodGet, "/table-type/*"}
	permTableTypeCreate = Permission{http.MethodPost, "/table-type/create"}
	permTableTypeUpdate = Permission{http.MethodPut, "/table-type/update/*"}
	permTableTypeDelete = Permission{http.MethodDelete, "/table-type/delete/*"}

	permTablePage   = Permission{http.MethodGet, "/table/page"}
	permTableDetail = Permission{http.MethodGet, "/table/*"}
	permTableCreate = Permission{http.MethodPost, "/table/create"}
	permTableUpdate = Permission{http.MethodPut, "/table/update/*"}
	permTableDelete = Permission{http.MethodDelete, "/table/delete/*"}
)

// NewCatalog builds the static role → permission table. Anonymous
// callers get login, refresh, the read-only listings and the docs
// pages; users get the read-only listings; admins get full CRUD on
// both resources.
func NewCatalog() *Catalog {
	return &Catalog{byRole: map[Role][]Permission{
		RoleAnonymous: {
			permLogin,
			permRefreshToken,
			permTableTypeList,
			permTablePage,
			permTableDetail,
			permDocsIndex,
			permDocsPage,
		},
		RoleUser: {
			permTableTypeList,
			permTablePage,
			permTableDetail,
		},
		RoleAdmin: {
			permTableTypeList,
			permTableTypePage,
			permTableTypeDetail,
			permTableTypeCreate,
			permTableTypeUpdate,
			permTableTypeDelete,
			permTablePage,
			permTableDetail,
			permTableCreate,
			permTableUpdate,
			permTableDelete,
		},
	}}
}
