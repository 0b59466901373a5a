package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

// stubHandler answers every route with its own name.
type stubHandler struct{}

func reply(name string) func(c *ginext.Context) {
	return func(c *ginext.Context) { c.String(http.StatusOK, name) }
}

func (stubHandler) Register(c *ginext.Context)              { reply("register")(c) }
func (stubHandler) Login(c *ginext.Context)                 { reply("login")(c) }
func (stubHandler) GetUserData(c *ginext.Context)           { reply("user-data")(c) }
func (stubHandler) GetCars(c *ginext.Context)               { reply("cars")(c) }
func (stubHandler) ChangeRoleToOwner(c *ginext.Context)     { reply("change-role")(c) }
func (stubHandler) AddCar(c *ginext.Context)                { reply("add-car")(c) }
func (stubHandler) GetOwnerCars(c *ginext.Context)          { reply("owner-cars")(c) }
func (stubHandler) ToggleCarAvailability(c *ginext.Context) { reply("toggle-car")(c) }
func (stubHandler) DeleteCar(c *ginext.Context)             { reply("delete-car")(c) }
func (stubHandler) GetDashboardData(c *ginext.Context)      { reply("dashboard")(c) }
func (stubHandler) UpdateUserImage(c *ginext.Context)       { reply("update-image")(c) }
func (stubHandler) ExportOwnerBookings(c *ginext.Context)   { reply("export")(c) }
func (stubHandler) CheckAvailability(c *ginext.Context)     { reply("check-availability")(c) }
func (stubHandler) CreateBooking(c *ginext.Context)         { reply("create-booking")(c) }
func (stubHandler) GetUserBookings(c *ginext.Context)       { reply("user-bookings")(c) }
func (stubHandler) GetOwnerBookings(c *ginext.Context)      { reply("owner-bookings")(c) }
func (stubHandler) ChangeBookingStatus(c *ginext.Context)   { reply("change-status")(c) }

func TestInitRouter_ProtectedRoutes(t *testing.T) {
	var protected, uploads []string
	g := Guards{
		Protect: func(c *ginext.Context) {
			protected = append(protected, c.Request.URL.Path)
			c.Next()
		},
		Upload: func(c *ginext.Context) {
			uploads = append(uploads, c.Request.URL.Path)
			c.Next()
		},
	}
	r := InitRouter("test", stubHandler{}, g)

	tests := []struct {
		method    string
		path      string
		body      string
		protected bool
	}{
		{http.MethodPost, "/api/user/register", "register", false},
		{http.MethodPost, "/api/user/login", "login", false},
		{http.MethodGet, "/api/user/data", "user-data", true},
		{http.MethodGet, "/api/user/cars", "cars", false},
		{http.MethodPost, "/api/owner/change-role", "change-role", true},
		{http.MethodPost, "/api/owner/add-car", "add-car", true},
		{http.MethodGet, "/api/owner/cars", "owner-cars", true},
		{http.MethodPost, "/api/owner/toggle-car", "toggle-car", true},
		{http.MethodPost, "/api/owner/delete-car", "delete-car", true},
		{http.MethodGet, "/api/owner/dashboard", "dashboard", true},
		{http.MethodPost, "/api/owner/update-image", "update-image", true},
		{http.MethodGet, "/api/owner/bookings/export", "export", true},
		{http.MethodPost, "/api/bookings/check-availability", "check-availability", false},
		{http.MethodPost, "/api/bookings/create", "create-booking", true},
		{http.MethodGet, "/api/bookings/user", "user-bookings", true},
		{http.MethodGet, "/api/bookings/owner", "owner-bookings", true},
		{http.MethodPost, "/api/bookings/change-status", "change-status", true},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			protected = nil

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
			if tt.protected {
				assert.Equal(t, []string{tt.path}, protected)
			} else {
				assert.Empty(t, protected)
			}
		})
	}

	assert.ElementsMatch(t, []string{"/api/owner/add-car", "/api/owner/update-image"}, uploads)
}

func TestInitRouter_ServiceRoutes(t *testing.T) {
	noop := func(c *ginext.Context) { c.Next() }
	r := InitRouter("test", stubHandler{}, Guards{Protect: noop, Upload: noop})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "server is running", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
