package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	GetUserData(c *ginext.Context)
	GetCars(c *ginext.Context)

	ChangeRoleToOwner(c *ginext.Context)
	AddCar(c *ginext.Context)
	GetOwnerCars(c *ginext.Context)
	ToggleCarAvailability(c *ginext.Context)
	DeleteCar(c *ginext.Context)
	GetDashboardData(c *ginext.Context)
	UpdateUserImage(c *ginext.Context)
	ExportOwnerBookings(c *ginext.Context)

	CheckAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	GetOwnerBookings(c *ginext.Context)
	ChangeBookingStatus(c *ginext.Context)
}

// Guards holds the per-route middleware: protect authenticates the caller,
// upload buffers the multipart image.
type Guards struct {
	Protect ginext.HandlerFunc
	Upload  ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	user := router.Group("/api/user")
	{
		user.POST("/register", h.Register)
		user.POST("/login", h.Login)
		user.GET("/data", g.Protect, h.GetUserData)
		user.GET("/cars", h.GetCars)
	}

	owner := router.Group("/api/owner", g.Protect)
	{
		owner.POST("/change-role", h.ChangeRoleToOwner)
		owner.POST("/add-car", g.Upload, h.AddCar)
		owner.GET("/cars", h.GetOwnerCars)
		owner.POST("/toggle-car", h.ToggleCarAvailability)
		owner.POST("/delete-car", h.DeleteCar)
		owner.GET("/dashboard", h.GetDashboardData)
		owner.POST("/update-image", g.Upload, h.UpdateUserImage)
		owner.GET("/bookings/export", h.ExportOwnerBookings)
	}

	bookings := router.Group("/api/bookings")
	{
		bookings.POST("/check-availability", h.CheckAvailability)
		bookings.POST("/create", g.Protect, h.CreateBooking)
		bookings.GET("/user", g.Protect, h.GetUserBookings)
		bookings.GET("/owner", g.Protect, h.GetOwnerBookings)
		bookings.POST("/change-status", g.Protect, h.ChangeBookingStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	router.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, "server is running")
	})

	return router
}
