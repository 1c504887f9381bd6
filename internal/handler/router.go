package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	guestHandler *api.GuestHandler,
	hotelHandler *api.HotelHandler,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, guestHandler, hotelHandler, bookingHandler, roomHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	guestHandler *api.GuestHandler,
	hotelHandler *api.HotelHandler,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/guests"), []route{
			{Method: http.MethodPost, Path: "", Handler: guestHandler.RegisterGuest},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: guestHandler.GetBookedRooms},
		})

		addRoutes(apiGroup.Group("/hotels"), []route{
			{Method: http.MethodPost, Path: "", Handler: hotelHandler.AddHotel},
			{Method: http.MethodGet, Path: "/:city", Handler: hotelHandler.GetHotelsInCity},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.BookRoom},
		})

		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodPost, Path: "", Handler: roomHandler.AddRoom},
			{Method: http.MethodGet, Path: "/free", Handler: roomHandler.GetFreeRooms},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
