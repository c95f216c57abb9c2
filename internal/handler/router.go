package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"clinic-booking/internal/handler/api"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	slotHandler *api.SlotHandler,
	directoryHandler *api.DirectoryHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, slotHandler, directoryHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	slotHandler *api.SlotHandler,
	directoryHandler *api.DirectoryHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodDelete, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateStatus},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: bookingHandler.ListByUser},
				{Method: http.MethodGet, Path: "/:id/bookings/upcoming", Handler: bookingHandler.ListUpcoming},
				{Method: http.MethodGet, Path: "/:id/bookings/past", Handler: bookingHandler.ListPast},
			})
		}

		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodPost, Path: "", Handler: slotHandler.Create},
				{Method: http.MethodPost, Path: "/bulk", Handler: slotHandler.CreateBulk},
				{Method: http.MethodGet, Path: "", Handler: slotHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: slotHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/availability", Handler: slotHandler.SetAvailability},
			})
		}

		doctors := apiGroup.Group("/doctors")
		{
			addRoutes(doctors, []route{
				{Method: http.MethodGet, Path: "", Handler: directoryHandler.ListDoctors},
				{Method: http.MethodGet, Path: "/:id", Handler: directoryHandler.GetDoctor},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: slotHandler.ListByDoctor},
			})
		}

		hospitals := apiGroup.Group("/hospitals")
		{
			addRoutes(hospitals, []route{
				{Method: http.MethodGet, Path: "", Handler: directoryHandler.ListHospitals},
				{Method: http.MethodGet, Path: "/:id", Handler: directoryHandler.GetHospital},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
