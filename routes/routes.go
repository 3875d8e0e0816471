package routes

import (
	"net/http"

	"github.com/LovationAdmin/calc-api/config"
	"github.com/LovationAdmin/calc-api/handlers"
	"github.com/LovationAdmin/calc-api/middleware"
	"github.com/LovationAdmin/calc-api/services"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// NewRouter wires every route against the registry. The registry and handlers
// are built here once and never modified while serving.
func NewRouter(cfg *config.Config, registry *services.Registry, ws *handlers.WSHandler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MaxBody(cfg.MaxBodyBytes))

	root := router.Group("/")
	{
		SetupCalcRoutes(root, registry)
		SetupWSRoutes(root, ws)
		SetupHealthRoutes(root)
	}

	return router
}

// SetupCalcRoutes maps POST /calc/<name> to each registered calculator.
func SetupCalcRoutes(rg *gin.RouterGroup, registry *services.Registry) {
	h := handlers.NewCalcHandler(registry)

	rg.GET("/calc", h.List)
	for _, name := range registry.Names() {
		rg.POST("/calc/"+name, h.Calculate(name))
	}
}

func SetupWSRoutes(rg *gin.RouterGroup, ws *handlers.WSHandler) {
	rg.GET("/ws/calc", ws.HandleWS)
}

func SetupHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})
}
