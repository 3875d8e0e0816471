package middleware

import (
	"log"

	"github.com/LovationAdmin/calc-api/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        86400,
	}

	if cfg.AllowAll {
		log.Printf("🌍 CORS: Allowing all origins")
		corsConfig.AllowAllOrigins = true
	} else {
		log.Printf("🌍 CORS: Allowing origins:")
		for _, origin := range cfg.AllowedOrigins {
			log.Printf("   - %s", origin)
		}
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	return cors.New(corsConfig)
}
