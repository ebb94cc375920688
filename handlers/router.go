package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the cipher API routes behind CORS and request-ID middleware
func NewRouter(cipherHandler *CipherHandler, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	router.Use(cors.New(config))
	router.Use(RequestID())

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		ciphers := api.Group("/ciphers")
		{
			ciphers.GET("", cipherHandler.ListMethods)
			ciphers.GET("/:method", cipherHandler.DescribeMethod)
			ciphers.POST("/caesar", cipherHandler.Caesar)
			ciphers.POST("/vigenere", cipherHandler.Vigenere)
			ciphers.POST("/transposition", cipherHandler.Transposition)
			ciphers.POST("/atbash", cipherHandler.Atbash)
		}
	}

	return router
}
