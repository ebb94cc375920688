package main

import (
	"log"

	"cipher-backend/config"
	"cipher-backend/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := handlers.NewRouter(handlers.NewCipherHandler(), cfg.AllowedOrigins)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Allowed origins: %v", cfg.AllowedOrigins)
	log.Printf("API endpoints:")
	log.Printf("  GET  /api/v1/health                - Health check")
	log.Printf("  GET  /api/v1/ciphers               - List supported ciphers")
	log.Printf("  GET  /api/v1/ciphers/:method       - Describe one cipher")
	log.Printf("  POST /api/v1/ciphers/caesar        - Caesar shift (message, shift, direction)")
	log.Printf("  POST /api/v1/ciphers/vigenere      - Vigenère (message, key, direction)")
	log.Printf("  POST /api/v1/ciphers/transposition - Columnar transposition (message, key, direction)")
	log.Printf("  POST /api/v1/ciphers/atbash        - Atbash (message)")

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
