// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"cipher-backend/crypto"
	"cipher-backend/models"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct{}

func NewCipherHandler() *CipherHandler {
	return &CipherHandler{}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) ListMethods(c *gin.Context) {
	methods := make([]models.MethodInfo, 0, len(crypto.Methods()))
	for _, m := range crypto.Methods() {
		methods = append(methods, methodInfo(m))
	}
	c.JSON(http.StatusOK, models.MethodsResponse{Success: true, Methods: methods})
}

func (h *CipherHandler) DescribeMethod(c *gin.Context) {
	method, err := crypto.ParseMethod(c.Param("method"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.CipherResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, models.MethodResponse{Success: true, Method: methodInfo(method)})
}

func (h *CipherHandler) Caesar(c *gin.Context) {
	var req models.CaesarRequest
	if !bindRequest(c, &req) {
		return
	}

	if req.Message == "" {
		badRequest(c, "Message is required")
		return
	}

	shift := crypto.DefaultShift
	if req.Shift != nil {
		shift = *req.Shift
	}

	encrypt := models.IsEncrypt(req.Direction)
	result := crypto.Caesar(req.Message, shift, encrypt)
	respondResult(c, crypto.MethodCaesar, encrypt, result)
}

func (h *CipherHandler) Vigenere(c *gin.Context) {
	h.runKeyword(c, crypto.MethodVigenere, crypto.Vigenere)
}

func (h *CipherHandler) Transposition(c *gin.Context) {
	h.runKeyword(c, crypto.MethodTransposition, crypto.Transposition)
}

func (h *CipherHandler) Atbash(c *gin.Context) {
	var req models.AtbashRequest
	if !bindRequest(c, &req) {
		return
	}

	if req.Message == "" {
		badRequest(c, "Message is required")
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Cipher:  crypto.MethodAtbash.String(),
		Result:  crypto.Atbash(req.Message),
	})
}

type keywordCipher func(message, key string, encrypt bool) (string, error)

func (h *CipherHandler) runKeyword(c *gin.Context, method crypto.Method, run keywordCipher) {
	var req models.KeywordRequest
	if !bindRequest(c, &req) {
		return
	}

	if req.Message == "" || req.Key == "" {
		badRequest(c, "Message and key are required")
		return
	}

	encrypt := models.IsEncrypt(req.Direction)
	result, err := run(req.Message, req.Key, encrypt)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidKey) {
			badRequest(c, fmt.Sprintf("Invalid key: %v", err))
			return
		}
		log.Printf("[%s] %s failed: %v", requestID(c), method, err)
		c.JSON(http.StatusInternalServerError, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to run %s: %v", method, err),
		})
		return
	}

	respondResult(c, method, encrypt, result)
}

func methodInfo(m crypto.Method) models.MethodInfo {
	return models.MethodInfo{
		Name:       m.String(),
		NeedsKey:   m.NeedsKey(),
		Reversible: m.Reversible(),
	}
}

func bindRequest(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, fmt.Sprintf("Invalid request: %v", err))
		return false
	}
	return true
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.CipherResponse{
		Success: false,
		Message: message,
	})
}

func respondResult(c *gin.Context, method crypto.Method, encrypt bool, result string) {
	c.JSON(http.StatusOK, models.CipherResponse{
		Success:   true,
		Cipher:    method.String(),
		Direction: models.DirectionName(encrypt),
		Result:    result,
	})
}
