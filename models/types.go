// Package models contain needed models
package models

const (
	DirectionEncrypt = "encrypt"
	DirectionDecrypt = "decrypt"
)

// CaesarRequest represents the request for the Caesar shift cipher.
// Shift defaults to 3 when omitted.
type CaesarRequest struct {
	Message   string `json:"message"`
	Shift     *int   `json:"shift"`
	Direction string `json:"direction" binding:"omitempty,oneof=encrypt decrypt"`
}

// KeywordRequest represents the request for keyword ciphers (Vigenère and
// columnar transposition)
type KeywordRequest struct {
	Message   string `json:"message"`
	Key       string `json:"key"`
	Direction string `json:"direction" binding:"omitempty,oneof=encrypt decrypt"`
}

// AtbashRequest represents the request for Atbash, which has no key or direction
type AtbashRequest struct {
	Message string `json:"message"`
}

// CipherResponse represents the response after running a cipher
type CipherResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Cipher    string `json:"cipher,omitempty"`
	Direction string `json:"direction,omitempty"`
	Result    string `json:"result"`
}

// MethodInfo describes one supported cipher
type MethodInfo struct {
	Name       string `json:"name"`
	NeedsKey   bool   `json:"needs_key"`
	Reversible bool   `json:"reversible"`
}

// MethodResponse describes a single cipher
type MethodResponse struct {
	Success bool       `json:"success"`
	Method  MethodInfo `json:"method"`
}

// MethodsResponse lists the supported ciphers
type MethodsResponse struct {
	Success bool         `json:"success"`
	Methods []MethodInfo `json:"methods"`
}

// IsEncrypt reports whether direction asks for encryption. An empty
// direction means encrypt.
func IsEncrypt(direction string) bool {
	return direction != DirectionDecrypt
}

// DirectionName returns the canonical direction label.
func DirectionName(encrypt bool) string {
	if encrypt {
		return DirectionEncrypt
	}
	return DirectionDecrypt
}
