package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

// Method names one of the supported ciphers.
type Method string

const (
	MethodCaesar        Method = "caesar"
	MethodVigenere      Method = "vigenere"
	MethodTransposition Method = "transposition"
	MethodAtbash        Method = "atbash"
)

// Methods lists the supported ciphers in display order.
func Methods() []Method {
	return []Method{MethodCaesar, MethodVigenere, MethodTransposition, MethodAtbash}
}

// ParseMethod resolves a cipher name, ignoring case and surrounding spaces.
func ParseMethod(name string) (Method, error) {
	method := Method(strings.ToLower(strings.TrimSpace(name)))
	for _, m := range Methods() {
		if m == method {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// NeedsKey reports whether the cipher takes a keyword.
func (m Method) NeedsKey() bool {
	return m == MethodVigenere || m == MethodTransposition
}

// Reversible reports whether the cipher distinguishes encryption from
// decryption. Atbash is its own inverse.
func (m Method) Reversible() bool {
	return m != MethodAtbash
}

func (m Method) String() string {
	return string(m)
}

// Apply runs method over message. For Caesar the key is the shift as a
// decimal integer (DefaultShift when blank); Atbash ignores key and encrypt.
func Apply(method Method, message, key string, encrypt bool) (string, error) {
	switch method {
	case MethodCaesar:
		shift, err := ParseShift(key)
		if err != nil {
			return "", err
		}
		return Caesar(message, shift, encrypt), nil
	case MethodVigenere:
		return Vigenere(message, key, encrypt)
	case MethodTransposition:
		return Transposition(message, key, encrypt)
	case MethodAtbash:
		return Atbash(message), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, string(method))
	}
}

// ParseShift reads a Caesar shift. A blank value gives DefaultShift.
func ParseShift(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultShift, nil
	}
	shift, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShift, value)
	}
	return shift, nil
}
