package crypto

import "strings"

// Vigenere encrypts or decrypts message with a keyword. The keyword is
// reduced to its letters; a keyword without letters yields a *KeyError.
// Only letters of the message consume key positions.
func Vigenere(message, key string, encrypt bool) (string, error) {
	cleanKey := LettersOnly(key)
	if cleanKey == "" {
		return "", &KeyError{Cipher: MethodVigenere}
	}

	normalized := Normalize(message)

	var builder strings.Builder
	builder.Grow(len(normalized))
	keyIndex := 0
	for _, char := range normalized {
		keyIndex = vigenereStep(&builder, char, cleanKey, keyIndex, encrypt)
	}
	return builder.String(), nil
}

// vigenereStep writes the substitution for char and returns the key index to
// use for the next character.
func vigenereStep(builder *strings.Builder, char rune, key string, keyIndex int, encrypt bool) int {
	index := position(char)
	if index == -1 {
		builder.WriteRune(char)
		return keyIndex
	}

	shift := int(key[keyIndex%len(key)] - 'A')
	if !encrypt {
		shift = -shift
	}
	builder.WriteByte(Alphabet[Mod(index+shift, AlphabetSize)])
	return keyIndex + 1
}

// ValidateKey reports whether key can drive the given cipher. Methods that
// take no keyword, or an integer shift, accept anything here.
func ValidateKey(method Method, key string) error {
	if method != MethodVigenere && method != MethodTransposition {
		return nil
	}
	if LettersOnly(key) == "" {
		return &KeyError{Cipher: method}
	}
	return nil
}
