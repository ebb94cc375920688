package crypto

import "strings"

// Atbash mirrors each letter of the normalized message (A<->Z, B<->Y, ...).
// Applying it twice gives back the normalized message.
func Atbash(message string) string {
	normalized := Normalize(message)

	var builder strings.Builder
	builder.Grow(len(normalized))
	for _, char := range normalized {
		if index := position(char); index != -1 {
			builder.WriteByte(ReverseAlphabet[index])
			continue
		}
		builder.WriteRune(char)
	}
	return builder.String()
}
