package crypto

import "strings"

// DefaultShift is the Caesar shift used when the caller does not pick one.
const DefaultShift = 3

// Caesar rotates every letter of the normalized message by shift positions,
// or back by shift positions when encrypt is false. Any shift is accepted.
func Caesar(message string, shift int, encrypt bool) string {
	// reduce before negating so math.MinInt still round-trips
	shift = Mod(shift, AlphabetSize)
	if !encrypt {
		shift = -shift
	}

	normalized := Normalize(message)

	var builder strings.Builder
	builder.Grow(len(normalized))
	for _, char := range normalized {
		index := position(char)
		if index == -1 {
			builder.WriteRune(char)
			continue
		}
		// C = (P + K) mod 26
		builder.WriteByte(Alphabet[Mod(index+shift, AlphabetSize)])
	}
	return builder.String()
}
