package crypto

import (
	"cmp"
	"slices"
	"strings"
)

// PaddingChar fills the trailing cells of the last grid row on encryption.
// It is a regular letter, so a message that really ends in X cannot be told
// apart from padding after decryption.
const PaddingChar = 'X'

// Transposition runs columnar transposition in the requested direction.
func Transposition(message, key string, encrypt bool) (string, error) {
	if encrypt {
		return EncryptTransposition(message, key)
	}
	return DecryptTransposition(message, key)
}

// EncryptTransposition writes the letters of message row by row into a grid
// as wide as the key, pads the last row with X, and reads the columns back in
// alphabetical key order. Spaces, digits and punctuation are dropped.
func EncryptTransposition(message, key string) (string, error) {
	cleanMessage, cleanKey, err := prepareTransposition(message, key)
	if err != nil {
		return "", err
	}

	columns := len(cleanKey)
	rows := gridRows(len(cleanMessage), columns)

	grid := newGrid(rows, columns)
	k := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if k < len(cleanMessage) {
				grid[row][col] = cleanMessage[k]
				k++
			} else {
				grid[row][col] = PaddingChar
			}
		}
	}

	var builder strings.Builder
	builder.Grow(rows * columns)
	for _, col := range ColumnOrder(cleanKey) {
		for row := 0; row < rows; row++ {
			builder.WriteByte(grid[row][col])
		}
	}
	return builder.String(), nil
}

// DecryptTransposition reverses EncryptTransposition. The grid is sized from
// the cipher text and filled column by column in key order; cells past the
// end of the input stay empty and are skipped when reading rows back.
// Padding added on encryption is returned as trailing X letters.
func DecryptTransposition(cipherText, key string) (string, error) {
	cleanText, cleanKey, err := prepareTransposition(cipherText, key)
	if err != nil {
		return "", err
	}

	columns := len(cleanKey)
	rows := gridRows(len(cleanText), columns)

	grid := newGrid(rows, columns)
	k := 0
	for _, col := range ColumnOrder(cleanKey) {
		for row := 0; row < rows; row++ {
			if k < len(cleanText) {
				grid[row][col] = cleanText[k]
				k++
			}
		}
	}

	var builder strings.Builder
	builder.Grow(len(cleanText))
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if cell := grid[row][col]; cell != 0 {
				builder.WriteByte(cell)
			}
		}
	}
	return builder.String(), nil
}

// ColumnOrder returns the column indices of key sorted by key letter. Equal
// letters keep their left-to-right order. key is expected to be letters only.
func ColumnOrder(key string) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(key[a], key[b])
	})
	return order
}

func prepareTransposition(text, key string) (string, string, error) {
	cleanKey := LettersOnly(key)
	if cleanKey == "" {
		return "", "", &KeyError{Cipher: MethodTransposition}
	}
	return LettersOnly(text), cleanKey, nil
}

func gridRows(length, columns int) int {
	return (length + columns - 1) / columns
}

func newGrid(rows, columns int) [][]byte {
	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = make([]byte, columns)
	}
	return grid
}
