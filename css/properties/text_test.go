package properties

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTextTransform(t *testing.T) {
	tests := []struct {
		tt       TextTransform
		in, exp  string
		language language.Tag
	}{
		{TextTransformNone, "hello World", "hello World", language.English},
		{TextTransformUppercase, "hello World", "HELLO WORLD", language.English},
		{TextTransformLowercase, "hello World", "hello world", language.English},
		{TextTransformCapitalize, "hello wORLD", "Hello WORLD", language.English},
		{TextTransformUppercase, "istanbul", "İSTANBUL", language.Turkish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.exp, tt.tt.Apply(tt.in, tt.language))
	}

	cv := NewComputedValues()
	cv.TextTransform = TextTransformUppercase
	assert.Equal(t, "ABC", cv.ApplyTextTransform("abc", language.Und))
}

func TestParseCharset(t *testing.T) {
	table, err := ParseCharset("")
	require.NoError(t, err)
	assert.True(t, unicode.Is(table, 'a'))
	assert.True(t, unicode.Is(table, ' '))
	assert.False(t, unicode.Is(table, 'é'))

	table, err = ParseCharset("U+0020-007E, u+00A0-00FF, U+20AC, U+1F600-1F64F")
	require.NoError(t, err)
	for _, r := range []rune{'a', 'é', '€', '😀'} {
		assert.True(t, unicode.Is(table, r), string(r))
	}
	assert.False(t, unicode.Is(table, 'Ā'))

	// ranges crossing the 16 bits boundary
	table, err = ParseCharset("U+FFF0-10010")
	require.NoError(t, err)
	assert.True(t, unicode.Is(table, 0xFFFF))
	assert.True(t, unicode.Is(table, 0x10005))
	assert.False(t, unicode.Is(table, 0x10011))

	for _, invalid := range []string{"0020-007E", "U+", "U+zz", "U+0050-0040", "U+110000"} {
		_, err = ParseCharset(invalid)
		assert.Error(t, err, invalid)
	}

	cv := NewComputedValues()
	cv.FontCharset = "U+0041"
	table, err = cv.FontCharsetTable()
	require.NoError(t, err)
	assert.True(t, unicode.Is(table, 'A'))
	assert.False(t, unicode.Is(table, 'B'))
}
