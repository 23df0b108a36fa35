package properties

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

// Apply returns [s] transformed according to [tt], using
// the casing rules of [lang].
func (tt TextTransform) Apply(s string, lang language.Tag) string {
	switch tt {
	case TextTransformCapitalize:
		// only the first letter of each word is changed
		return cases.Title(lang, cases.NoLower).String(s)
	case TextTransformUppercase:
		return cases.Upper(lang).String(s)
	case TextTransformLowercase:
		return cases.Lower(lang).String(s)
	default:
		return s
	}
}

// DefaultCharset is used when the font-charset property is empty.
const DefaultCharset = "U+0020-007E"

// ParseCharset decodes a font-charset value, a comma separated list of
// unicode ranges like 'U+0020-007E, U+00A0-00FF' or single code points 'U+20AC'.
// An empty string is interpreted as [DefaultCharset].
func ParseCharset(charset string) (*unicode.RangeTable, error) {
	if strings.TrimSpace(charset) == "" {
		charset = DefaultCharset
	}
	var tables []*unicode.RangeTable
	for _, chunk := range strings.Split(charset, ",") {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) < 3 || !strings.EqualFold(chunk[:2], "U+") {
			return nil, fmt.Errorf("invalid unicode range %q", chunk)
		}
		bounds := strings.SplitN(chunk[2:], "-", 2)
		lo, err := parseCodePoint(bounds[0])
		if err != nil {
			return nil, err
		}
		hi := lo
		if len(bounds) == 2 {
			hi, err = parseCodePoint(bounds[1])
			if err != nil {
				return nil, err
			}
		}
		if hi < lo {
			return nil, fmt.Errorf("invalid unicode range %q: empty interval", chunk)
		}
		tables = append(tables, newRangeTable(lo, hi))
	}
	return rangetable.Merge(tables...), nil
}

func parseCodePoint(s string) (rune, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %s", s, err)
	}
	if v > unicode.MaxRune {
		return 0, fmt.Errorf("invalid code point %q: out of range", s)
	}
	return rune(v), nil
}

func newRangeTable(lo, hi rune) *unicode.RangeTable {
	if hi <= 0xFFFF {
		return &unicode.RangeTable{R16: []unicode.Range16{{Lo: uint16(lo), Hi: uint16(hi), Stride: 1}}}
	}
	if lo > 0xFFFF {
		return &unicode.RangeTable{R32: []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}}}
	}
	return &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: uint16(lo), Hi: 0xFFFF, Stride: 1}},
		R32: []unicode.Range32{{Lo: 0x10000, Hi: uint32(hi), Stride: 1}},
	}
}
