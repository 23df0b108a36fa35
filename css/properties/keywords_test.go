package properties

import (
	"fmt"
	"testing"

	"github.com/benoitkugler/rstyle/utils/testutils"
)

// checkKeywords asserts that every keyword in [table] parses back to its value.
func checkKeywords[T interface {
	~uint8
	fmt.Stringer
}](t *testing.T, table []string, parse func(string) (T, bool)) {
	t.Helper()
	for i, kw := range table {
		v, ok := parse(kw)
		if !ok {
			t.Fatalf("keyword %s not recognized", kw)
		}
		if int(v) != i || v.String() != kw {
			t.Fatalf("unexpected value for %s: %d (%s)", kw, v, v)
		}
	}
}

func TestKeywords(t *testing.T) {
	checkKeywords(t, displayKeywords[:], ParseDisplay)
	checkKeywords(t, positionKeywords[:], ParsePosition)
	checkKeywords(t, floatKeywords[:], ParseFloat)
	checkKeywords(t, clearKeywords[:], ParseClear)
	checkKeywords(t, overflowKeywords[:], ParseOverflow)
	checkKeywords(t, visibilityKeywords[:], ParseVisibility)
	checkKeywords(t, fontStyleKeywords[:], ParseFontStyle)
	checkKeywords(t, fontWeightKeywords[:], ParseFontWeight)
	checkKeywords(t, textAlignKeywords[:], ParseTextAlign)
	checkKeywords(t, textDecorationKeywords[:], ParseTextDecoration)
	checkKeywords(t, textTransformKeywords[:], ParseTextTransform)
	checkKeywords(t, whiteSpaceKeywords[:], ParseWhiteSpace)
	checkKeywords(t, dragKeywords[:], ParseDrag)
	checkKeywords(t, tabIndexKeywords[:], ParseTabIndex)
	checkKeywords(t, focusKeywords[:], ParseFocus)
	checkKeywords(t, pointerEventsKeywords[:], ParsePointerEvents)
	checkKeywords(t, originXKeywords[:], ParseOriginX)
	checkKeywords(t, originYKeywords[:], ParseOriginY)
}

func TestKeywordsCase(t *testing.T) {
	if d, ok := ParseDisplay("Inline-Block"); !ok || d != DisplayInlineBlock {
		t.Fatalf("unexpected display %s", d)
	}
	if w, ok := ParseWhiteSpace("PRE-WRAP"); !ok || w != WhiteSpacePrewrap {
		t.Fatalf("unexpected white-space %s", w)
	}
}

func TestUnknownKeyword(t *testing.T) {
	logs := testutils.CaptureLogs()
	if _, ok := ParseDisplay("flex"); ok {
		t.Fatal("flex is not supported")
	}
	if _, ok := ParseOverflow(""); ok {
		t.Fatal("empty keyword")
	}
	logs.CheckEqual([]string{
		`Ignored unknown keyword "flex" for display`,
		`Ignored unknown keyword "" for overflow`,
	}, t)
}

func TestInvalidKeywordString(t *testing.T) {
	testutils.AssertEqual(t, Display(12).String(), "<invalid keyword>")
}

func TestOriginPercentage(t *testing.T) {
	testutils.AssertEqual(t, OriginXLeft.Percentage(), NewLP(LPPercentage, 0))
	testutils.AssertEqual(t, OriginXCenter.Percentage(), NewLP(LPPercentage, 50))
	testutils.AssertEqual(t, OriginXRight.Percentage(), NewLP(LPPercentage, 100))
	testutils.AssertEqual(t, OriginYBottom.Percentage(), NewLP(LPPercentage, 100))
}
