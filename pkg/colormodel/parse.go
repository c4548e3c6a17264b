package colormodel

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"

	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Parser turns a colour token into a Color. Every string-accepting entry
// point in the palette packages goes through a Parser, so callers can swap in
// a different colour grammar.
type Parser interface {
	Parse(token string) (Color, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(token string) (Color, error)

// Parse implements Parser.
func (f ParserFunc) Parse(token string) (Color, error) {
	return f(token)
}

// CSSParser understands the CSS colour syntax handled by csscolorparser: hex
// notation (the leading # is optional for 6 and 8 digits), rgb()/rgba(),
// hsl()/hsla(), hwb() and the CSS named colours. Function arguments must be
// finite numbers with an optional unit. Failures are reported as errors
// matching palerrors.ErrInvalidColor.
type CSSParser struct{}

var errEmptyToken = errors.New("empty color")

// Parse implements Parser.
func (CSSParser) Parse(token string) (Color, error) {
	c, err := parseCSS(token)
	if err != nil {
		return Color{}, palerrors.NewColorError(token, err)
	}
	return c, nil
}

// Parse parses a colour token with the CSS parser.
func Parse(token string) (Color, error) {
	return CSSParser{}.Parse(token)
}

// MustParse is like Parse but panics on error. It is meant for package level
// tables of known-good colours.
func MustParse(token string) Color {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBStr parses token and returns its rounded channels as "r,g,b".
func RGBStr(token string) (string, error) {
	c, err := Parse(token)
	if err != nil {
		return "", err
	}
	return c.RGBStr(), nil
}

func parseCSS(token string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	if s == "" {
		return Color{}, errEmptyToken
	}

	if (len(s) == 6 || len(s) == 8) && isHex(s) {
		s = "#" + s
	}
	if strings.ContainsRune(s, '(') {
		if err := checkArguments(s); err != nil {
			return Color{}, err
		}
	}

	parsed, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, err
	}
	for _, v := range []float64{parsed.R, parsed.G, parsed.B, parsed.A} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, fmt.Errorf("color has non-finite components")
		}
	}
	return RGBA(snap(parsed.R*255), snap(parsed.G*255), snap(parsed.B*255), parsed.A), nil
}

// argumentRegex matches one numeric argument of a colour function.
var argumentRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([e][+-]?\d+)?(%|deg|grad|rad|turn)?$`)

// checkArguments rejects function notations whose arguments are empty,
// non-numeric or non-finite, which the grammar would otherwise skip over.
func checkArguments(s string) error {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") || strings.Count(s, "(") != 1 || strings.Count(s, ")") != 1 {
		return fmt.Errorf("malformed function notation")
	}

	body := s[open+1 : len(s)-1]
	if strings.Count(body, "/") > 1 {
		return fmt.Errorf("more than one alpha separator")
	}

	for _, group := range strings.Split(strings.ReplaceAll(body, "/", ","), ",") {
		fields := strings.Fields(group)
		if len(fields) == 0 {
			return fmt.Errorf("empty argument in %q", s)
		}
		for _, field := range fields {
			if !argumentRegex.MatchString(field) {
				return fmt.Errorf("invalid argument %q", field)
			}
		}
	}
	return nil
}

// snap removes the float noise of the 0-1 to 0-255 round trip so integral
// channels stay integral.
func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
