// Package pointio reads point sets from text and writes closest-pair reports.
//
// Input format:
//
//	Whitespace- or comma-separated decimal numbers consumed two at a time as
//	(x, y). Line breaks carry no meaning, so "1 2 3 4" and "1 2\n3 4" are the
//	same two points. Everything after '#' on a line is a comment. A leading
//	UTF-8 or UTF-16 byte-order mark is honoured.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	bom "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/katalvlaran/closestpair/closestpair"
)

// DefaultFile is the points file read when no path is given.
const DefaultFile = "points.txt"

// Read parses points from r.
//
// Errors:
//   - *ParseError (matches ErrSyntax) - a token is not a number.
//   - ErrOddCoordinate                 - an odd count of numbers was read.
//   - any error returned by r.
func Read(r io.Reader) ([]closestpair.Point, error) {
	br := bufio.NewReader(transform.NewReader(r, bom.BOMOverride(bom.UTF8.NewDecoder())))

	var (
		pts     []closestpair.Point
		pending float64
		haveX   bool
		line    int
	)
	// Lines are unbounded; a whole point set may sit on one line.
	for {
		text, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, fmt.Errorf("pointio: read: %w", rerr)
		}
		if text != "" {
			line++
		}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, tok := range strings.FieldsFunc(text, isSeparator) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Token: tok, Err: err}
			}
			if !haveX {
				pending, haveX = v, true
				continue
			}
			pts = append(pts, closestpair.Point{X: pending, Y: v})
			haveX = false
		}
		if rerr == io.EOF {
			break
		}
	}
	if haveX {
		return nil, fmt.Errorf("%w (line %d)", ErrOddCoordinate, line)
	}
	return pts, nil
}

// ReadFile opens path and parses its points with Read.
func ReadFile(path string) ([]closestpair.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
