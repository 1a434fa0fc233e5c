package pointio

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/closestpair/closestpair"
)

// DefaultPrecision is the number of decimals printed for coordinates and
// distances.
const DefaultPrecision = 6

// InsufficientMessage is printed instead of a pair for fewer than two points.
const InsufficientMessage = "Need at least two points."

// Report is everything the result sink prints for one run.
type Report struct {
	Pair        closestpair.Pair
	Count       int           // number of input points
	Source      string        // file name or generator description; optional
	Fingerprint uint64        // input hash from Fingerprint; 0 omits the row
	Elapsed     time.Duration // solve time; 0 omits the row
}

// WriteReport renders rep to w with the given number of decimals
// (negative selects DefaultPrecision):
//
//	Closest points:
//	  P1 = (x, y)
//	  P2 = (x, y)
//	Distance: d
//
//	Points:  1,234
//	Source:  points.txt
//
// The summary block is aligned by display width.
func WriteReport(w io.Writer, rep Report, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	p := message.NewPrinter(language.English)

	var b strings.Builder
	if rep.Pair.Valid() {
		coord := func(pt closestpair.Point) string {
			return fmt.Sprintf("(%.*f, %.*f)", precision, pt.X, precision, pt.Y)
		}
		b.WriteString("Closest points:\n")
		fmt.Fprintf(&b, "  P1 = %s\n", coord(rep.Pair.A))
		fmt.Fprintf(&b, "  P2 = %s\n", coord(rep.Pair.B))
		fmt.Fprintf(&b, "Distance: %.*f\n", precision, rep.Pair.Dist)
	} else {
		b.WriteString(InsufficientMessage + "\n")
	}

	rows := [][2]string{{"Points:", p.Sprintf("%d", rep.Count)}}
	if rep.Source != "" {
		rows = append(rows, [2]string{"Source:", rep.Source})
	}
	if rep.Fingerprint != 0 {
		rows = append(rows, [2]string{"Input:", fmt.Sprintf("%016x", rep.Fingerprint)})
	}
	if rep.Elapsed > 0 {
		rows = append(rows, [2]string{"Elapsed:", rep.Elapsed.String()})
	}
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}
	b.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", runewidth.FillRight(r[0], width), r[1])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Fingerprint returns an order-sensitive structural hash of points, used to
// correlate runs over the same input in logs and reports.
func Fingerprint(points []closestpair.Point) (uint64, error) {
	h, err := hashstructure.Hash(points, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("pointio: fingerprint: %w", err)
	}
	return h, nil
}
