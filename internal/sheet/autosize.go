package sheet

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ErrColumnNotTracked is returned when sizing a column Initialize did not track.
var ErrColumnNotTracked = errors.New("column not tracked for auto-sizing")

const (
	widthPadding = 2
	minWidth     = 8.43 // Excel's default column width
	maxWidth     = 255
)

// columnWidths records the widest value written to each tracked column.
type columnWidths struct {
	widest map[int]int
}

func newColumnWidths() *columnWidths {
	return &columnWidths{widest: make(map[int]int)}
}

func (c *columnWidths) track(col int) {
	if _, ok := c.widest[col]; !ok {
		c.widest[col] = 0
	}
}

func (c *columnWidths) observe(col int, value string) {
	current, ok := c.widest[col]
	if !ok {
		return
	}
	if w := runewidth.StringWidth(value); w > current {
		c.widest[col] = w
	}
}

func (c *columnWidths) width(col int) (float64, error) {
	widest, ok := c.widest[col]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrColumnNotTracked, col)
	}
	width := float64(widest + widthPadding)
	return min(max(width, minWidth), maxWidth), nil
}
