package encode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var ErrBadColor = errors.New("bad color")

type Colors struct {
	Default func(string) string

	mu  sync.Mutex
	Map map[string]func(string) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map:     map[string]func(string) string{},
	}
}

var defaultColors = NewColors()

// DefaultColors returns the process wide palette.
func DefaultColors() *Colors {
	return defaultColors
}

func colorDefault(v string) string { return v }

// Color paints s with the color named by hex. An empty or malformed hex
// leaves s unchanged.
func (c *Colors) Color(hex, s string) string {
	return c.Get(hex)(s)
}

func (c *Colors) Get(hex string) func(string) string {
	if hex == "" {
		return c.Default
	}
	key := strings.ToLower(hex)
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.Map[key]; ok {
		return f
	}
	r, g, b, err := ParseHex(key)
	if err != nil {
		c.Map[key] = c.Default
		return c.Default
	}
	col := color.RGB(r, g, b)
	col.EnableColor()
	f := col.SprintFunc()
	res := func(v string) string { return f(v) }
	c.Map[key] = res
	return res
}

// ParseHex decodes "#rrggbb" into its components.
func ParseHex(hex string) (r, g, b int, err error) {
	v, ok := strings.CutPrefix(hex, "#")
	if !ok || len(v) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	return int(n >> 16 & 0xff), int(n >> 8 & 0xff), int(n & 0xff), nil
}
