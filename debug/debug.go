package debug

import (
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Gen    bool
	Synth  bool
	Render bool
	RPC    bool
}

var (
	d   *debug
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Gen = boolEnv("ELOGIC_DEBUG_GEN")
	d.Synth = boolEnv("ELOGIC_DEBUG_SYNTH")
	d.Render = boolEnv("ELOGIC_DEBUG_RENDER")
	d.RPC = boolEnv("ELOGIC_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Gen() bool {
	return d.Gen
}
func Synth() bool {
	return d.Synth
}
func Render() bool {
	return d.Render
}
func RPC() bool {
	return d.RPC
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}
