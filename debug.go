package thicket

import (
	"fmt"
	"os"
	"time"
)

// globalDebug mirrors the most recently set GUI debug flag so that tree
// operations (which lack a GUI pointer) can check it cheaply. Only valid
// with a single GUI; multiple GUIs with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool

// debugStats holds per-frame timing and draw metrics.
// Only populated when GUI.debug is true.
type debugStats struct {
	layoutTime   time.Duration
	paintTime    time.Duration
	commandCount int
	fillCount    int
	textureCount int
	textCount    int
}

// debugLog prints timing and draw stats to stderr.
func (g *GUI) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[thicket] layout: %v | paint: %v | total: %v\n",
		stats.layoutTime, stats.paintTime, stats.layoutTime+stats.paintTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[thicket] commands: %d | fills: %d | textures: %d | text: %d\n",
		stats.commandCount, stats.fillCount, stats.textureCount, stats.textCount)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w Widget) {
	depth := Depth(w) + 1
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[thicket] warning: tree depth %d exceeds %d (widget %d)\n",
			depth, debugMaxTreeDepth, w.base().ID())
	}
}

// debugCheckChildCount warns on stderr if a panel has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(p *BasePanel) {
	if len(p.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[thicket] warning: panel %d has %d children (threshold %d)\n",
			p.ID(), len(p.children), debugMaxChildCount)
	}
}
