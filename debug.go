package flexui

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	eventTime     time.Duration
	preUpdateTime time.Duration
	updateTime    time.Duration
	drawTime      time.Duration
	overlayTime   time.Duration
	submitTime    time.Duration
	nodeCount     int
	commandCount  int
	batchCount    int
	vertexCount   int
	drawCallCount int
}

// debugLog prints timing and draw stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.eventTime + stats.preUpdateTime + stats.updateTime +
		stats.drawTime + stats.overlayTime + stats.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[flexui] event: %v | preUpdate: %v | update: %v | draw: %v | overlay: %v | submit: %v | total: %v\n",
		stats.eventTime, stats.preUpdateTime, stats.updateTime,
		stats.drawTime, stats.overlayTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[flexui] nodes: %d | commands: %d | batches: %d | vertices: %d | draw calls: %d\n",
		stats.nodeCount, stats.commandCount, stats.batchCount, stats.vertexCount, stats.drawCallCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("flexui debug: %s on disposed node %q", op, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[flexui] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.ID)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[flexui] warning: node %q has %d children (threshold %d)\n",
			n.ID, len(n.children), debugMaxChildCount)
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
