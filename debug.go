package glide

import (
	"fmt"
	"io"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLog receives warnings from node operations. Scene.SetDebugMode points
// it at the scene Animator's log writer.
var debugLog io.Writer = os.Stderr

// logf writes one "[glide]"-prefixed line to the animator's log writer.
func (a *Animator) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.log, "[glide] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("glide debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth past which Scene debug mode warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugLog, "[glide] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// targetName renders a tween target for log lines.
func targetName(t any) string {
	switch v := t.(type) {
	case nil:
		return "<nil>"
	case *Node:
		if v == nil {
			return "<nil>"
		}
		return fmt.Sprintf("node %q", v.Name)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", t)
	}
}
