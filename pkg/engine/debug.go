// pkg/engine/debug.go
package engine

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// DumpTree renders the element hierarchy with each element's classes and
// assigned style rules, for debugging selector issues.
func (e *Engine) DumpTree() string {
	root := treeprint.New()
	for _, ent := range e.tree.Roots() {
		e.dumpNode(root, ent)
	}
	return root.String()
}

func (e *Engine) dumpNode(branch treeprint.Tree, ent Entity) {
	child := branch.AddBranch(e.describe(ent))
	for _, c := range e.tree.Children(ent) {
		e.dumpNode(child, c)
	}
}

func (e *Engine) describe(ent Entity) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d", ent)
	n, ok := e.nodes[ent]
	if !ok {
		return sb.String()
	}
	for _, class := range e.Classes(ent) {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	if len(n.handles) > 0 {
		names := make([]string, len(n.handles))
		for i, h := range n.handles {
			names[i] = h.name
		}
		fmt.Fprintf(&sb, " [%s]", strings.Join(names, " "))
	}
	if n.isText {
		sb.WriteString(" (text)")
	}
	return sb.String()
}
