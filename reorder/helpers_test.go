package reorder

import (
	"strings"

	"github.com/npillmayer/domino/tree"
)

type node = *tree.Node[string]

// selects matches selectors of form "tag" or ".class" against payloads of
// form "tag.class1.class2".
func selects(sel string, payload string) bool {
	parts := strings.Split(payload, ".")
	if strings.HasPrefix(sel, ".") {
		for _, cl := range parts[1:] {
			if "."+cl == sel {
				return true
			}
		}
		return false
	}
	return parts[0] == sel
}

// build creates a tree from a compact notation: every line holds a parent
// payload, a colon, and the payloads of its children. The first parent is
// the root. Parents which are not the root must appear as children of an
// earlier line.
//
//     html: body
//     body: div.a div.b
//
func build(layout string) (*tree.Document[string], map[string]node) {
	byName := make(map[string]node)
	var root node
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		pc := strings.SplitN(line, ":", 2)
		pname := strings.TrimSpace(pc[0])
		parent, ok := byName[pname]
		if !ok {
			parent = tree.NewNode(pname)
			byName[pname] = parent
		}
		if root == nil {
			root = parent
		}
		for _, chname := range strings.Fields(pc[1]) {
			ch := tree.NewNode(chname)
			byName[chname] = ch
			parent.AddChild(ch)
		}
	}
	return tree.NewDocument(root, selects), byName
}

func names(nodes []node) string {
	var s []string
	for _, n := range nodes {
		s = append(s, n.Payload)
	}
	return strings.Join(s, " ")
}
