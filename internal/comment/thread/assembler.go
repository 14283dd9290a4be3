package thread

import (
	"github.com/uuice/lumos-comments/internal/comment/model"
)

type nodePtr struct {
	c        model.Comment
	children []*nodePtr
}

// Assemble nests a flat, already-filtered comment list into a forest.
// Input order is preserved for roots and for each children list; a comment
// whose parent is absent from the input (deleted, or filtered out as
// unapproved) is promoted to a root.
func Assemble(comments []model.Comment) []model.CommentNode {
	nodes := make(map[int64]*nodePtr, len(comments))
	for _, c := range comments {
		nodes[c.ID] = &nodePtr{c: c}
	}

	roots := make([]*nodePtr, 0, len(comments))
	for _, c := range comments {
		n := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		p, ok := nodes[*c.ParentID]
		if !ok {
			roots = append(roots, n)
			continue
		}
		p.children = append(p.children, n)
	}

	out := make([]model.CommentNode, 0, len(roots))
	for _, n := range roots {
		out = append(out, toValueTree(n))
	}
	return out
}

func toValueTree(n *nodePtr) model.CommentNode {
	out := model.CommentNode{Comment: n.c}
	out.Children = make([]model.CommentNode, 0, len(n.children))
	for _, ch := range n.children {
		out.Children = append(out.Children, toValueTree(ch))
	}
	return out
}
