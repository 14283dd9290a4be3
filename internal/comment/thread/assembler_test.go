package thread

import (
	"testing"
	"time"

	"github.com/uuice/lumos-comments/internal/comment/model"
)

func mk(id int64, parentID *int64) model.Comment {
	return model.Comment{
		ID:        id,
		PageURL:   "/post",
		Author:    "a",
		Content:   "c",
		CreatedAt: time.Now().UTC(),
		Approved:  true,
		ParentID:  parentID,
	}
}

func ptr(v int64) *int64 { return &v }

func countNodes(nodes []model.CommentNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + countNodes(node.Children)
	}
	return n
}

func TestAssembleEmpty(t *testing.T) {
	roots := Assemble(nil)
	if len(roots) != 0 {
		t.Fatalf("expected empty forest, got %d roots", len(roots))
	}
}

func TestAssembleNesting(t *testing.T) {
	comments := []model.Comment{
		mk(1, nil),
		mk(2, ptr(1)),
		mk(3, ptr(2)),
		mk(4, nil),
	}

	roots := Assemble(comments)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].ID != 1 || roots[1].ID != 4 {
		t.Fatalf("expected input order preserved for roots, got %d, %d", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != 2 {
		t.Fatalf("expected comment 2 under comment 1")
	}
	if len(roots[0].Children[0].Children) != 1 || roots[0].Children[0].Children[0].ID != 3 {
		t.Fatalf("expected comment 3 under comment 2")
	}
	if got := countNodes(roots); got != len(comments) {
		t.Fatalf("expected %d nodes reachable from roots, got %d", len(comments), got)
	}
}

func TestAssembleOrphanBecomesRoot(t *testing.T) {
	comments := []model.Comment{
		mk(1, ptr(5)), // parent 5 absent
	}

	roots := Assemble(comments)
	if len(roots) != 1 {
		t.Fatalf("expected orphan promoted to root, got %d roots", len(roots))
	}
	if roots[0].ID != 1 {
		t.Fatalf("expected root id 1, got %d", roots[0].ID)
	}
	if len(roots[0].Children) != 0 {
		t.Fatalf("expected no children on orphan root")
	}
}

func TestAssembleAllOrphans(t *testing.T) {
	comments := []model.Comment{
		mk(10, ptr(1)),
		mk(11, ptr(2)),
		mk(12, ptr(3)),
	}

	roots := Assemble(comments)
	if len(roots) != 3 {
		t.Fatalf("expected all orphans as roots, got %d", len(roots))
	}
}

func TestAssembleChildOrderPreserved(t *testing.T) {
	// Store order is created_at DESC; the assembler must not re-sort.
	comments := []model.Comment{
		mk(1, nil),
		mk(9, ptr(1)),
		mk(5, ptr(1)),
		mk(3, ptr(1)),
	}

	roots := Assemble(comments)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	ch := roots[0].Children
	if len(ch) != 3 || ch[0].ID != 9 || ch[1].ID != 5 || ch[2].ID != 3 {
		t.Fatalf("expected children in input order 9,5,3, got %v", []int64{ch[0].ID, ch[1].ID, ch[2].ID})
	}
}
