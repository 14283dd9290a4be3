// Package moderation holds the visibility and legality rules that separate
// public comment reads from administrative ones.
package moderation

import (
	"github.com/uuice/lumos-comments/internal/comment/model"
)

// VisibleSet returns the records the caller may see. Administrators see
// everything; anonymous callers see only approved records. This is the
// authoritative policy point when the store returns unfiltered data.
func VisibleSet(all []model.Comment, isAdmin bool) []model.Comment {
	if isAdmin {
		return all
	}
	out := make([]model.Comment, 0, len(all))
	for _, c := range all {
		if c.Approved {
			out = append(out, c)
		}
	}
	return out
}

// CanModerate reports whether approval changes and deletes are permitted.
func CanModerate(isAdmin bool) bool {
	return isAdmin
}
