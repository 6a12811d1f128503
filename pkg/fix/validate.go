package fix

import (
	"cmp"
	"fmt"
	"slices"
)

// ValidationError describes an edit whose range does not fit the content.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ValidateEdits checks that every edit has a valid range for contentLen.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		switch {
		case edit.StartOffset < 0:
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		case edit.EndOffset < edit.StartOffset:
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		case edit.EndOffset > contentLen:
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// SortEdits orders edits by start offset, then end offset, then text.
func SortEdits(edits []TextEdit) {
	slices.SortStableFunc(edits, func(a, b TextEdit) int {
		return cmp.Or(
			cmp.Compare(a.StartOffset, b.StartOffset),
			cmp.Compare(a.EndOffset, b.EndOffset),
			cmp.Compare(a.NewText, b.NewText),
		)
	})
}

// overlaps reports whether next cannot be applied after cur. Two inserts at
// the same offset overlap so that only one of them survives a pass.
func overlaps(cur, next TextEdit) bool {
	if next.StartOffset < cur.EndOffset {
		return true
	}
	return cur.IsInsert() && next.IsInsert() && cur.StartOffset == next.StartOffset
}

// Prepare validates and sorts edits, drops exact duplicates, merges
// overlapping deletions and filters the remaining conflicts. Earlier edits
// win; the losers are returned as skipped.
func Prepare(edits []TextEdit, contentLen int) ([]TextEdit, []TextEdit, error) {
	if len(edits) == 0 {
		return nil, nil, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, nil, err
	}

	sorted := slices.Clone(edits)
	SortEdits(sorted)
	sorted = slices.Compact(sorted)

	accepted := make([]TextEdit, 0, len(sorted))
	var skipped []TextEdit

	current := sorted[0]
	for _, edit := range sorted[1:] {
		switch {
		case !overlaps(current, edit):
			accepted = append(accepted, current)
			current = edit
		case current.NewText == "" && edit.NewText == "" && !edit.IsInsert():
			current.EndOffset = max(current.EndOffset, edit.EndOffset)
		default:
			skipped = append(skipped, edit)
		}
	}
	accepted = append(accepted, current)

	return accepted, skipped, nil
}
