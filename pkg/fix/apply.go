package fix

import "bytes"

// ApplyEdits applies edits returned by Prepare to content and returns the
// new content. The input slice is not modified.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	grow := 0
	for _, e := range edits {
		grow += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + max(grow, 0))

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes()
}

// Apply prepares and applies edits in one step. Conflicting edits are
// dropped and returned so the caller can retry them on a later pass.
func Apply(content []byte, edits []TextEdit) ([]byte, []TextEdit, error) {
	accepted, skipped, err := Prepare(edits, len(content))
	if err != nil {
		return content, nil, err
	}
	return ApplyEdits(content, accepted), skipped, nil
}
