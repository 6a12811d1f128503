package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Validate checks that the document is still well formed for its kind.
// Only YAML documents are parsed; other kinds always pass.
func Validate(kind Kind, content []byte) error {
	if kind != KindYAML {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
	}
}
