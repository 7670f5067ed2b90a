package sink

import (
	"bytes"

	rlio "github.com/matzehuels/raylayout/pkg/io"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// RenderJSON writes t as the flat tree document read back by package io.
func RenderJSON(t *rect.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := rlio.WriteJSON(t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
