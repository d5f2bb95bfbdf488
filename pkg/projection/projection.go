// Package projection renders and queries packet projections as JSON.
package projection

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// JSON renders fields with sorted keys. An indent of 0 renders a single line.
func JSON(fields map[string]any, indent int) string {
	return oj.JSON(fields, &oj.Options{Sort: true, Indent: indent})
}

// Select applies a jsonpath expression to fields. Keys containing dashes
// need the bracket notation, e.g. $.header['packet-id'].
func Select(fields map[string]any, path string) ([]any, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("parse path %q: %w", path, err)
	}
	// the generic form is needed for filter expressions
	obj, err := oj.ParseString(JSON(fields, 0))
	if err != nil {
		return nil, err
	}
	return x.Get(obj), nil
}
