package onix

import "strings"

// Normalize returns a copy of the tree with every short tag rewritten to its
// reference form. Tags without a mapping pass through unchanged. The input
// tree is never modified, and normalizing an already-normalized tree is a
// no-op, so short-tag, reference-tag, and mixed documents all converge on the
// same vocabulary.
func Normalize(e *Element) *Element {
	if e == nil {
		return nil
	}

	out := &Element{Tag: e.Tag, Text: e.Text}
	if ref, ok := referenceTags[strings.ToLower(e.Tag)]; ok {
		out.Tag = ref
	}

	if len(e.Attributes) > 0 {
		out.Attributes = make(map[string]string, len(e.Attributes))
		for k, v := range e.Attributes {
			out.Attributes[k] = v
		}
	}

	if len(e.Children) > 0 {
		out.Children = make([]*Element, len(e.Children))
		for i, child := range e.Children {
			out.Children[i] = Normalize(child)
		}
	}

	return out
}
