package models

import (
	"encoding/json"
	"fmt"

	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

// Combinator is the tag carried by an internal prerequisite node.
type Combinator string

const (
	// CombinatorAll requires every child expression to be satisfied.
	CombinatorAll Combinator = "and"
	// CombinatorAny requires at least one child expression to be satisfied.
	CombinatorAny Combinator = "or"
)

// PrereqKind discriminates the two prerequisite node shapes.
type PrereqKind string

const (
	// PrereqKindLeaf marks a node referencing a single course.
	PrereqKindLeaf PrereqKind = "leaf"
	// PrereqKindNode marks an internal combinator node.
	PrereqKindNode PrereqKind = "node"
)

// PrereqExpr is a node in a prerequisite expression tree: either a leaf
// referencing a course, or an internal node combining child expressions
// with an AND/OR tag. The Kind field tells which of the two shapes the
// node is; only the fields belonging to that shape are meaningful.
type PrereqExpr struct {
	Kind   PrereqKind
	Ref    CourseRef    // leaf only
	Op     Combinator   // node only
	Values []PrereqExpr // node only
}

// NewLeaf builds a leaf expression referencing a course.
func NewLeaf(subject string, classID int) PrereqExpr {
	return PrereqExpr{
		Kind: PrereqKindLeaf,
		Ref:  CourseRef{ClassID: classID, Subject: subject},
	}
}

// NewAllNode builds an internal node satisfied when every child is.
func NewAllNode(values ...PrereqExpr) PrereqExpr {
	return PrereqExpr{Kind: PrereqKindNode, Op: CombinatorAll, Values: append([]PrereqExpr{}, values...)}
}

// NewAnyNode builds an internal node satisfied when at least one child is.
func NewAnyNode(values ...PrereqExpr) PrereqExpr {
	return PrereqExpr{Kind: PrereqKindNode, Op: CombinatorAny, Values: append([]PrereqExpr{}, values...)}
}

// prereqShape mirrors the wire shape of a prerequisite node. Leaves carry
// classId and subject; internal nodes carry type and values. Pointer fields
// let the decoder tell a missing field from a zero value.
type prereqShape struct {
	Type    *string           `json:"type,omitempty"`
	Values  []json.RawMessage `json:"values,omitempty"`
	ClassID *int              `json:"classId,omitempty"`
	Subject *string           `json:"subject,omitempty"`
}

// UnmarshalJSON decodes the structural wire format: an object carrying
// type marks an internal node, an object carrying classId and subject
// marks a leaf. Anything else is malformed input, never coerced into
// either shape.
//
// Each level re-decodes its subtree into raw messages before recursing,
// so decoding costs O(n * depth); the decoder's own nesting cap keeps
// depth bounded, and evaluation enforces a tighter depth guard on top.
func (e *PrereqExpr) UnmarshalJSON(data []byte) error {
	var shape prereqShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedPrereq, err)
	}

	switch {
	case shape.Type != nil:
		values := make([]PrereqExpr, 0, len(shape.Values))
		for i, raw := range shape.Values {
			var child PrereqExpr
			if err := child.UnmarshalJSON(raw); err != nil {
				return fmt.Errorf("value %d: %w", i, err)
			}
			values = append(values, child)
		}
		*e = PrereqExpr{Kind: PrereqKindNode, Op: Combinator(*shape.Type), Values: values}
		return nil

	case shape.ClassID != nil && shape.Subject != nil:
		*e = NewLeaf(*shape.Subject, *shape.ClassID)
		return nil

	default:
		return fmt.Errorf("%w: node is neither a course reference nor a combinator", apperrors.ErrMalformedPrereq)
	}
}

// MarshalJSON encodes the expression back into the structural wire format.
func (e PrereqExpr) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case PrereqKindLeaf:
		return json.Marshal(e.Ref)
	case PrereqKindNode:
		values := e.Values
		if values == nil {
			values = []PrereqExpr{}
		}
		return json.Marshal(struct {
			Type   Combinator   `json:"type"`
			Values []PrereqExpr `json:"values"`
		}{Type: e.Op, Values: values})
	default:
		return nil, fmt.Errorf("%w: unknown node kind %q", apperrors.ErrMalformedPrereq, e.Kind)
	}
}
