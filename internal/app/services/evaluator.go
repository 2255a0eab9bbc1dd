package services

import (
	"fmt"

	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

// maxPrereqDepth bounds expression recursion so pathological nesting fails
// with an error instead of exhausting the stack.
const maxPrereqDepth = 512

// PrereqEvaluator decides whether a prerequisite expression is satisfied by
// a given set of already-satisfied courses.
type PrereqEvaluator interface {
	Satisfied(expr *models.PrereqExpr, satisfied *models.SatisfiedSet) (bool, error)
}

// prereqEvaluatorImpl implements the PrereqEvaluator interface
type prereqEvaluatorImpl struct{}

// NewPrereqEvaluator creates a new prerequisite evaluator instance
func NewPrereqEvaluator() PrereqEvaluator {
	return &prereqEvaluatorImpl{}
}

// Satisfied evaluates the expression against the satisfied set. It never
// mutates the set, so repeated and concurrent calls are safe. A nil
// expression means the course has no prerequisites and is satisfied.
func (e *prereqEvaluatorImpl) Satisfied(expr *models.PrereqExpr, satisfied *models.SatisfiedSet) (bool, error) {
	if expr == nil {
		return true, nil
	}
	return e.satisfiedAt(expr, satisfied, 0)
}

func (e *prereqEvaluatorImpl) satisfiedAt(expr *models.PrereqExpr, satisfied *models.SatisfiedSet, depth int) (bool, error) {
	if depth > maxPrereqDepth {
		return false, fmt.Errorf("%w: more than %d levels", apperrors.ErrPrereqTooDeep, maxPrereqDepth)
	}

	switch expr.Kind {
	case models.PrereqKindLeaf:
		return satisfied.Contains(expr.Ref.Key()), nil

	case models.PrereqKindNode:
		switch expr.Op {
		case models.CombinatorAll:
			// Empty child list is vacuously satisfied.
			for i := range expr.Values {
				ok, err := e.satisfiedAt(&expr.Values[i], satisfied, depth+1)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			}
			return true, nil

		case models.CombinatorAny:
			// Empty child list is vacuously unsatisfied.
			for i := range expr.Values {
				ok, err := e.satisfiedAt(&expr.Values[i], satisfied, depth+1)
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
			return false, nil

		default:
			return false, fmt.Errorf("%w: unknown combinator %q", apperrors.ErrMalformedPrereq, expr.Op)
		}

	default:
		return false, fmt.Errorf("%w: unknown node kind %q", apperrors.ErrMalformedPrereq, expr.Kind)
	}
}
