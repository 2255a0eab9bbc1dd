package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

// PlannerService defines the interface for course plan resolution
type PlannerService interface {
	ResolvePlan(ctx context.Context, courses []models.Course) (models.Plan, error)
}

// plannerServiceImpl implements the PlannerService interface
type plannerServiceImpl struct {
	evaluator PrereqEvaluator
	logger    zerolog.Logger
}

// NewPlannerService creates a new planner service instance
func NewPlannerService(evaluator PrereqEvaluator, logger zerolog.Logger) PlannerService {
	return &plannerServiceImpl{
		evaluator: evaluator,
		logger:    logger,
	}
}

// validateCourses validates course data before resolution
func (s *plannerServiceImpl) validateCourses(courses []models.Course) error {
	for i, course := range courses {
		if strings.TrimSpace(course.Subject) == "" {
			return fmt.Errorf("%w: course %d has an empty subject", apperrors.ErrValidationFailed, i)
		}
	}
	return nil
}

// ResolvePlan computes an ordering of the given courses in which every
// course appears after its prerequisites are satisfiable. It repeatedly
// scans the remaining courses in input order, promoting those whose
// prerequisites hold against the satisfied set built so far; promotions
// earlier in a round are visible to courses scanned later in the same
// round. When a full round promotes nothing and courses remain, the input
// is cyclic or references courses absent from the list and ErrNoSolution
// is returned as the outcome.
func (s *plannerServiceImpl) ResolvePlan(ctx context.Context, courses []models.Course) (models.Plan, error) {
	if err := s.validateCourses(courses); err != nil {
		return nil, err
	}

	satisfied := models.NewSatisfiedSet()

	remaining := make([]models.Course, len(courses))
	copy(remaining, courses)

	round := 0
	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		round++

		next := make([]models.Course, 0, len(remaining))
		for _, course := range remaining {
			ok, err := s.evaluator.Satisfied(course.Prereqs, satisfied)
			if err != nil {
				return nil, fmt.Errorf("course %s: %w", course.Key(), err)
			}
			if ok {
				satisfied.Add(course)
			} else {
				next = append(next, course)
			}
		}

		if len(next) == len(remaining) {
			s.logger.Debug().
				Int("round", round).
				Int("remaining", len(next)).
				Msg("Resolution stalled, no course became satisfiable")
			return nil, apperrors.ErrNoSolution
		}
		remaining = next
	}

	s.logger.Debug().
		Int("rounds", round).
		Int("courses", satisfied.Len()).
		Msg("Course plan resolved")
	return models.Plan(satisfied.Courses()), nil
}
