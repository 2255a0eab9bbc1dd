// Command planner performs a single planning run: it fetches the course
// list from the course endpoint, resolves a completion order, and posts
// the plan (or the no-solution outcome) back to the submit endpoint.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/yigit/courseplan/internal/bootstrap"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
	"github.com/yigit/courseplan/internal/pkg/logger"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	deps := bootstrap.BuildDependencies(cfg, lgr)
	if err := run(context.Background(), deps); err != nil {
		lgr.Error().Err(err).Msg("Planning run failed")
		os.Exit(1)
	}

	lgr.Info().Msg("Planning run complete.")
}

// run performs exactly one fetch, one resolution and one submission, in
// that order. Timeouts apply only at the two I/O boundaries.
func run(ctx context.Context, deps *bootstrap.Dependencies) error {
	courses, err := deps.CourseClient.FetchCourses(ctx)
	if err != nil {
		return err
	}

	plan, err := deps.PlannerService.ResolvePlan(ctx, courses)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSolution) {
			deps.Logger.Info().Int("courses", len(courses)).Msg("No valid course order exists")
			return deps.CourseClient.SubmitNoSolution(ctx)
		}
		return err
	}

	deps.Logger.Info().Int("courses", len(plan)).Msg("Course plan resolved")
	return deps.CourseClient.SubmitPlan(ctx, plan)
}
