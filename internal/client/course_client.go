// Package client talks to the external course endpoints: it fetches the
// course list to be planned and posts the computed result back.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/models/dto"
	"github.com/yigit/courseplan/internal/config"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

// noSolutionPayload is the literal body posted when no ordering exists.
// The submit endpoint expects it as plain text, not wrapped in JSON.
const noSolutionPayload = "no solution"

// CourseClient fetches course lists from and submits plans to the remote
// planning endpoints.
type CourseClient struct {
	httpClient *http.Client
	courseURL  string
	submitURL  string
	logger     zerolog.Logger
}

// NewCourseClient creates a new course client from the planner configuration.
func NewCourseClient(cfg *config.Config, logger zerolog.Logger) *CourseClient {
	return &CourseClient{
		httpClient: &http.Client{Timeout: cfg.GetRequestTimeout()},
		courseURL:  cfg.Planner.CourseURL,
		submitURL:  cfg.Planner.SubmitURL,
		logger:     logger,
	}
}

// FetchCourses retrieves the course list from the course endpoint.
func (c *CourseClient) FetchCourses(ctx context.Context) ([]models.Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.courseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create course request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewCustomError(apperrors.ErrUpstreamUnavailable, "course endpoint returned unexpected status").
			WithDetails(map[string]interface{}{"status": resp.StatusCode})
	}

	var courseList dto.CourseListResponse
	if err := json.NewDecoder(resp.Body).Decode(&courseList); err != nil {
		return nil, fmt.Errorf("failed to decode course list: %w", err)
	}

	c.logger.Info().Int("courses", len(courseList.Courses)).Msg("Fetched course list")
	return courseList.Courses, nil
}

// SubmitPlan posts a successfully resolved plan to the submit endpoint.
func (c *CourseClient) SubmitPlan(ctx context.Context, plan models.Plan) error {
	body, err := json.Marshal(dto.PlanSubmission{Plan: plan})
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	return c.post(ctx, bytes.NewReader(body), "application/json")
}

// SubmitNoSolution posts the no-solution outcome to the submit endpoint.
func (c *CourseClient) SubmitNoSolution(ctx context.Context) error {
	return c.post(ctx, strings.NewReader(noSolutionPayload), "text/plain")
}

func (c *CourseClient) post(ctx context.Context, body io.Reader, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.submitURL, body)
	if err != nil {
		return fmt.Errorf("failed to create submit request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewCustomError(apperrors.ErrUpstreamUnavailable, "submit endpoint returned unexpected status").
			WithDetails(map[string]interface{}{"status": resp.StatusCode})
	}

	c.logger.Info().Int("status", resp.StatusCode).Msg("Result submitted")
	return nil
}
