package dto

import "github.com/yigit/courseplan/internal/app/models"

// CourseListResponse is the payload shape served by the course list
// endpoint: a flat list of courses with their prerequisite expressions.
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
}

// ResolvePlanRequest is the request body for plan resolution
type ResolvePlanRequest struct {
	Courses []models.Course `json:"courses" binding:"required"`
}

// ResolvePlanResponse is the response body for plan resolution. Solvable is
// false when no valid ordering exists, in which case Plan is omitted.
type ResolvePlanResponse struct {
	Solvable bool            `json:"solvable"`
	Plan     []models.Course `json:"plan,omitempty"`
}

// PlanSubmission is the payload posted to the submit endpoint on success.
type PlanSubmission struct {
	Plan []models.Course `json:"plan"`
}
