package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/config"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

func newTestClient(courseURL, submitURL string) *CourseClient {
	cfg := &config.Config{}
	cfg.Planner.CourseURL = courseURL
	cfg.Planner.SubmitURL = submitURL
	cfg.Planner.RequestTimeout = "5s"
	return NewCourseClient(cfg, zerolog.Nop())
}

func TestFetchCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"courses": [
			{"classId": 1, "subject": "CS", "prereqs": {"type": "and", "values": []}},
			{"classId": 2, "subject": "CS", "prereqs": {"type": "and", "values": [{"classId": 1, "subject": "CS"}]}}
		]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.URL)
	courses, err := c.FetchCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, models.CourseKey("CS-1"), courses[0].Key())
	assert.Equal(t, models.CourseKey("CS-2"), courses[1].Key())
}

func TestFetchCoursesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.URL)
	_, err := c.FetchCourses(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.ErrorContains(t, err, "unexpected status")
}

func TestFetchCoursesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"courses": [{"classId": 1, "subject": "CS", "prereqs": {}}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.URL)
	_, err := c.FetchCourses(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrMalformedPrereq)
}

func TestSubmitPlan(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.URL)
	plan := models.Plan{{Subject: "CS", ClassID: 1}, {Subject: "CS", ClassID: 2}}
	require.NoError(t, c.SubmitPlan(context.Background(), plan))

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"plan": [
		{"classId": 1, "subject": "CS", "prereqs": null},
		{"classId": 2, "subject": "CS", "prereqs": null}
	]}`, gotBody)
}

func TestSubmitNoSolution(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.URL)
	require.NoError(t, c.SubmitNoSolution(context.Background()))

	// The no-solution outcome is the literal text payload, not JSON.
	assert.Equal(t, "no solution", gotBody)
	assert.Equal(t, "text/plain", gotContentType)
}

func TestSubmitUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := newTestClient(server.URL, server.URL)
	err := c.SubmitPlan(context.Background(), models.Plan{})
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.ErrorContains(t, err, "unexpected status")
}
