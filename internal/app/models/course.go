package models

import "fmt"

// CourseKey uniquely identifies a course by its subject and class number.
// Two courses with the same subject and classId are the same course.
type CourseKey string

// NewCourseKey derives the key for a subject/classId pair. The derivation is
// a pure function of its inputs, so keys are stable across runs.
func NewCourseKey(subject string, classID int) CourseKey {
	return CourseKey(fmt.Sprintf("%s-%d", subject, classID))
}

// Course represents a single course and the prerequisite expression that
// must be satisfied before it can be taken. Courses are immutable once
// loaded from the course list.
type Course struct {
	ClassID int         `json:"classId"`
	Subject string      `json:"subject"`
	Prereqs *PrereqExpr `json:"prereqs"`
}

// Key returns the course's identity used for deduplication and
// satisfaction lookups.
func (c Course) Key() CourseKey {
	return NewCourseKey(c.Subject, c.ClassID)
}

// CourseRef is a reference to a course from inside a prerequisite
// expression. It carries the same identity fields as Course.
type CourseRef struct {
	ClassID int    `json:"classId"`
	Subject string `json:"subject"`
}

// Key returns the identity of the referenced course.
func (r CourseRef) Key() CourseKey {
	return NewCourseKey(r.Subject, r.ClassID)
}
