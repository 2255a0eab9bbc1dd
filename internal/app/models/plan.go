package models

// Plan is the ordered sequence of courses in the order their prerequisites
// became satisfied. It is the output of a successful resolution run.
type Plan []Course

// SatisfiedSet records, in insertion order, the courses whose prerequisites
// have been confirmed satisfied during a resolution run. Entries are only
// ever added, never removed, and a key is recorded at most once.
type SatisfiedSet struct {
	index map[CourseKey]Course
	order []Course
}

// NewSatisfiedSet creates an empty satisfied set.
func NewSatisfiedSet() *SatisfiedSet {
	return &SatisfiedSet{index: make(map[CourseKey]Course)}
}

// Add records a course as satisfied. A course whose key is already present
// is ignored, so duplicated input courses appear once in the plan.
func (s *SatisfiedSet) Add(course Course) {
	key := course.Key()
	if _, exists := s.index[key]; exists {
		return
	}
	s.index[key] = course
	s.order = append(s.order, course)
}

// Contains reports whether a course with the given key has been satisfied.
func (s *SatisfiedSet) Contains(key CourseKey) bool {
	_, exists := s.index[key]
	return exists
}

// Len returns the number of satisfied courses.
func (s *SatisfiedSet) Len() int {
	return len(s.order)
}

// Courses returns the satisfied courses in the order they were added.
func (s *SatisfiedSet) Courses() []Course {
	return s.order
}
