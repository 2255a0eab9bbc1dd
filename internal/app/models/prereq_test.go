package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

func TestNewCourseKey(t *testing.T) {
	assert.Equal(t, NewCourseKey("CS", 2500), NewCourseKey("CS", 2500))
	assert.NotEqual(t, NewCourseKey("CS", 2500), NewCourseKey("CS", 3500))
	assert.NotEqual(t, NewCourseKey("CS", 2500), NewCourseKey("MATH", 2500))
	// The subject/classId boundary must stay unambiguous.
	assert.NotEqual(t, NewCourseKey("CS1", 100), NewCourseKey("CS", 1100))
}

func TestPrereqExprUnmarshal(t *testing.T) {
	for _, tt := range []struct {
		Name string
		JSON string
		Want PrereqExpr
	}{
		{
			Name: "leaf",
			JSON: `{"classId": 2500, "subject": "CS"}`,
			Want: NewLeaf("CS", 2500),
		},
		{
			Name: "empty and node",
			JSON: `{"type": "and", "values": []}`,
			Want: NewAllNode(),
		},
		{
			Name: "node without values decodes as empty",
			JSON: `{"type": "and"}`,
			Want: NewAllNode(),
		},
		{
			Name: "or node with leaves",
			JSON: `{"type": "or", "values": [{"classId": 1, "subject": "CS"}, {"classId": 2, "subject": "MATH"}]}`,
			Want: NewAnyNode(NewLeaf("CS", 1), NewLeaf("MATH", 2)),
		},
		{
			Name: "nested combinators",
			JSON: `{"type": "and", "values": [{"classId": 1, "subject": "CS"}, {"type": "or", "values": [{"classId": 2, "subject": "CS"}]}]}`,
			Want: NewAllNode(NewLeaf("CS", 1), NewAnyNode(NewLeaf("CS", 2))),
		},
		{
			Name: "unknown combinator tag survives decoding",
			JSON: `{"type": "xor", "values": []}`,
			Want: PrereqExpr{Kind: PrereqKindNode, Op: Combinator("xor"), Values: []PrereqExpr{}},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			var got PrereqExpr
			require.NoError(t, json.Unmarshal([]byte(tt.JSON), &got))
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestPrereqExprUnmarshalMalformed(t *testing.T) {
	for _, tt := range []struct {
		Name string
		JSON string
	}{
		{Name: "empty object", JSON: `{}`},
		{Name: "leaf missing classId", JSON: `{"subject": "CS"}`},
		{Name: "leaf missing subject", JSON: `{"classId": 2500}`},
		{Name: "malformed nested value", JSON: `{"type": "and", "values": [{"foo": 1}]}`},
		{Name: "not an object", JSON: `[1, 2]`},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			var got PrereqExpr
			err := json.Unmarshal([]byte(tt.JSON), &got)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrMalformedPrereq)
		})
	}
}

func TestPrereqExprMarshal(t *testing.T) {
	leaf, err := json.Marshal(NewLeaf("CS", 2500))
	require.NoError(t, err)
	assert.JSONEq(t, `{"classId": 2500, "subject": "CS"}`, string(leaf))

	// An empty node must marshal its values as an array, not null.
	node, err := json.Marshal(NewAnyNode())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "or", "values": []}`, string(node))

	nested, err := json.Marshal(NewAllNode(NewLeaf("CS", 1), NewAnyNode(NewLeaf("CS", 2))))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "and", "values": [{"classId": 1, "subject": "CS"}, {"type": "or", "values": [{"classId": 2, "subject": "CS"}]}]}`, string(nested))
}

func TestCourseListRoundTrip(t *testing.T) {
	input := `{"courses": [{"classId": 2500, "subject": "CS", "prereqs": {"type": "and", "values": []}}]}`

	var list struct {
		Courses []Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal([]byte(input), &list))
	require.Len(t, list.Courses, 1)
	assert.Equal(t, CourseKey("CS-2500"), list.Courses[0].Key())
	require.NotNil(t, list.Courses[0].Prereqs)
	assert.Equal(t, NewAllNode(), *list.Courses[0].Prereqs)

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestSatisfiedSet(t *testing.T) {
	set := NewSatisfiedSet()
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains(NewCourseKey("CS", 1)))

	set.Add(Course{Subject: "CS", ClassID: 1})
	set.Add(Course{Subject: "CS", ClassID: 2})
	set.Add(Course{Subject: "CS", ClassID: 1}) // duplicate key is ignored

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(NewCourseKey("CS", 1)))
	assert.True(t, set.Contains(NewCourseKey("CS", 2)))

	courses := set.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, CourseKey("CS-1"), courses[0].Key())
	assert.Equal(t, CourseKey("CS-2"), courses[1].Key())
}
