package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		role Role
		op   Operation
		want bool
	}{
		{RoleTeacher, OpClassCreate, true},
		{RoleStudent, OpClassCreate, false},
		{RoleAdmin, OpClassListAll, true},
		{RoleTeacher, OpClassListAll, false},
		{RoleStudent, OpAttendanceMark, true},
		{RoleTeacher, OpAttendanceMark, false},
		{RoleTeacher, OpAttendanceCount, true},
		{RoleAdmin, OpAttendanceCount, true},
		{RoleStudent, OpAttendanceCount, false},
		{RoleStudent, OpPollResults, true},
		{RoleTeacher, OpPollResults, true},
		{RoleAdmin, OpPollResults, true},
		{RoleStudent, OpFeedbackAggregate, false},
		{RoleTeacher, OpFeedbackAggregate, false},
		{RoleAdmin, OpFeedbackAggregate, true},
		{RoleAdmin, OpReportTeachers, true},
		{RoleStudent, OpReportTeachers, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Allowed(tc.role, tc.op), "%s %s", tc.role, tc.op)
	}
}

func TestAllowedUnknownOperation(t *testing.T) {
	assert.False(t, Allowed(RoleAdmin, Operation("nonsense")))
}
