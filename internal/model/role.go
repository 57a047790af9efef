package model

// Role identifies the portal a user belongs to.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

// Operation names a role-gated API operation.
type Operation string

const (
	OpClassCreate        Operation = "class.create"
	OpClassListMine      Operation = "class.list_mine"
	OpClassListAll       Operation = "class.list_all"
	OpSessionCreate      Operation = "session.create"
	OpSessionListByClass Operation = "session.list_by_class"
	OpAttendanceMark     Operation = "attendance.mark"
	OpAttendanceCount    Operation = "attendance.count"
	OpPollCreate         Operation = "poll.create"
	OpPollRespond        Operation = "poll.respond"
	OpPollResults        Operation = "poll.results"
	OpDoubtSubmit        Operation = "doubt.submit"
	OpDoubtList          Operation = "doubt.list"
	OpFeedbackSubmit     Operation = "feedback.submit"
	OpFeedbackAggregate  Operation = "feedback.aggregate"
	OpFeedbackComments   Operation = "feedback.comments"
	OpReportTeachers     Operation = "report.teachers"
)

// policy is the single source of truth for role gating. Handlers never
// hardcode role checks; they consult Allowed through the authorization
// middleware.
var policy = map[Operation][]Role{
	OpClassCreate:        {RoleTeacher},
	OpClassListMine:      {RoleTeacher},
	OpClassListAll:       {RoleAdmin},
	OpSessionCreate:      {RoleTeacher},
	OpSessionListByClass: {RoleTeacher, RoleAdmin},
	OpAttendanceMark:     {RoleStudent},
	OpAttendanceCount:    {RoleTeacher, RoleAdmin},
	OpPollCreate:         {RoleTeacher},
	OpPollRespond:        {RoleStudent},
	OpPollResults:        {RoleStudent, RoleTeacher, RoleAdmin},
	OpDoubtSubmit:        {RoleStudent},
	OpDoubtList:          {RoleTeacher, RoleAdmin},
	OpFeedbackSubmit:     {RoleStudent},
	OpFeedbackAggregate:  {RoleAdmin},
	OpFeedbackComments:   {RoleAdmin},
	OpReportTeachers:     {RoleAdmin},
}

// Allowed reports whether role may perform op.
func Allowed(role Role, op Operation) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}
