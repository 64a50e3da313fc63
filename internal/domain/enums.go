package domain

import "strings"

// MemberRole is the role a user holds inside a company.
type MemberRole string

const (
	MemberRoleUser  MemberRole = "USER"
	MemberRoleAdmin MemberRole = "ADMIN"
	MemberRoleOwner MemberRole = "OWNER"
)

func (r MemberRole) String() string { return string(r) }

func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleUser, MemberRoleAdmin, MemberRoleOwner:
		return true
	}
	return false
}

// CanManage reports whether the role may view company-wide data and manage quizzes.
func (r MemberRole) CanManage() bool {
	return r == MemberRoleOwner || r == MemberRoleAdmin
}

// ActionStatus is the state of an invitation/request record.
type ActionStatus string

const (
	ActionStatusInvited           ActionStatus = "INVITED"
	ActionStatusRequested         ActionStatus = "REQUESTED"
	ActionStatusAccepted          ActionStatus = "ACCEPTED"
	ActionStatusDeclinedByUser    ActionStatus = "DECLINED_BY_USER"
	ActionStatusDeclinedByCompany ActionStatus = "DECLINED_BY_COMPANY"
)

// ActionStatuses lists every status in a stable order.
var ActionStatuses = []ActionStatus{
	ActionStatusInvited,
	ActionStatusRequested,
	ActionStatusAccepted,
	ActionStatusDeclinedByUser,
	ActionStatusDeclinedByCompany,
}

func (s ActionStatus) String() string { return string(s) }

func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusInvited, ActionStatusRequested, ActionStatusAccepted,
		ActionStatusDeclinedByUser, ActionStatusDeclinedByCompany:
		return true
	}
	return false
}

// ActionType tells who initiated the pending action.
type ActionType string

const (
	ActionTypeInvite  ActionType = "INVITE"
	ActionTypeRequest ActionType = "REQUEST"
)

func (t ActionType) String() string { return string(t) }

func (t ActionType) IsValid() bool {
	return t == ActionTypeInvite || t == ActionTypeRequest
}

// FileFormat is an export serialization format.
type FileFormat string

const (
	FileFormatJSON FileFormat = "json"
	FileFormatCSV  FileFormat = "csv"
)

// ParseFileFormat accepts json or csv (case-insensitive).
func ParseFileFormat(s string) (FileFormat, error) {
	switch FileFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FileFormatJSON:
		return FileFormatJSON, nil
	case FileFormatCSV:
		return FileFormatCSV, nil
	}
	return "", ErrUnsupportedFileFormat
}

// ContentType returns the MIME type for the format.
func (f FileFormat) ContentType() string {
	if f == FileFormatCSV {
		return "text/csv"
	}
	return "application/json"
}
