package domain

import (
	"time"

	"github.com/google/uuid"
)

// Action is the single invitation/request record of a (user, company) pair.
// The row is reused across invite/request cycles.
type Action struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Status    ActionStatus
	Type      ActionType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActionView is an action joined with the user and company it refers to.
type ActionView struct {
	ActionID    uuid.UUID    `db:"action_id"`
	UserID      uuid.UUID    `db:"user_id"`
	Username    string       `db:"username"`
	CompanyID   uuid.UUID    `db:"company_id"`
	CompanyName string       `db:"company_name"`
	Status      ActionStatus `db:"status"`
	Type        ActionType   `db:"type"`
	CreatedAt   time.Time    `db:"created_at"`
}

// Operation is a membership operation applied to an action.
type Operation int

const (
	OpInvite Operation = iota
	OpRequest
	OpAcceptInvite
	OpDeclineInvite
	OpAcceptRequest
	OpDeclineRequest
)

// Operations lists every operation covered by the transition table.
var Operations = []Operation{
	OpInvite,
	OpRequest,
	OpAcceptInvite,
	OpDeclineInvite,
	OpAcceptRequest,
	OpDeclineRequest,
}

func (o Operation) String() string {
	switch o {
	case OpInvite:
		return "invite"
	case OpRequest:
		return "request"
	case OpAcceptInvite:
		return "accept_invite"
	case OpDeclineInvite:
		return "decline_invite"
	case OpAcceptRequest:
		return "accept_request"
	case OpDeclineRequest:
		return "decline_request"
	}
	return "unknown"
}

// Effect is what the caller must persist for a transition.
type Effect int

const (
	// EffectReject means the transition is refused with Transition.Err.
	EffectReject Effect = iota
	// EffectCreate inserts a new action row.
	EffectCreate
	// EffectUpdate changes status and type of the existing row.
	EffectUpdate
	// EffectJoin adds the user as a member and marks the action ACCEPTED.
	EffectJoin
)

// Transition is one cell of the membership transition table.
type Transition struct {
	Effect Effect
	Status ActionStatus
	Type   ActionType
	Err    error
}

// ActionStatusNone is the pseudo-status of a (user, company) pair without an action row.
const ActionStatusNone ActionStatus = ""

func reject(err error) Transition { return Transition{Effect: EffectReject, Err: err} }

var (
	createInvite  = Transition{Effect: EffectCreate, Status: ActionStatusInvited, Type: ActionTypeInvite}
	createRequest = Transition{Effect: EffectCreate, Status: ActionStatusRequested, Type: ActionTypeRequest}
	join          = Transition{Effect: EffectJoin, Status: ActionStatusAccepted}
	reopenRequest = Transition{Effect: EffectUpdate, Status: ActionStatusRequested, Type: ActionTypeRequest}
)

var transitions = map[ActionStatus]map[Operation]Transition{
	ActionStatusNone: {
		OpInvite:         createInvite,
		OpRequest:        createRequest,
		OpAcceptInvite:   reject(ErrActionNotFound),
		OpDeclineInvite:  reject(ErrActionNotFound),
		OpAcceptRequest:  reject(ErrActionNotFound),
		OpDeclineRequest: reject(ErrActionNotFound),
	},
	ActionStatusInvited: {
		OpInvite:         reject(ErrUserAlreadyInvited),
		OpRequest:        join,
		OpAcceptInvite:   join,
		OpDeclineInvite:  {Effect: EffectUpdate, Status: ActionStatusDeclinedByUser, Type: ActionTypeInvite},
		OpAcceptRequest:  reject(ErrUserNotRequested),
		OpDeclineRequest: reject(ErrUserNotRequested),
	},
	ActionStatusRequested: {
		OpInvite:         join,
		OpRequest:        reject(ErrActionAlreadyAvailable),
		OpAcceptInvite:   reject(ErrUserNotInvited),
		OpDeclineInvite:  reject(ErrUserNotInvited),
		OpAcceptRequest:  join,
		OpDeclineRequest: {Effect: EffectUpdate, Status: ActionStatusDeclinedByCompany, Type: ActionTypeRequest},
	},
	ActionStatusAccepted: {
		OpInvite:         reject(ErrAlreadyInCompany),
		OpRequest:        reject(ErrAlreadyInCompany),
		OpAcceptInvite:   reject(ErrUserNotInvited),
		OpDeclineInvite:  reject(ErrUserNotInvited),
		OpAcceptRequest:  reject(ErrUserNotRequested),
		OpDeclineRequest: reject(ErrUserNotRequested),
	},
	ActionStatusDeclinedByUser: {
		OpInvite:         reject(ErrNotPermission),
		OpRequest:        reopenRequest,
		OpAcceptInvite:   reject(ErrUserNotInvited),
		OpDeclineInvite:  reject(ErrUserNotInvited),
		OpAcceptRequest:  reject(ErrUserNotRequested),
		OpDeclineRequest: reject(ErrUserNotRequested),
	},
	ActionStatusDeclinedByCompany: {
		OpInvite:         reopenRequest,
		OpRequest:        reject(ErrActionAlreadyAvailable),
		OpAcceptInvite:   reject(ErrUserNotInvited),
		OpDeclineInvite:  reject(ErrUserNotInvited),
		OpAcceptRequest:  reject(ErrUserNotRequested),
		OpDeclineRequest: reject(ErrUserNotRequested),
	},
}

// NextTransition looks up the transition for op applied to current.
// A nil current stands for a pair without an action row.
func NextTransition(current *Action, op Operation) Transition {
	status := ActionStatusNone
	if current != nil {
		status = current.Status
	}
	row, ok := transitions[status]
	if !ok {
		return reject(ErrBadRequest)
	}
	t, ok := row[op]
	if !ok {
		return reject(ErrBadRequest)
	}
	return t
}

// Scope selects which companies a user-centric listing covers.
// The zero value covers all companies.
type Scope struct {
	companyID uuid.UUID
}

// AllCompanies returns the scope covering every company of the user.
func AllCompanies() Scope { return Scope{} }

// SpecificCompany returns the scope restricted to one company.
func SpecificCompany(id uuid.UUID) Scope { return Scope{companyID: id} }

// CompanyID returns the restricting company and true for a specific scope.
func (s Scope) CompanyID() (uuid.UUID, bool) {
	return s.companyID, s.companyID != uuid.Nil
}
