package action

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Company, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *companyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if mock.GetByIDFunc == nil {
		panic("companyRepoMock.GetByIDFunc: method is nil but companyRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{
		ID: id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *companyRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	var calls []struct{ ID uuid.UUID }
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{
		ID: id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	var calls []struct{ ID uuid.UUID }
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ actionRepo = &actionRepoMock{}

type actionRepoMock struct {
	CreateFunc              func(ctx context.Context, a *domain.Action) (*domain.Action, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Action, error)
	GetForUpdateFunc        func(ctx context.Context, id uuid.UUID) (*domain.Action, error)
	FindByPairForUpdateFunc func(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*domain.Action, error)
	UpdateStatusFunc        func(ctx context.Context, id uuid.UUID, status domain.ActionStatus, typ domain.ActionType) (*domain.Action, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	ListByCompanyFunc       func(ctx context.Context, companyID uuid.UUID, status domain.ActionStatus) ([]domain.ActionView, error)
	ListByUserFunc          func(ctx context.Context, userID uuid.UUID, status domain.ActionStatus, scope domain.Scope) ([]domain.ActionView, error)

	calls struct {
		Create []struct {
			A *domain.Action
		}
		GetByID []struct {
			ID uuid.UUID
		}
		GetForUpdate []struct {
			ID uuid.UUID
		}
		FindByPairForUpdate []struct {
			UserID    uuid.UUID
			CompanyID uuid.UUID
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.ActionStatus
			Typ    domain.ActionType
		}
		Delete []struct {
			ID uuid.UUID
		}
		ListByCompany []struct {
			CompanyID uuid.UUID
			Status    domain.ActionStatus
		}
		ListByUser []struct {
			UserID uuid.UUID
			Status domain.ActionStatus
			Scope  domain.Scope
		}
	}
	lockCreate              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockGetForUpdate        sync.RWMutex
	lockFindByPairForUpdate sync.RWMutex
	lockUpdateStatus        sync.RWMutex
	lockDelete              sync.RWMutex
	lockListByCompany       sync.RWMutex
	lockListByUser          sync.RWMutex
}

func (mock *actionRepoMock) Create(ctx context.Context, a *domain.Action) (*domain.Action, error) {
	if mock.CreateFunc == nil {
		panic("actionRepoMock.CreateFunc: method is nil but actionRepo.Create was just called")
	}
	callInfo := struct {
		A *domain.Action
	}{
		A: a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *actionRepoMock) CreateCalls() []struct{ A *domain.Action } {
	var calls []struct{ A *domain.Action }
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *actionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Action, error) {
	if mock.GetByIDFunc == nil {
		panic("actionRepoMock.GetByIDFunc: method is nil but actionRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{
		ID: id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *actionRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	var calls []struct{ ID uuid.UUID }
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *actionRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Action, error) {
	if mock.GetForUpdateFunc == nil {
		panic("actionRepoMock.GetForUpdateFunc: method is nil but actionRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{
		ID: id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *actionRepoMock) GetForUpdateCalls() []struct{ ID uuid.UUID } {
	var calls []struct{ ID uuid.UUID }
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *actionRepoMock) FindByPairForUpdate(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*domain.Action, error) {
	if mock.FindByPairForUpdateFunc == nil {
		panic("actionRepoMock.FindByPairForUpdateFunc: method is nil but actionRepo.FindByPairForUpdate was just called")
	}
	callInfo := struct {
		UserID    uuid.UUID
		CompanyID uuid.UUID
	}{
		UserID:    userID,
		CompanyID: companyID,
	}
	mock.lockFindByPairForUpdate.Lock()
	mock.calls.FindByPairForUpdate = append(mock.calls.FindByPairForUpdate, callInfo)
	mock.lockFindByPairForUpdate.Unlock()
	return mock.FindByPairForUpdateFunc(ctx, userID, companyID)
}

func (mock *actionRepoMock) FindByPairForUpdateCalls() []struct {
		UserID    uuid.UUID
		CompanyID uuid.UUID
	} {
	var calls []struct {
		UserID    uuid.UUID
		CompanyID uuid.UUID
	}
	mock.lockFindByPairForUpdate.RLock()
	calls = mock.calls.FindByPairForUpdate
	mock.lockFindByPairForUpdate.RUnlock()
	return calls
}

func (mock *actionRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ActionStatus, typ domain.ActionType) (*domain.Action, error) {
	if mock.UpdateStatusFunc == nil {
		panic("actionRepoMock.UpdateStatusFunc: method is nil but actionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.ActionStatus
		Typ    domain.ActionType
	}{
		ID:     id,
		Status: status,
		Typ:    typ,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, typ)
}

func (mock *actionRepoMock) UpdateStatusCalls() []struct {
		ID     uuid.UUID
		Status domain.ActionStatus
		Typ    domain.ActionType
	} {
	var calls []struct {
		ID     uuid.UUID
		Status domain.ActionStatus
		Typ    domain.ActionType
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *actionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("actionRepoMock.DeleteFunc: method is nil but actionRepo.Delete was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{
		ID: id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *actionRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	var calls []struct{ ID uuid.UUID }
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *actionRepoMock) ListByCompany(ctx context.Context, companyID uuid.UUID, status domain.ActionStatus) ([]domain.ActionView, error) {
	if mock.ListByCompanyFunc == nil {
		panic("actionRepoMock.ListByCompanyFunc: method is nil but actionRepo.ListByCompany was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
		Status    domain.ActionStatus
	}{
		CompanyID: companyID,
		Status:    status,
	}
	mock.lockListByCompany.Lock()
	mock.calls.ListByCompany = append(mock.calls.ListByCompany, callInfo)
	mock.lockListByCompany.Unlock()
	return mock.ListByCompanyFunc(ctx, companyID, status)
}

func (mock *actionRepoMock) ListByCompanyCalls() []struct {
		CompanyID uuid.UUID
		Status    domain.ActionStatus
	} {
	var calls []struct {
		CompanyID uuid.UUID
		Status    domain.ActionStatus
	}
	mock.lockListByCompany.RLock()
	calls = mock.calls.ListByCompany
	mock.lockListByCompany.RUnlock()
	return calls
}

func (mock *actionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, status domain.ActionStatus, scope domain.Scope) ([]domain.ActionView, error) {
	if mock.ListByUserFunc == nil {
		panic("actionRepoMock.ListByUserFunc: method is nil but actionRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Status domain.ActionStatus
		Scope  domain.Scope
	}{
		UserID: userID,
		Status: status,
		Scope:  scope,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, status, scope)
}

func (mock *actionRepoMock) ListByUserCalls() []struct {
		UserID uuid.UUID
		Status domain.ActionStatus
		Scope  domain.Scope
	} {
	var calls []struct {
		UserID uuid.UUID
		Status domain.ActionStatus
		Scope  domain.Scope
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	CreateFunc        func(ctx context.Context, m *domain.CompanyMember) (*domain.CompanyMember, error)
	GetFunc           func(ctx context.Context, companyID uuid.UUID, userID uuid.UUID) (*domain.CompanyMember, error)
	UpdateRoleFunc    func(ctx context.Context, id uuid.UUID, role domain.MemberRole) (*domain.CompanyMember, error)
	DeleteFunc        func(ctx context.Context, companyID uuid.UUID, userID uuid.UUID) error
	ListByCompanyFunc func(ctx context.Context, companyID uuid.UUID, roles ...domain.MemberRole) ([]domain.MemberView, error)
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID, scope domain.Scope) ([]domain.MemberView, error)

	calls struct {
		Create []struct {
			M *domain.CompanyMember
		}
		Get []struct {
			CompanyID uuid.UUID
			UserID    uuid.UUID
		}
		UpdateRole []struct {
			ID   uuid.UUID
			Role domain.MemberRole
		}
		Delete []struct {
			CompanyID uuid.UUID
			UserID    uuid.UUID
		}
		ListByCompany []struct {
			CompanyID uuid.UUID
			Roles     []domain.MemberRole
		}
		ListByUser []struct {
			UserID uuid.UUID
			Scope  domain.Scope
		}
	}
	lockCreate        sync.RWMutex
	lockGet           sync.RWMutex
	lockUpdateRole    sync.RWMutex
	lockDelete        sync.RWMutex
	lockListByCompany sync.RWMutex
	lockListByUser    sync.RWMutex
}

func (mock *memberRepoMock) Create(ctx context.Context, m *domain.CompanyMember) (*domain.CompanyMember, error) {
	if mock.CreateFunc == nil {
		panic("memberRepoMock.CreateFunc: method is nil but memberRepo.Create was just called")
	}
	callInfo := struct {
		M *domain.CompanyMember
	}{
		M: m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *memberRepoMock) CreateCalls() []struct{ M *domain.CompanyMember } {
	var calls []struct{ M *domain.CompanyMember }
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *memberRepoMock) Get(ctx context.Context, companyID uuid.UUID, userID uuid.UUID) (*domain.CompanyMember, error) {
	if mock.GetFunc == nil {
		panic("memberRepoMock.GetFunc: method is nil but memberRepo.Get was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
		UserID    uuid.UUID
	}{
		CompanyID: companyID,
		UserID:    userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, companyID, userID)
}

func (mock *memberRepoMock) GetCalls() []struct {
		CompanyID uuid.UUID
		UserID    uuid.UUID
	} {
	var calls []struct {
		CompanyID uuid.UUID
		UserID    uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *memberRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.MemberRole) (*domain.CompanyMember, error) {
	if mock.UpdateRoleFunc == nil {
		panic("memberRepoMock.UpdateRoleFunc: method is nil but memberRepo.UpdateRole was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		Role domain.MemberRole
	}{
		ID:   id,
		Role: role,
	}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *memberRepoMock) UpdateRoleCalls() []struct {
		ID   uuid.UUID
		Role domain.MemberRole
	} {
	var calls []struct {
		ID   uuid.UUID
		Role domain.MemberRole
	}
	mock.lockUpdateRole.RLock()
	calls = mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}

func (mock *memberRepoMock) Delete(ctx context.Context, companyID uuid.UUID, userID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("memberRepoMock.DeleteFunc: method is nil but memberRepo.Delete was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
		UserID    uuid.UUID
	}{
		CompanyID: companyID,
		UserID:    userID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, companyID, userID)
}

func (mock *memberRepoMock) DeleteCalls() []struct {
		CompanyID uuid.UUID
		UserID    uuid.UUID
	} {
	var calls []struct {
		CompanyID uuid.UUID
		UserID    uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *memberRepoMock) ListByCompany(ctx context.Context, companyID uuid.UUID, roles ...domain.MemberRole) ([]domain.MemberView, error) {
	if mock.ListByCompanyFunc == nil {
		panic("memberRepoMock.ListByCompanyFunc: method is nil but memberRepo.ListByCompany was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
		Roles     []domain.MemberRole
	}{
		CompanyID: companyID,
		Roles:     roles,
	}
	mock.lockListByCompany.Lock()
	mock.calls.ListByCompany = append(mock.calls.ListByCompany, callInfo)
	mock.lockListByCompany.Unlock()
	return mock.ListByCompanyFunc(ctx, companyID, roles...)
}

func (mock *memberRepoMock) ListByCompanyCalls() []struct {
		CompanyID uuid.UUID
		Roles     []domain.MemberRole
	} {
	var calls []struct {
		CompanyID uuid.UUID
		Roles     []domain.MemberRole
	}
	mock.lockListByCompany.RLock()
	calls = mock.calls.ListByCompany
	mock.lockListByCompany.RUnlock()
	return calls
}

func (mock *memberRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, scope domain.Scope) ([]domain.MemberView, error) {
	if mock.ListByUserFunc == nil {
		panic("memberRepoMock.ListByUserFunc: method is nil but memberRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Scope  domain.Scope
	}{
		UserID: userID,
		Scope:  scope,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, scope)
}

func (mock *memberRepoMock) ListByUserCalls() []struct {
		UserID uuid.UUID
		Scope  domain.Scope
	} {
	var calls []struct {
		UserID uuid.UUID
		Scope  domain.Scope
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	DeleteByMemberFunc func(ctx context.Context, memberID uuid.UUID) (int, error)

	calls struct {
		DeleteByMember []struct {
			MemberID uuid.UUID
		}
	}
	lockDeleteByMember sync.RWMutex
}

func (mock *resultRepoMock) DeleteByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	if mock.DeleteByMemberFunc == nil {
		panic("resultRepoMock.DeleteByMemberFunc: method is nil but resultRepo.DeleteByMember was just called")
	}
	callInfo := struct {
		MemberID uuid.UUID
	}{
		MemberID: memberID,
	}
	mock.lockDeleteByMember.Lock()
	mock.calls.DeleteByMember = append(mock.calls.DeleteByMember, callInfo)
	mock.lockDeleteByMember.Unlock()
	return mock.DeleteByMemberFunc(ctx, memberID)
}

func (mock *resultRepoMock) DeleteByMemberCalls() []struct{ MemberID uuid.UUID } {
	var calls []struct{ MemberID uuid.UUID }
	mock.lockDeleteByMember.RLock()
	calls = mock.calls.DeleteByMember
	mock.lockDeleteByMember.RUnlock()
	return calls
}

var _ detailStore = &detailStoreMock{}

type detailStoreMock struct {
	DeleteFunc func(ctx context.Context, f domain.DetailFilter) (int, error)

	calls struct {
		Delete []struct {
			F domain.DetailFilter
		}
	}
	lockDelete sync.RWMutex
}

func (mock *detailStoreMock) Delete(ctx context.Context, f domain.DetailFilter) (int, error) {
	if mock.DeleteFunc == nil {
		panic("detailStoreMock.DeleteFunc: method is nil but detailStore.Delete was just called")
	}
	callInfo := struct {
		F domain.DetailFilter
	}{
		F: f,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, f)
}

func (mock *detailStoreMock) DeleteCalls() []struct{ F domain.DetailFilter } {
	var calls []struct{ F domain.DetailFilter }
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, userIDs []uuid.UUID, text string) error

	calls struct {
		Notify []struct {
			UserIDs []uuid.UUID
			Text    string
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, userIDs []uuid.UUID, text string) error {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	callInfo := struct {
		UserIDs []uuid.UUID
		Text    string
	}{
		UserIDs: userIDs,
		Text:    text,
	}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, userIDs, text)
}

func (mock *notifierMock) NotifyCalls() []struct {
		UserIDs []uuid.UUID
		Text    string
	} {
	var calls []struct {
		UserIDs []uuid.UUID
		Text    string
	}
	mock.lockNotify.RLock()
	calls = mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}

var _ recorder = &recorderMock{}

type recorderMock struct {
	TransitionFunc func(operation string, outcome string)

	calls struct {
		Transition []struct {
			Operation string
			Outcome   string
		}
	}
	lockTransition sync.RWMutex
}

func (mock *recorderMock) Transition(operation string, outcome string) {
	if mock.TransitionFunc == nil {
		panic("recorderMock.TransitionFunc: method is nil but recorder.Transition was just called")
	}
	callInfo := struct {
		Operation string
		Outcome   string
	}{
		Operation: operation,
		Outcome:   outcome,
	}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	mock.TransitionFunc(operation, outcome)
}

func (mock *recorderMock) TransitionCalls() []struct {
		Operation string
		Outcome   string
	} {
	var calls []struct {
		Operation string
		Outcome   string
	}
	mock.lockTransition.RLock()
	calls = mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Fn func(ctx context.Context) error
	}{
		Fn: fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{ Fn func(ctx context.Context) error } {
	var calls []struct{ Fn func(ctx context.Context) error }
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
