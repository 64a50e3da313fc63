package result

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *quizRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	if mock.GetByIDFunc == nil {
		panic("quizRepoMock.GetByIDFunc: method is nil but quizRepo.GetByID was just called")
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

func (mock *quizRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	var calls []struct{ ID uuid.UUID }
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

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

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	GetFunc     func(ctx context.Context, companyID uuid.UUID, userID uuid.UUID) (*domain.CompanyMember, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.CompanyMember, error)

	calls struct {
		Get []struct {
			CompanyID uuid.UUID
			UserID    uuid.UUID
		}
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGet     sync.RWMutex
	lockGetByID sync.RWMutex
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

func (mock *memberRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyMember, error) {
	if mock.GetByIDFunc == nil {
		panic("memberRepoMock.GetByIDFunc: method is nil but memberRepo.GetByID was just called")
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

func (mock *memberRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	var calls []struct{ ID uuid.UUID }
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	CreateFunc          func(ctx context.Context, res *domain.Result) (*domain.Result, error)
	ListForUserQuizFunc func(ctx context.Context, userID uuid.UUID, quizID uuid.UUID) ([]domain.Result, error)
	MemberAverageFunc   func(ctx context.Context, memberID uuid.UUID) (float64, int, error)
	CompanyAveragesFunc func(ctx context.Context, userID uuid.UUID) ([]float64, error)
	ListByCompanyFunc   func(ctx context.Context, companyID uuid.UUID) ([]domain.ResultRow, error)
	ListByMemberFunc    func(ctx context.Context, memberID uuid.UUID) ([]domain.ResultRow, error)
	LatestByUserFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.LatestResult, error)
	LatestByCompanyFunc func(ctx context.Context, companyID uuid.UUID) ([]domain.LatestResult, error)

	calls struct {
		Create []struct {
			Res *domain.Result
		}
		ListForUserQuiz []struct {
			UserID uuid.UUID
			QuizID uuid.UUID
		}
		MemberAverage []struct {
			MemberID uuid.UUID
		}
		CompanyAverages []struct {
			UserID uuid.UUID
		}
		ListByCompany []struct {
			CompanyID uuid.UUID
		}
		ListByMember []struct {
			MemberID uuid.UUID
		}
		LatestByUser []struct {
			UserID uuid.UUID
		}
		LatestByCompany []struct {
			CompanyID uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockListForUserQuiz sync.RWMutex
	lockMemberAverage   sync.RWMutex
	lockCompanyAverages sync.RWMutex
	lockListByCompany   sync.RWMutex
	lockListByMember    sync.RWMutex
	lockLatestByUser    sync.RWMutex
	lockLatestByCompany sync.RWMutex
}

func (mock *resultRepoMock) Create(ctx context.Context, res *domain.Result) (*domain.Result, error) {
	if mock.CreateFunc == nil {
		panic("resultRepoMock.CreateFunc: method is nil but resultRepo.Create was just called")
	}
	callInfo := struct {
		Res *domain.Result
	}{
		Res: res,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, res)
}

func (mock *resultRepoMock) CreateCalls() []struct{ Res *domain.Result } {
	var calls []struct{ Res *domain.Result }
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *resultRepoMock) ListForUserQuiz(ctx context.Context, userID uuid.UUID, quizID uuid.UUID) ([]domain.Result, error) {
	if mock.ListForUserQuizFunc == nil {
		panic("resultRepoMock.ListForUserQuizFunc: method is nil but resultRepo.ListForUserQuiz was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		QuizID uuid.UUID
	}{
		UserID: userID,
		QuizID: quizID,
	}
	mock.lockListForUserQuiz.Lock()
	mock.calls.ListForUserQuiz = append(mock.calls.ListForUserQuiz, callInfo)
	mock.lockListForUserQuiz.Unlock()
	return mock.ListForUserQuizFunc(ctx, userID, quizID)
}

func (mock *resultRepoMock) ListForUserQuizCalls() []struct {
		UserID uuid.UUID
		QuizID uuid.UUID
	} {
	var calls []struct {
		UserID uuid.UUID
		QuizID uuid.UUID
	}
	mock.lockListForUserQuiz.RLock()
	calls = mock.calls.ListForUserQuiz
	mock.lockListForUserQuiz.RUnlock()
	return calls
}

func (mock *resultRepoMock) MemberAverage(ctx context.Context, memberID uuid.UUID) (float64, int, error) {
	if mock.MemberAverageFunc == nil {
		panic("resultRepoMock.MemberAverageFunc: method is nil but resultRepo.MemberAverage was just called")
	}
	callInfo := struct {
		MemberID uuid.UUID
	}{
		MemberID: memberID,
	}
	mock.lockMemberAverage.Lock()
	mock.calls.MemberAverage = append(mock.calls.MemberAverage, callInfo)
	mock.lockMemberAverage.Unlock()
	return mock.MemberAverageFunc(ctx, memberID)
}

func (mock *resultRepoMock) MemberAverageCalls() []struct{ MemberID uuid.UUID } {
	var calls []struct{ MemberID uuid.UUID }
	mock.lockMemberAverage.RLock()
	calls = mock.calls.MemberAverage
	mock.lockMemberAverage.RUnlock()
	return calls
}

func (mock *resultRepoMock) CompanyAverages(ctx context.Context, userID uuid.UUID) ([]float64, error) {
	if mock.CompanyAveragesFunc == nil {
		panic("resultRepoMock.CompanyAveragesFunc: method is nil but resultRepo.CompanyAverages was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{
		UserID: userID,
	}
	mock.lockCompanyAverages.Lock()
	mock.calls.CompanyAverages = append(mock.calls.CompanyAverages, callInfo)
	mock.lockCompanyAverages.Unlock()
	return mock.CompanyAveragesFunc(ctx, userID)
}

func (mock *resultRepoMock) CompanyAveragesCalls() []struct{ UserID uuid.UUID } {
	var calls []struct{ UserID uuid.UUID }
	mock.lockCompanyAverages.RLock()
	calls = mock.calls.CompanyAverages
	mock.lockCompanyAverages.RUnlock()
	return calls
}

func (mock *resultRepoMock) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ResultRow, error) {
	if mock.ListByCompanyFunc == nil {
		panic("resultRepoMock.ListByCompanyFunc: method is nil but resultRepo.ListByCompany was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
	}{
		CompanyID: companyID,
	}
	mock.lockListByCompany.Lock()
	mock.calls.ListByCompany = append(mock.calls.ListByCompany, callInfo)
	mock.lockListByCompany.Unlock()
	return mock.ListByCompanyFunc(ctx, companyID)
}

func (mock *resultRepoMock) ListByCompanyCalls() []struct{ CompanyID uuid.UUID } {
	var calls []struct{ CompanyID uuid.UUID }
	mock.lockListByCompany.RLock()
	calls = mock.calls.ListByCompany
	mock.lockListByCompany.RUnlock()
	return calls
}

func (mock *resultRepoMock) ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.ResultRow, error) {
	if mock.ListByMemberFunc == nil {
		panic("resultRepoMock.ListByMemberFunc: method is nil but resultRepo.ListByMember was just called")
	}
	callInfo := struct {
		MemberID uuid.UUID
	}{
		MemberID: memberID,
	}
	mock.lockListByMember.Lock()
	mock.calls.ListByMember = append(mock.calls.ListByMember, callInfo)
	mock.lockListByMember.Unlock()
	return mock.ListByMemberFunc(ctx, memberID)
}

func (mock *resultRepoMock) ListByMemberCalls() []struct{ MemberID uuid.UUID } {
	var calls []struct{ MemberID uuid.UUID }
	mock.lockListByMember.RLock()
	calls = mock.calls.ListByMember
	mock.lockListByMember.RUnlock()
	return calls
}

func (mock *resultRepoMock) LatestByUser(ctx context.Context, userID uuid.UUID) ([]domain.LatestResult, error) {
	if mock.LatestByUserFunc == nil {
		panic("resultRepoMock.LatestByUserFunc: method is nil but resultRepo.LatestByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{
		UserID: userID,
	}
	mock.lockLatestByUser.Lock()
	mock.calls.LatestByUser = append(mock.calls.LatestByUser, callInfo)
	mock.lockLatestByUser.Unlock()
	return mock.LatestByUserFunc(ctx, userID)
}

func (mock *resultRepoMock) LatestByUserCalls() []struct{ UserID uuid.UUID } {
	var calls []struct{ UserID uuid.UUID }
	mock.lockLatestByUser.RLock()
	calls = mock.calls.LatestByUser
	mock.lockLatestByUser.RUnlock()
	return calls
}

func (mock *resultRepoMock) LatestByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.LatestResult, error) {
	if mock.LatestByCompanyFunc == nil {
		panic("resultRepoMock.LatestByCompanyFunc: method is nil but resultRepo.LatestByCompany was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
	}{
		CompanyID: companyID,
	}
	mock.lockLatestByCompany.Lock()
	mock.calls.LatestByCompany = append(mock.calls.LatestByCompany, callInfo)
	mock.lockLatestByCompany.Unlock()
	return mock.LatestByCompanyFunc(ctx, companyID)
}

func (mock *resultRepoMock) LatestByCompanyCalls() []struct{ CompanyID uuid.UUID } {
	var calls []struct{ CompanyID uuid.UUID }
	mock.lockLatestByCompany.RLock()
	calls = mock.calls.LatestByCompany
	mock.lockLatestByCompany.RUnlock()
	return calls
}

var _ detailStore = &detailStoreMock{}

type detailStoreMock struct {
	SaveFunc func(ctx context.Context, d domain.ResultDetail) error
	FindFunc func(ctx context.Context, f domain.DetailFilter) ([]domain.ResultDetail, error)

	calls struct {
		Save []struct {
			D domain.ResultDetail
		}
		Find []struct {
			F domain.DetailFilter
		}
	}
	lockSave sync.RWMutex
	lockFind sync.RWMutex
}

func (mock *detailStoreMock) Save(ctx context.Context, d domain.ResultDetail) error {
	if mock.SaveFunc == nil {
		panic("detailStoreMock.SaveFunc: method is nil but detailStore.Save was just called")
	}
	callInfo := struct {
		D domain.ResultDetail
	}{
		D: d,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, d)
}

func (mock *detailStoreMock) SaveCalls() []struct{ D domain.ResultDetail } {
	var calls []struct{ D domain.ResultDetail }
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *detailStoreMock) Find(ctx context.Context, f domain.DetailFilter) ([]domain.ResultDetail, error) {
	if mock.FindFunc == nil {
		panic("detailStoreMock.FindFunc: method is nil but detailStore.Find was just called")
	}
	callInfo := struct {
		F domain.DetailFilter
	}{
		F: f,
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f)
}

func (mock *detailStoreMock) FindCalls() []struct{ F domain.DetailFilter } {
	var calls []struct{ F domain.DetailFilter }
	mock.lockFind.RLock()
	calls = mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

var _ recorder = &recorderMock{}

type recorderMock struct {
	ResultSubmittedFunc func()

	calls struct {
		ResultSubmitted []struct{}
	}
	lockResultSubmitted sync.RWMutex
}

func (mock *recorderMock) ResultSubmitted() {
	if mock.ResultSubmittedFunc == nil {
		panic("recorderMock.ResultSubmittedFunc: method is nil but recorder.ResultSubmitted was just called")
	}
	callInfo := struct{}{}
	mock.lockResultSubmitted.Lock()
	mock.calls.ResultSubmitted = append(mock.calls.ResultSubmitted, callInfo)
	mock.lockResultSubmitted.Unlock()
	mock.ResultSubmittedFunc()
}

func (mock *recorderMock) ResultSubmittedCalls() []struct{} {
	var calls []struct{}
	mock.lockResultSubmitted.RLock()
	calls = mock.calls.ResultSubmitted
	mock.lockResultSubmitted.RUnlock()
	return calls
}
