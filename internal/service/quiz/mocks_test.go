package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	CreateFunc           func(ctx context.Context, qz *domain.Quiz) (*domain.Quiz, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	GetByNameFunc        func(ctx context.Context, companyID uuid.UUID, name string) (*domain.Quiz, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, params domain.QuizUpdateParams) (*domain.Quiz, error)
	SetActiveFunc        func(ctx context.Context, id uuid.UUID, active bool) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	ListByCompanyFunc    func(ctx context.Context, companyID uuid.UUID, page domain.Page) ([]domain.Quiz, int, error)
	CountQuestionsFunc   func(ctx context.Context, quizID uuid.UUID) (int, error)
	AddQuestionFunc      func(ctx context.Context, question domain.Question) (*domain.Question, error)
	DeleteQuestionFunc   func(ctx context.Context, quizID uuid.UUID, questionID uuid.UUID) error
	ReplaceQuestionsFunc func(ctx context.Context, quizID uuid.UUID, questions []domain.Question) ([]domain.Question, error)

	calls struct {
		Create []struct {
			Qz *domain.Quiz
		}
		GetByID []struct {
			ID uuid.UUID
		}
		GetByName []struct {
			CompanyID uuid.UUID
			Name      string
		}
		Update []struct {
			ID     uuid.UUID
			Params domain.QuizUpdateParams
		}
		SetActive []struct {
			ID     uuid.UUID
			Active bool
		}
		Delete []struct {
			ID uuid.UUID
		}
		ListByCompany []struct {
			CompanyID uuid.UUID
			Page      domain.Page
		}
		CountQuestions []struct {
			QuizID uuid.UUID
		}
		AddQuestion []struct {
			Question domain.Question
		}
		DeleteQuestion []struct {
			QuizID     uuid.UUID
			QuestionID uuid.UUID
		}
		ReplaceQuestions []struct {
			QuizID    uuid.UUID
			Questions []domain.Question
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByName        sync.RWMutex
	lockUpdate           sync.RWMutex
	lockSetActive        sync.RWMutex
	lockDelete           sync.RWMutex
	lockListByCompany    sync.RWMutex
	lockCountQuestions   sync.RWMutex
	lockAddQuestion      sync.RWMutex
	lockDeleteQuestion   sync.RWMutex
	lockReplaceQuestions sync.RWMutex
}

func (mock *quizRepoMock) Create(ctx context.Context, qz *domain.Quiz) (*domain.Quiz, error) {
	if mock.CreateFunc == nil {
		panic("quizRepoMock.CreateFunc: method is nil but quizRepo.Create was just called")
	}
	callInfo := struct {
		Qz *domain.Quiz
	}{
		Qz: qz,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, qz)
}

func (mock *quizRepoMock) CreateCalls() []struct{ Qz *domain.Quiz } {
	var calls []struct{ Qz *domain.Quiz }
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *quizRepoMock) GetByName(ctx context.Context, companyID uuid.UUID, name string) (*domain.Quiz, error) {
	if mock.GetByNameFunc == nil {
		panic("quizRepoMock.GetByNameFunc: method is nil but quizRepo.GetByName was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
		Name      string
	}{
		CompanyID: companyID,
		Name:      name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, companyID, name)
}

func (mock *quizRepoMock) GetByNameCalls() []struct {
		CompanyID uuid.UUID
		Name      string
	} {
	var calls []struct {
		CompanyID uuid.UUID
		Name      string
	}
	mock.lockGetByName.RLock()
	calls = mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *quizRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.QuizUpdateParams) (*domain.Quiz, error) {
	if mock.UpdateFunc == nil {
		panic("quizRepoMock.UpdateFunc: method is nil but quizRepo.Update was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Params domain.QuizUpdateParams
	}{
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *quizRepoMock) UpdateCalls() []struct {
		ID     uuid.UUID
		Params domain.QuizUpdateParams
	} {
	var calls []struct {
		ID     uuid.UUID
		Params domain.QuizUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *quizRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if mock.SetActiveFunc == nil {
		panic("quizRepoMock.SetActiveFunc: method is nil but quizRepo.SetActive was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Active bool
	}{
		ID:     id,
		Active: active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *quizRepoMock) SetActiveCalls() []struct {
		ID     uuid.UUID
		Active bool
	} {
	var calls []struct {
		ID     uuid.UUID
		Active bool
	}
	mock.lockSetActive.RLock()
	calls = mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *quizRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("quizRepoMock.DeleteFunc: method is nil but quizRepo.Delete was just called")
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

func (mock *quizRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	var calls []struct{ ID uuid.UUID }
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *quizRepoMock) ListByCompany(ctx context.Context, companyID uuid.UUID, page domain.Page) ([]domain.Quiz, int, error) {
	if mock.ListByCompanyFunc == nil {
		panic("quizRepoMock.ListByCompanyFunc: method is nil but quizRepo.ListByCompany was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
		Page      domain.Page
	}{
		CompanyID: companyID,
		Page:      page,
	}
	mock.lockListByCompany.Lock()
	mock.calls.ListByCompany = append(mock.calls.ListByCompany, callInfo)
	mock.lockListByCompany.Unlock()
	return mock.ListByCompanyFunc(ctx, companyID, page)
}

func (mock *quizRepoMock) ListByCompanyCalls() []struct {
		CompanyID uuid.UUID
		Page      domain.Page
	} {
	var calls []struct {
		CompanyID uuid.UUID
		Page      domain.Page
	}
	mock.lockListByCompany.RLock()
	calls = mock.calls.ListByCompany
	mock.lockListByCompany.RUnlock()
	return calls
}

func (mock *quizRepoMock) CountQuestions(ctx context.Context, quizID uuid.UUID) (int, error) {
	if mock.CountQuestionsFunc == nil {
		panic("quizRepoMock.CountQuestionsFunc: method is nil but quizRepo.CountQuestions was just called")
	}
	callInfo := struct {
		QuizID uuid.UUID
	}{
		QuizID: quizID,
	}
	mock.lockCountQuestions.Lock()
	mock.calls.CountQuestions = append(mock.calls.CountQuestions, callInfo)
	mock.lockCountQuestions.Unlock()
	return mock.CountQuestionsFunc(ctx, quizID)
}

func (mock *quizRepoMock) CountQuestionsCalls() []struct{ QuizID uuid.UUID } {
	var calls []struct{ QuizID uuid.UUID }
	mock.lockCountQuestions.RLock()
	calls = mock.calls.CountQuestions
	mock.lockCountQuestions.RUnlock()
	return calls
}

func (mock *quizRepoMock) AddQuestion(ctx context.Context, question domain.Question) (*domain.Question, error) {
	if mock.AddQuestionFunc == nil {
		panic("quizRepoMock.AddQuestionFunc: method is nil but quizRepo.AddQuestion was just called")
	}
	callInfo := struct {
		Question domain.Question
	}{
		Question: question,
	}
	mock.lockAddQuestion.Lock()
	mock.calls.AddQuestion = append(mock.calls.AddQuestion, callInfo)
	mock.lockAddQuestion.Unlock()
	return mock.AddQuestionFunc(ctx, question)
}

func (mock *quizRepoMock) AddQuestionCalls() []struct{ Question domain.Question } {
	var calls []struct{ Question domain.Question }
	mock.lockAddQuestion.RLock()
	calls = mock.calls.AddQuestion
	mock.lockAddQuestion.RUnlock()
	return calls
}

func (mock *quizRepoMock) DeleteQuestion(ctx context.Context, quizID uuid.UUID, questionID uuid.UUID) error {
	if mock.DeleteQuestionFunc == nil {
		panic("quizRepoMock.DeleteQuestionFunc: method is nil but quizRepo.DeleteQuestion was just called")
	}
	callInfo := struct {
		QuizID     uuid.UUID
		QuestionID uuid.UUID
	}{
		QuizID:     quizID,
		QuestionID: questionID,
	}
	mock.lockDeleteQuestion.Lock()
	mock.calls.DeleteQuestion = append(mock.calls.DeleteQuestion, callInfo)
	mock.lockDeleteQuestion.Unlock()
	return mock.DeleteQuestionFunc(ctx, quizID, questionID)
}

func (mock *quizRepoMock) DeleteQuestionCalls() []struct {
		QuizID     uuid.UUID
		QuestionID uuid.UUID
	} {
	var calls []struct {
		QuizID     uuid.UUID
		QuestionID uuid.UUID
	}
	mock.lockDeleteQuestion.RLock()
	calls = mock.calls.DeleteQuestion
	mock.lockDeleteQuestion.RUnlock()
	return calls
}

func (mock *quizRepoMock) ReplaceQuestions(ctx context.Context, quizID uuid.UUID, questions []domain.Question) ([]domain.Question, error) {
	if mock.ReplaceQuestionsFunc == nil {
		panic("quizRepoMock.ReplaceQuestionsFunc: method is nil but quizRepo.ReplaceQuestions was just called")
	}
	callInfo := struct {
		QuizID    uuid.UUID
		Questions []domain.Question
	}{
		QuizID:    quizID,
		Questions: questions,
	}
	mock.lockReplaceQuestions.Lock()
	mock.calls.ReplaceQuestions = append(mock.calls.ReplaceQuestions, callInfo)
	mock.lockReplaceQuestions.Unlock()
	return mock.ReplaceQuestionsFunc(ctx, quizID, questions)
}

func (mock *quizRepoMock) ReplaceQuestionsCalls() []struct {
		QuizID    uuid.UUID
		Questions []domain.Question
	} {
	var calls []struct {
		QuizID    uuid.UUID
		Questions []domain.Question
	}
	mock.lockReplaceQuestions.RLock()
	calls = mock.calls.ReplaceQuestions
	mock.lockReplaceQuestions.RUnlock()
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
	GetFunc         func(ctx context.Context, companyID uuid.UUID, userID uuid.UUID) (*domain.CompanyMember, error)
	ListUserIDsFunc func(ctx context.Context, companyID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		Get []struct {
			CompanyID uuid.UUID
			UserID    uuid.UUID
		}
		ListUserIDs []struct {
			CompanyID uuid.UUID
		}
	}
	lockGet         sync.RWMutex
	lockListUserIDs sync.RWMutex
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

func (mock *memberRepoMock) ListUserIDs(ctx context.Context, companyID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListUserIDsFunc == nil {
		panic("memberRepoMock.ListUserIDsFunc: method is nil but memberRepo.ListUserIDs was just called")
	}
	callInfo := struct {
		CompanyID uuid.UUID
	}{
		CompanyID: companyID,
	}
	mock.lockListUserIDs.Lock()
	mock.calls.ListUserIDs = append(mock.calls.ListUserIDs, callInfo)
	mock.lockListUserIDs.Unlock()
	return mock.ListUserIDsFunc(ctx, companyID)
}

func (mock *memberRepoMock) ListUserIDsCalls() []struct{ CompanyID uuid.UUID } {
	var calls []struct{ CompanyID uuid.UUID }
	mock.lockListUserIDs.RLock()
	calls = mock.calls.ListUserIDs
	mock.lockListUserIDs.RUnlock()
	return calls
}

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	DeleteByQuizFunc func(ctx context.Context, quizID uuid.UUID) (int, error)

	calls struct {
		DeleteByQuiz []struct {
			QuizID uuid.UUID
		}
	}
	lockDeleteByQuiz sync.RWMutex
}

func (mock *resultRepoMock) DeleteByQuiz(ctx context.Context, quizID uuid.UUID) (int, error) {
	if mock.DeleteByQuizFunc == nil {
		panic("resultRepoMock.DeleteByQuizFunc: method is nil but resultRepo.DeleteByQuiz was just called")
	}
	callInfo := struct {
		QuizID uuid.UUID
	}{
		QuizID: quizID,
	}
	mock.lockDeleteByQuiz.Lock()
	mock.calls.DeleteByQuiz = append(mock.calls.DeleteByQuiz, callInfo)
	mock.lockDeleteByQuiz.Unlock()
	return mock.DeleteByQuizFunc(ctx, quizID)
}

func (mock *resultRepoMock) DeleteByQuizCalls() []struct{ QuizID uuid.UUID } {
	var calls []struct{ QuizID uuid.UUID }
	mock.lockDeleteByQuiz.RLock()
	calls = mock.calls.DeleteByQuiz
	mock.lockDeleteByQuiz.RUnlock()
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
