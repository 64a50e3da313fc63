package auth

import (
	"sync"

	"github.com/google/uuid"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, username string) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID   uuid.UUID
			Username string
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, username string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		Username string
	}{UserID: userID, Username: username}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, username)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID   uuid.UUID
	Username string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct{ Token string } {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
