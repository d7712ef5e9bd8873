package elevator

import (
	"context"
	"sync"

	"github.com/pollwise/admin-tools/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	SetRoleFunc    func(ctx context.Context, email string, role domain.Role) (int64, error)

	calls struct {
		GetByEmail []struct {
			Email string
		}
		SetRole []struct {
			Email string
			Role  domain.Role
		}
	}
	lockGetByEmail sync.RWMutex
	lockSetRole    sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Email string
	}{Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) SetRole(ctx context.Context, email string, role domain.Role) (int64, error) {
	if mock.SetRoleFunc == nil {
		panic("userRepoMock.SetRoleFunc: method is nil but userRepo.SetRole was just called")
	}
	callInfo := struct {
		Email string
		Role  domain.Role
	}{Email: email, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, email, role)
}

func (mock *userRepoMock) SetRoleCalls() []struct {
	Email string
	Role  domain.Role
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}
