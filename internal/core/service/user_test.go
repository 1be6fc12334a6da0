package service_test

import (
	"context"
	"testing"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port/mock"
	"github.com/edumart/edupay/internal/core/service"
	"github.com/edumart/edupay/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_RegisterUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Login:    "student",
		Password: hashedPass,
		Role:     domain.RoleStudent,
	}

	type registerTest struct {
		name      string
		user      domain.User
		mock      func(repo *mock.MockRepository)
		expError  error
		expResult *domain.User
	}

	tests := []registerTest{
		{
			name: "Register good",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			expError:  nil,
			expResult: &user,
		},
		{
			name: "Register already exists",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, nil, nil, logger)
			assert.NoError(t, err)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Login:    "student",
		Password: hashedPass,
		Role:     domain.RoleStudent,
	}

	type loginTest struct {
		name     string
		login    string
		password string
		mock     func(repo *mock.MockRepository, ts *mock.MockTokenService)
		expError error
	}

	tests := []loginTest{
		{
			name:     "Login good",
			login:    user.Login,
			password: "test",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
				ts.EXPECT().CreateToken(&user).Return("token", nil)
			},
			expError: nil,
		},
		{
			name:     "Password bad",
			login:    user.Login,
			password: "hacker",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Unknown login",
			login:    "nobody",
			password: "test",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), "nobody").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewService(repo, ts, nil, nil, logger)
			assert.NoError(t, err)

			token, err := s.LoginUser(context.Background(), test.login, test.password)

			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				assert.NotEmpty(t, token)
			}
		})
	}
}
