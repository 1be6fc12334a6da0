package service

import (
	"context"
	"errors"
	"time"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/edumart/edupay/internal/core/utils"
	"go.uber.org/zap"
)

// RefundWindow is how long after order creation a refund may be requested.
const RefundWindow = 7 * 24 * time.Hour

type Service struct {
	repo     port.Repository
	tokens   port.TokenService
	gateways map[domain.PaymentMethod]port.PaymentGateway
	notifier port.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(repo port.Repository, tokens port.TokenService,
	gateways []port.PaymentGateway, notifier port.Notifier, logger *zap.Logger) (*Service, error) {
	gm := make(map[domain.PaymentMethod]port.PaymentGateway, len(gateways))
	for _, g := range gateways {
		gm[g.Provider()] = g
	}
	return &Service{
		repo:     repo,
		tokens:   tokens,
		gateways: gm,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// WithClock overrides the service time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	if user.Role == "" {
		user.Role = domain.RoleStudent
	}
	user.CreatedAt = s.now()

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, login string, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) notify(n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
