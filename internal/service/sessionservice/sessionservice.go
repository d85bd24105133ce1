package sessionservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
)

type Holder interface {
	Login(ctx context.Context, id string) (domain.User, error)
	Logout(ctx context.Context) error
	SwitchRole(ctx context.Context) (domain.User, error)
	Current() (domain.User, error)
}

type Directory interface {
	Volunteers() []domain.Volunteer
	Admins() []domain.Admin
}

type Service struct {
	holder     Holder
	dir        Directory
	jwtService auth.JWTServiceInterface
	ttl        time.Duration
	now        func() time.Time
}

func New(holder Holder, dir Directory, jwtService auth.JWTServiceInterface, ttl time.Duration) *Service {
	return &Service{
		holder:     holder,
		dir:        dir,
		jwtService: jwtService,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Users lists the seeded identities that can be picked on the login screen,
// volunteers first.
func (s *Service) Users(_ context.Context) []dto.UserDTO {
	volunteers := s.dir.Volunteers()
	admins := s.dir.Admins()

	out := make([]dto.UserDTO, 0, len(volunteers)+len(admins))
	for _, v := range volunteers {
		out = append(out, dto.NewUserDTO(v))
	}
	for _, a := range admins {
		out = append(out, dto.NewUserDTO(a))
	}
	return out
}

func (s *Service) Login(ctx context.Context, userID string) (*dto.SessionResponseDTO, error) {
	user, err := s.holder.Login(ctx, userID)
	if user == nil {
		zap.L().Info("login refused", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if err != nil {
		zap.L().Warn("session not persisted", zap.String("user_id", userID), zap.Error(err))
	}
	zap.L().Info("user signed in", zap.String("user_id", userID), zap.String("role", string(user.Role())))
	return s.issue(user)
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.holder.Logout(ctx); err != nil {
		zap.L().Warn("session slot not cleared", zap.Error(err))
	}
	return nil
}

func (s *Service) SwitchRole(ctx context.Context) (*dto.SessionResponseDTO, error) {
	user, err := s.holder.SwitchRole(ctx)
	if user == nil {
		return nil, err
	}
	if err != nil {
		zap.L().Warn("session not persisted", zap.Error(err))
	}
	zap.L().Info("role switched", zap.String("user_id", user.Identity().ID), zap.String("role", string(user.Role())))
	return s.issue(user)
}

func (s *Service) Current(_ context.Context) (*dto.UserDTO, error) {
	user, err := s.holder.Current()
	if err != nil {
		return nil, err
	}
	out := dto.NewUserDTO(user)
	return &out, nil
}

func (s *Service) issue(user domain.User) (*dto.SessionResponseDTO, error) {
	expiresAt := s.now().Add(s.ttl)
	token, err := s.jwtService.GenerateJWT(user.Identity().ID, string(user.Role()), expiresAt)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, err
	}
	return &dto.SessionResponseDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.NewUserDTO(user),
	}, nil
}
