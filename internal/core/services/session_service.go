package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	portsrepo "github.com/minjaeoh/user_auth_app/internal/core/ports/repositories"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/platform/config"
	"github.com/minjaeoh/user_auth_app/internal/utils"
)

// sessionService projects user records onto session claims and mints the
// JWT that carries them. Claims are never mutated in place: login and
// explicit refresh are the only points where a token is produced, and
// refresh always re-reads the record first.
type sessionService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewSessionService creates the session projection service.
func NewSessionService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.SessionSvcFacade {
	return &sessionService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// Project derives the minimal claim set from a user record.
func (s *sessionService) Project(user *domain.User) domain.Claims {
	return domain.Claims{
		Subject: strconv.FormatInt(user.ID, 10),
		Name:    user.Name,
	}
}

// IssueToken mints a signed session token carrying the user's claims.
func (s *sessionService) IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	claims := s.Project(user)
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	token, err := utils.GenerateSessionJWT(claims.Subject, claims.Name, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiryTime, nil
}

// Refresh re-reads the user record and issues a fresh token from the current
// state. This is the only path by which a session's name claim changes after
// initial login, e.g. following a profile-name edit.
func (s *sessionService) Refresh(ctx context.Context, userID int64) (*domain.User, string, time.Time, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to re-read user for session refresh: %w", err)
	}

	token, expiry, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiry, nil
}
