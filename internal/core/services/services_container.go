package services

import (
	portsrepo "github.com/minjaeoh/user_auth_app/internal/core/ports/repositories"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.MailSenderSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Authenticator = NewAuthenticatorService(repos.UserRepo)
	container.Session = NewSessionService(cfg, repos.UserRepo)
	container.PasswordReset = NewPasswordResetService(
		repos.UserRepo,
		repos.ResetTokenRepo,
		container.User,
		mailer,
		cfg.FrontendBaseURL,
	)

	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.NaverOAuthHandler = NewNaverOAuthHandlerService(cfg)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.UserSvcFacade          = (*userService)(nil)
	_ portssvc.AuthenticatorSvcFacade = (*authenticatorService)(nil)
	_ portssvc.SessionSvcFacade       = (*sessionService)(nil)
	_ portssvc.PasswordResetSvcFacade = (*passwordResetService)(nil)
)
