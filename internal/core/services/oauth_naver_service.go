package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/minjaeoh/user_auth_app/internal/core/domain"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/platform/config"
	"github.com/minjaeoh/user_auth_app/internal/utils"
)

// naverEndpoint is Naver's OAuth 2.0 endpoint; the x/oauth2 module ships no
// preset for it.
var naverEndpoint = oauth2.Endpoint{
	AuthURL:  "https://nid.naver.com/oauth2.0/authorize",
	TokenURL: "https://nid.naver.com/oauth2.0/token",
}

const naverProfileURL = "https://openapi.naver.com/v1/nid/me"

// naverOAuthHandlerService implements the NaverOAuthHandlerSvcFacade.
type naverOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewNaverOAuthHandlerService creates a new instance of naverOAuthHandlerService.
func NewNaverOAuthHandlerService(cfg *config.Config) portssvc.NaverOAuthHandlerSvcFacade {
	return &naverOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.NaverClientID,
			ClientSecret: cfg.NaverClientSecret,
			RedirectURL:  cfg.NaverRedirectURL,
			Endpoint:     naverEndpoint,
		},
	}
}

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *naverOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetNaverLoginURL returns the URL to redirect the user to for Naver login.
func (s *naverOAuthHandlerService) GetNaverLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
// Naver requires the state value again on the token request.
func (s *naverOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code, state string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code, oauth2.SetAuthURLParam("state", state))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo uses the access token to read the Naver profile.
func (s *naverOAuthHandlerService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.NaverUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(naverProfileURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from naver: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver api returned non-200 status for profile: %s", resp.Status)
	}

	var userInfo domain.NaverUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from naver: %w", err)
	}
	if userInfo.ResultCode != "00" {
		return nil, fmt.Errorf("naver profile request failed: %s", userInfo.Message)
	}

	return &userInfo, nil
}
