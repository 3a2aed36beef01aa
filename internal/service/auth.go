package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/session"
)

var ErrMissingToken = errors.New("login response has no token")

type AuthService struct {
	client  *apiclient.Client
	session *session.Session
}

func NewAuthService(client *apiclient.Client, sess *session.Session) *AuthService {
	return &AuthService{client: client, session: sess}
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResponse, error) {
	auth, err := apiclient.Call[domain.AuthResponse](ctx, s.client, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   creds,
	})
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if auth.Token == "" {
		return domain.AuthResponse{}, ErrMissingToken
	}
	if err := s.session.Begin(ctx, auth.Token, auth.User); err != nil {
		return domain.AuthResponse{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return auth, nil
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if reg.Role == "" {
		reg.Role = domain.UserTypeCustomer
	}
	return apiclient.Call[domain.User](ctx, s.client, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   reg,
	})
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Invalidate(ctx)
}
