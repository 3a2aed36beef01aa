package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/apiclient"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/fallback"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/session"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

type UserService struct {
	client  *apiclient.Client
	session *session.Session
	fetcher *fallback.Fetcher
}

func NewUserService(client *apiclient.Client, sess *session.Session, fetcher *fallback.Fetcher) *UserService {
	return &UserService{client: client, session: sess, fetcher: fetcher}
}

func (s *UserService) profileRequest() apiclient.Request {
	return apiclient.Request{Method: http.MethodGet, Path: "/users/profile", Auth: true}
}

func (s *UserService) Profile(ctx context.Context) (domain.Profile, error) {
	return apiclient.Call[domain.Profile](ctx, s.client, s.profileRequest())
}

func (s *UserService) RestaurantProfile(ctx context.Context) fallback.Result[domain.Profile] {
	live := func(ctx context.Context) ([]byte, error) {
		return s.client.Do(ctx, s.profileRequest())
	}
	placeholder := func() domain.Profile {
		restaurant := fallback.PlaceholderRestaurant()
		return domain.Profile{
			User:       domain.User{Role: domain.UserTypeRestaurant},
			Restaurant: &restaurant,
		}
	}
	return fallback.Fetch(ctx, s.fetcher, storage.KeyRestaurantProfile, live, placeholder)
}

func (s *UserService) Update(ctx context.Context, userID int, patch domain.ProfileUpdate) (domain.User, error) {
	user, err := apiclient.Call[domain.User](ctx, s.client, apiclient.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/users/%d", userID),
		Body:   patch,
		Auth:   true,
	})
	if err != nil {
		return domain.User{}, err
	}
	if current, ok := s.session.User(); ok && current.ID == user.ID {
		if err := s.session.SetUser(ctx, user); err != nil {
			return user, fmt.Errorf("failed to persist profile: %w", err)
		}
	}
	return user, nil
}
