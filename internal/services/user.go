package service

import (
	"context"
	"strings"

	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
)

// UserService manages the backend users resource, not the signed-in identity.
type UserService = Editor[models.User, models.UserDraft]

type userService struct {
	*collection[models.User]
}

func NewUserService(repo repository.Resource[models.User], opts ...store.Option) UserService {
	return &userService{collection: newCollection("users", "user", repo, nil, opts...)}
}

func (s *userService) Create(ctx context.Context, draft models.UserDraft) (models.User, error) {
	draft = cleanUser(draft)

	return s.create(ctx, draft, func() (any, error) {
		return draft, nil
	})
}

func (s *userService) Update(ctx context.Context, id string, draft models.UserDraft) (models.User, error) {
	draft = cleanUser(draft)

	return s.update(ctx, id, draft, func() (any, error) {
		return draft, nil
	})
}

func cleanUser(d models.UserDraft) models.UserDraft {
	d.Email = strings.TrimSpace(d.Email)
	d.DisplayName = utils.Sanitize(d.DisplayName)
	d.PhotoURL = strings.TrimSpace(d.PhotoURL)

	return d
}
