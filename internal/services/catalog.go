package service

import (
	"context"
	"fmt"
	"strings"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
)

// CatalogEntry is a named label owned either by an operator or by the system.
type CatalogEntry interface {
	models.Record
	GetName() string
	IsSystem() bool
}

type CategoryService = Editor[models.Category, models.CatalogDraft]

type BrandService = Editor[models.Brand, models.CatalogDraft]

// catalogService keeps its seed entries across fetches and enforces
// case-insensitive unique names before anything reaches the backend.
type catalogService[T CatalogEntry] struct {
	*collection[T]
}

func NewCategoryService(repo repository.Resource[models.Category], seeds []models.Category, opts ...store.Option) CategoryService {
	return newCatalogService("categories", "category", repo, seeds, opts...)
}

func NewBrandService(repo repository.Resource[models.Brand], seeds []models.Brand, opts ...store.Option) BrandService {
	return newCatalogService("brands", "brand", repo, seeds, opts...)
}

func newCatalogService[T CatalogEntry](name, noun string, repo repository.Resource[T], seeds []T, opts ...store.Option) *catalogService[T] {
	return &catalogService[T]{collection: newCollection(name, noun, repo, seeds, opts...)}
}

// List merges the fetched entries onto the system entries already held.
func (s *catalogService[T]) List(ctx context.Context) ([]T, error) {
	t := s.slice.Begin()

	fetched, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.reject(ctx, t, "list", err)
	}

	if !s.slice.Merge(t, fetched, func(item T) bool { return item.IsSystem() }) {
		s.logStale(ctx, "list")
	}

	return s.slice.Items(), nil
}

func (s *catalogService[T]) Create(ctx context.Context, draft models.CatalogDraft) (T, error) {
	draft.Name = utils.Sanitize(draft.Name)

	return s.create(ctx, draft, func() (any, error) {
		if err := s.checkUnique(draft.Name, ""); err != nil {
			return nil, err
		}
		return draft, nil
	})
}

func (s *catalogService[T]) Update(ctx context.Context, id string, draft models.CatalogDraft) (T, error) {
	draft.Name = utils.Sanitize(draft.Name)

	return s.update(ctx, id, draft, func() (any, error) {
		if existing, ok := s.slice.Find(id); ok && existing.IsSystem() {
			return nil, appErrors.ValidationError(fmt.Sprintf("System %s cannot be modified", s.noun))
		}
		if err := s.checkUnique(draft.Name, id); err != nil {
			return nil, err
		}
		return draft, nil
	})
}

func (s *catalogService[T]) Remove(ctx context.Context, id string) error {
	if existing, ok := s.slice.Find(id); ok && existing.IsSystem() {
		return s.refuse(ctx, "remove", appErrors.ValidationError(fmt.Sprintf("System %s cannot be deleted", s.noun)))
	}

	return s.collection.Remove(ctx, id)
}

// checkUnique rejects name when another entry, other than the one with id
// exceptID, already carries it in any letter case.
func (s *catalogService[T]) checkUnique(name, exceptID string) error {
	for _, item := range s.slice.Items() {
		if item.GetID() == exceptID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(item.GetName()), name) {
			return appErrors.ValidationError(fmt.Sprintf("A %s named %q already exists", s.noun, item.GetName()))
		}
	}

	return nil
}
