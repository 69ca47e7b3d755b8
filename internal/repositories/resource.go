package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/pkg/backend"
)

// Resource is one REST collection of the backend, e.g. /products.
type Resource[T models.Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, payload any) (T, error)
	Update(ctx context.Context, id string, payload any) (T, error)
	Delete(ctx context.Context, id string) error
}

type restResource[T models.Record] struct {
	client backend.Client
	path   string
}

func NewResource[T models.Record](client backend.Client, name string) Resource[T] {
	return &restResource[T]{client: client, path: "/" + name}
}

func (r *restResource[T]) List(ctx context.Context) ([]T, error) {
	var items []T

	if err := r.client.Get(ctx, r.path, &items); err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.path, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (r *restResource[T]) Get(ctx context.Context, id string) (T, error) {
	var item T

	if err := r.client.Get(ctx, r.itemPath(id), &item); err != nil {
		return item, fmt.Errorf("getting %s: %w", r.itemPath(id), err)
	}

	return item, nil
}

func (r *restResource[T]) Create(ctx context.Context, payload any) (T, error) {
	var item T

	if err := r.client.Post(ctx, r.path, payload, &item); err != nil {
		return item, fmt.Errorf("creating in %s: %w", r.path, err)
	}

	return item, nil
}

func (r *restResource[T]) Update(ctx context.Context, id string, payload any) (T, error) {
	var item T

	if err := r.client.Put(ctx, r.itemPath(id), payload, &item); err != nil {
		return item, fmt.Errorf("updating %s: %w", r.itemPath(id), err)
	}

	return item, nil
}

func (r *restResource[T]) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, r.itemPath(id), nil); err != nil {
		return fmt.Errorf("deleting %s: %w", r.itemPath(id), err)
	}

	return nil
}

func (r *restResource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
