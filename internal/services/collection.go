package service

import (
	"context"
	"log/slog"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/clothingmenvy-dot/menvy-client/internal/store"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
	"github.com/go-playground/validator/v10"
)

// Collection is the read side every entity slice offers.
type Collection[T models.Record] interface {
	// List fetches the backend collection and replaces the local one.
	List(ctx context.Context) ([]T, error)
	// Get answers from the local collection and falls back to the backend
	// without touching local state.
	Get(ctx context.Context, id string) (T, error)
	Remove(ctx context.Context, id string) error
	Snapshot() store.State[T]
	Find(id string) (T, bool)
	ClearError()
}

// Editor adds the write operations that take a validated draft.
type Editor[T models.Record, D any] interface {
	Collection[T]
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id string, draft D) (T, error)
}

type collection[T models.Record] struct {
	noun     string
	slice    *store.Slice[T]
	repo     repository.Resource[T]
	validate *validator.Validate
	// changed runs after every successful create, update or remove.
	changed func(ctx context.Context)
}

func newCollection[T models.Record](name, noun string, repo repository.Resource[T], initial []T, opts ...store.Option) *collection[T] {
	return &collection[T]{
		noun:     noun,
		slice:    store.New(name, initial, opts...),
		repo:     repo,
		validate: utils.NewValidator(),
	}
}

func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	t := c.slice.Begin()

	items, err := c.repo.List(ctx)
	if err != nil {
		return nil, c.reject(ctx, t, "list", err)
	}

	if !c.slice.Replace(t, items) {
		c.logStale(ctx, "list")
	}

	return items, nil
}

func (c *collection[T]) Get(ctx context.Context, id string) (T, error) {
	if item, ok := c.slice.Find(id); ok {
		return item, nil
	}

	return c.repo.Get(ctx, id)
}

func (c *collection[T]) Remove(ctx context.Context, id string) error {
	t := c.slice.Begin()

	if err := c.repo.Delete(ctx, id); err != nil {
		return c.reject(ctx, t, "remove", err)
	}

	if !c.slice.RemoveByID(t, id) {
		c.logSuperseded(ctx, "remove")
	}

	middleware.LoggerFromContext(ctx).Info("Record removed", slog.String("kind", c.noun), slog.String("id", id))
	c.notify(ctx)

	return nil
}

func (c *collection[T]) Snapshot() store.State[T] {
	return c.slice.Snapshot()
}

func (c *collection[T]) Find(id string) (T, bool) {
	return c.slice.Find(id)
}

func (c *collection[T]) ClearError() {
	c.slice.ClearError()
}

// create validates draft and lets build turn it into the backend payload
// before a ticket is taken. Local refusals are recorded on the slice like
// backend failures but leave an operation in flight current.
func (c *collection[T]) create(ctx context.Context, draft any, build func() (any, error)) (T, error) {
	var zero T

	payload, err := c.prepare(draft, build)
	if err != nil {
		return zero, c.refuse(ctx, "create", err)
	}

	t := c.slice.Begin()

	item, err := c.repo.Create(ctx, payload)
	if err != nil {
		return zero, c.reject(ctx, t, "create", err)
	}

	if !c.slice.Append(t, item) {
		c.logSuperseded(ctx, "create")
	}

	middleware.LoggerFromContext(ctx).Info("Record created", slog.String("kind", c.noun), slog.String("id", item.GetID()))
	c.notify(ctx)

	return item, nil
}

func (c *collection[T]) update(ctx context.Context, id string, draft any, build func() (any, error)) (T, error) {
	var zero T

	payload, err := c.prepare(draft, build)
	if err != nil {
		return zero, c.refuse(ctx, "update", err)
	}

	t := c.slice.Begin()

	item, err := c.repo.Update(ctx, id, payload)
	if err != nil {
		return zero, c.reject(ctx, t, "update", err)
	}

	if !c.slice.ReplaceByID(t, item) {
		c.logSuperseded(ctx, "update")
	}

	middleware.LoggerFromContext(ctx).Info("Record updated", slog.String("kind", c.noun), slog.String("id", id))
	c.notify(ctx)

	return item, nil
}

func (c *collection[T]) notify(ctx context.Context) {
	if c.changed != nil {
		c.changed(ctx)
	}
}

func (c *collection[T]) prepare(draft any, build func() (any, error)) (any, error) {
	if err := utils.ValidateStruct(c.validate, draft); err != nil {
		return nil, err
	}

	return build()
}

// reject records the failure of a ticketed operation on the slice and hands
// err back unchanged.
func (c *collection[T]) reject(ctx context.Context, t store.Ticket, op string, err error) error {
	c.logFailure(ctx, op, err)

	if !c.slice.Fail(t, failureMessage(err)) {
		c.logStale(ctx, op)
	}

	return err
}

// refuse records a failure that happened before any ticket was taken.
func (c *collection[T]) refuse(ctx context.Context, op string, err error) error {
	c.logFailure(ctx, op, err)
	c.slice.Reject(failureMessage(err))

	return err
}

func (c *collection[T]) logFailure(ctx context.Context, op string, err error) {
	logger := middleware.LoggerFromContext(ctx)

	if appErrors.HasCode(err, appErrors.ErrCodeValidation) {
		logger.Warn("Rejected invalid input", slog.String("kind", c.noun), slog.String("op", op), slog.String("error", err.Error()))
	} else {
		logger.Error("Backend operation failed", slog.String("kind", c.noun), slog.String("op", op), slog.String("error", err.Error()))
	}
}

func (c *collection[T]) logStale(ctx context.Context, op string) {
	middleware.LoggerFromContext(ctx).Warn("Discarded stale completion",
		slog.String("slice", c.slice.Name()),
		slog.String("op", op),
	)
}

// logSuperseded notes a mutation that landed after a newer operation began.
// The collection holds it, but the status belongs to the newer operation.
func (c *collection[T]) logSuperseded(ctx context.Context, op string) {
	middleware.LoggerFromContext(ctx).Debug("Applied superseded completion",
		slog.String("slice", c.slice.Name()),
		slog.String("op", op),
	)
}

// failureMessage picks the text shown to the operator: the backend's own
// message when it sent one, else the error summary.
func failureMessage(err error) string {
	if appErr, ok := appErrors.IsAppError(err); ok {
		if appErr.Detail != "" && appErr.Code != appErrors.ErrCodeValidation {
			return appErr.Detail
		}
		return appErr.Message
	}

	return err.Error()
}
