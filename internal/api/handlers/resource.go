package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	"github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	service "github.com/clothingmenvy-dot/menvy-client/internal/services"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils/response"
	"github.com/clothingmenvy-dot/menvy-client/internal/views"
)

// ResourceHandler exposes one entity slice over HTTP. Drafts are decoded here
// and validated by the service so that a rejected draft also lands on the
// slice's error state.
type ResourceHandler[T models.Record, D any] struct {
	noun     string
	service  service.Editor[T, D]
	search   []views.Field[T]
	filters  func(url.Values) []views.Matcher[T]
	stamp    func(draft *D, claims *models.Claims)
	pageSize int
}

type ResourceOption[T models.Record, D any] func(*ResourceHandler[T, D])

// WithFilters adds exact-match filters read from the query string.
func WithFilters[T models.Record, D any](filters func(url.Values) []views.Matcher[T]) ResourceOption[T, D] {
	return func(h *ResourceHandler[T, D]) { h.filters = filters }
}

// WithOwner lets a draft pick up the signed-in operator before it is sent.
func WithOwner[T models.Record, D any](stamp func(draft *D, claims *models.Claims)) ResourceOption[T, D] {
	return func(h *ResourceHandler[T, D]) { h.stamp = stamp }
}

func WithPageSize[T models.Record, D any](size int) ResourceOption[T, D] {
	return func(h *ResourceHandler[T, D]) {
		if size > 0 {
			h.pageSize = size
		}
	}
}

func NewResourceHandler[T models.Record, D any](noun string, svc service.Editor[T, D], search []views.Field[T], opts ...ResourceOption[T, D]) *ResourceHandler[T, D] {
	h := &ResourceHandler[T, D]{
		noun:     noun,
		service:  svc,
		search:   search,
		pageSize: views.DefaultPageSize,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// List refreshes the slice from the backend unless refresh=false, then
// returns one page of the search result.
//
// for eg: GET /api/v1/products?search=cap&category=Clothing&page=2&pageSize=10
//
//	@Summary		Search, filter and page a collection
//	@Tags			Collections
//	@Produce		json
//	@Param			resource path string true "Collection" Enums(products, categories, brands, sellers, sales, purchases, users)
//	@Param			search query string false "Case-insensitive search term"
//	@Param			page query int false "1-based page"
//	@Param			pageSize query int false "Items per page"
//	@Success		200 {object} views.Page "One page"
//	@Failure		400 {object} response.ErrorResponse "Invalid page or page size"
//	@Failure		403 {object} response.ErrorResponse "Products area is locked"
//	@Security		BearerAuth
//	@Router			/{resource} [get]
func (h *ResourceHandler[T, D]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		page, err := intParam(query, "page", 1)
		if err != nil {
			response.Error(w, err)
			return
		}

		pageSize, err := intParam(query, "pageSize", h.pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		if query.Get("refresh") != "false" {
			if _, err := h.service.List(r.Context()); err != nil {
				logger.Error("Failed to fetch "+h.noun+" list", slog.String("error", err.Error()))
				response.Error(w, err)
				return
			}
		}

		var matchers []views.Matcher[T]
		if h.filters != nil {
			matchers = h.filters(query)
		}

		result, err := views.Query(h.service.Snapshot().Items, query.Get("search"), h.search, pageSize, page, matchers...)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)

	}
}

// Get godoc
//	@Summary		One record, local copy first
//	@Tags			Collections
//	@Produce		json
//	@Param			resource path string true "Collection"
//	@Param			id path string true "Record id"
//	@Success		200 {object} object "Record"
//	@Failure		404 {object} response.ErrorResponse "Not found"
//	@Security		BearerAuth
//	@Router			/{resource}/{id} [get]
func (h *ResourceHandler[T, D]) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Invalid "+h.noun+" id"))
			return
		}

		item, err := h.service.Get(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get "+h.noun, slog.String("id", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)

	}
}

// Create godoc
//	@Summary		Create a record
//	@Tags			Collections
//	@Accept			json
//	@Produce		json
//	@Param			resource path string true "Collection"
//	@Param			draft body object true "Draft of the record"
//	@Success		201 {object} object "Created record"
//	@Failure		400 {object} response.ErrorResponse "Validation error"
//	@Security		BearerAuth
//	@Router			/{resource} [post]
func (h *ResourceHandler[T, D]) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		draft, ok := h.decode(w, r)
		if !ok {
			return
		}

		item, err := h.service.Create(r.Context(), draft)
		if err != nil {
			logger.Warn("Failed to create "+h.noun, slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info(h.noun+" created", slog.String("id", item.GetID()))
		response.Success(w, http.StatusCreated, item)

	}
}

// Update godoc
//	@Summary		Replace a record
//	@Tags			Collections
//	@Accept			json
//	@Produce		json
//	@Param			resource path string true "Collection"
//	@Param			id path string true "Record id"
//	@Param			draft body object true "Draft of the record"
//	@Success		200 {object} object "Updated record"
//	@Failure		400 {object} response.ErrorResponse "Validation error"
//	@Security		BearerAuth
//	@Router			/{resource}/{id} [put]
func (h *ResourceHandler[T, D]) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Invalid "+h.noun+" id"))
			return
		}

		draft, ok := h.decode(w, r)
		if !ok {
			return
		}

		item, err := h.service.Update(r.Context(), id, draft)
		if err != nil {
			logger.Warn("Failed to update "+h.noun, slog.String("id", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info(h.noun+" updated", slog.String("id", id))
		response.Success(w, http.StatusOK, item)

	}
}

// Delete godoc
//	@Summary		Delete a record
//	@Tags			Collections
//	@Param			resource path string true "Collection"
//	@Param			id path string true "Record id"
//	@Success		204 "Deleted"
//	@Failure		400 {object} response.ErrorResponse "System entries cannot be deleted"
//	@Security		BearerAuth
//	@Router			/{resource}/{id} [delete]
func (h *ResourceHandler[T, D]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Invalid "+h.noun+" id"))
			return
		}

		if err := h.service.Remove(r.Context(), id); err != nil {
			logger.Warn("Failed to delete "+h.noun, slog.String("id", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info(h.noun+" deleted", slog.String("id", id))
		response.NoContent(w)

	}
}

// State reports the slice as the console last saw it, without a fetch.
//
//	@Summary		Local collection state without a fetch
//	@Tags			Collections
//	@Produce		json
//	@Param			resource path string true "Collection"
//	@Success		200 {object} store.State "Collection state"
//	@Security		BearerAuth
//	@Router			/{resource}/state [get]
func (h *ResourceHandler[T, D]) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.service.Snapshot())
	}
}

// ClearError godoc
//	@Summary		Clear the recorded error
//	@Tags			Collections
//	@Param			resource path string true "Collection"
//	@Success		204 "Cleared"
//	@Security		BearerAuth
//	@Router			/{resource}/error [delete]
func (h *ResourceHandler[T, D]) ClearError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.service.ClearError()
		response.NoContent(w)
	}
}

func (h *ResourceHandler[T, D]) decode(w http.ResponseWriter, r *http.Request) (D, bool) {
	var draft D

	if err := utils.DecodeJSONBody(r, &draft); err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return draft, false
	}

	if h.stamp != nil {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return draft, false
		}
		h.stamp(&draft, claims)
	}

	return draft, true
}

func intParam(query url.Values, key string, fallback int) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.AddValidationError(key, "must be a whole number")
	}

	return n, nil
}

// ProductFilters reads the category and brand filters of the products view.
func ProductFilters(query url.Values) []views.Matcher[models.Product] {
	return []views.Matcher[models.Product]{
		{Field: views.ProductCategory, Want: query.Get("category")},
		{Field: views.ProductBrand, Want: query.Get("brand")},
	}
}

// StampCatalogOwner records the operator as the owner of a category or brand.
func StampCatalogOwner(draft *models.CatalogDraft, claims *models.Claims) {
	draft.UserID = claims.UID
}
