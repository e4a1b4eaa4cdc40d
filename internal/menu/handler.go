package menu

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const MaxBodyBytes = 1 << 20

// Handler handles HTTP requests for the catalog
type Handler struct {
	itemRepo MenuItemRepo
	logger   apt.Logger
	config   *apt.Config
	tlm      *telemetry.HTTP
}

type HandlerDeps struct {
	ItemRepo MenuItemRepo
}

// NewHandler creates a new Handler for catalog operations
func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		itemRepo: hd.ItemRepo,
		logger:   logger,
		config:   config,
		tlm:      telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for the catalog
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/menu", func(r chi.Router) {
		r.Get("/", h.ListMenuItems)
		r.Post("/", h.CreateMenuItem)
		r.Post("/seed", h.SeedMenuItems)
		r.Get("/category/{category}", h.ListMenuItemsByCategory)
		r.Get("/{id}", h.GetMenuItem)
		r.Put("/{id}", h.UpdateMenuItem)
	})
}

// ListMenuItems handles GET /menu. Only available items are listed;
// unavailable ones stay retrievable by id.
func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListMenuItems")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	items, err := h.itemRepo.ListAvailable(ctx)
	if err != nil {
		log.Error("cannot list menu items", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not list menu items")
		return
	}

	apt.RespondCollection(w, items, "menu")
}

// ListMenuItemsByCategory handles GET /menu/category/{category}
func (h *Handler) ListMenuItemsByCategory(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListMenuItemsByCategory")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	raw := chi.URLParam(r, "category")
	if raw == "" {
		log.Debug("missing category parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing category parameter")
		return
	}

	// An unknown category is not an error: it matches nothing and the
	// response is an empty collection.
	category := NormalizeCategory(raw)

	items, err := h.itemRepo.ListAvailableByCategory(ctx, category)
	if err != nil {
		log.Error("cannot list menu items by category", "error", err, "category", string(category))
		apt.RespondError(w, http.StatusInternalServerError, "Could not list menu items by category")
		return
	}

	apt.RespondCollection(w, items, "menu")
}

// GetMenuItem handles GET /menu/{id}
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetMenuItem")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	item, err := h.itemRepo.Get(ctx, id)
	if err != nil {
		log.Error("error loading menu item", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusInternalServerError, "Could not load menu item")
		return
	}

	if item == nil {
		apt.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	links := apt.RESTfulLinksFor(item)
	apt.RespondSuccess(w, item, links...)
}

// CreateMenuItem handles POST /menu. This is the catalog-admin path; the
// end-user flow only reads the catalog.
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateMenuItem")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	item, ok := h.decodeMenuItemPayload(w, r, log)
	if !ok {
		return
	}

	item.Category = NormalizeCategory(string(item.Category))
	item.BeforeCreate()

	if validationErrors := ValidateCreateMenuItem(ctx, item); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	if err := h.itemRepo.Create(ctx, item); err != nil {
		log.Error("cannot create menu item", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not create menu item")
		return
	}

	links := apt.RESTfulLinksFor(item)
	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, item, links...)
}

// UpdateMenuItem handles PUT /menu/{id}. Toggling Available off is the soft
// removal path; items are never deleted from the catalog.
func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateMenuItem")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	item, ok := h.decodeMenuItemPayload(w, r, log)
	if !ok {
		return
	}

	item.ID = id
	item.Category = NormalizeCategory(string(item.Category))
	item.BeforeUpdate()

	if validationErrors := ValidateCreateMenuItem(ctx, item); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	if err := h.itemRepo.Save(ctx, item); err != nil {
		log.Error("cannot update menu item", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	links := apt.RESTfulLinksFor(item)
	apt.RespondSuccess(w, item, links...)
}

// SeedMenuItems handles POST /menu/seed. The operation destructively
// replaces the whole catalog, so it is gated behind configuration and meant
// for non-production environments only.
func (h *Handler) SeedMenuItems(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.SeedMenuItems")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	if enabled := h.config.GetStringOrDef("seeding.enabled", "false"); enabled != "true" {
		log.Info("seed endpoint called while disabled")
		apt.RespondError(w, http.StatusForbidden, "Seeding is disabled")
		return
	}

	items, ok := h.decodeSeedPayload(w, r, log)
	if !ok {
		return
	}

	for _, item := range items {
		item.Category = NormalizeCategory(string(item.Category))
		item.BeforeCreate()
	}

	if validationErrors := ValidateSeedItems(ctx, items); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	if err := h.itemRepo.ReplaceAll(ctx, items); err != nil {
		log.Error("cannot seed menu items", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not seed menu items")
		return
	}

	log.Info("catalog replaced by seed", "count", len(items))
	w.WriteHeader(http.StatusCreated)
	apt.RespondCollection(w, items, "menu")
}

// Helper methods

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, log apt.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		log.Debug("missing id parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Debug("invalid id parameter", "id", idStr, "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid id parameter")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) decodeMenuItemPayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (*MenuItem, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}

	var item MenuItem
	if err := json.Unmarshal(body, &item); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	return &item, true
}

func (h *Handler) decodeSeedPayload(w http.ResponseWriter, r *http.Request, log apt.Logger) ([]*MenuItem, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}

	var items []*MenuItem
	if err := json.Unmarshal(body, &items); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	return items, true
}

func (h *Handler) respondValidationErrors(w http.ResponseWriter, errors []ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  "Validation failed",
		"errors": errors,
	})
}
