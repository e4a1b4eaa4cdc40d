package order

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campuscanteen/canteen/pkg/event"
)

const MaxBodyBytes = 1 << 20

type Handler struct {
	logger    apt.Logger
	config    *apt.Config
	tlm       *telemetry.HTTP
	orderRepo OrderRepo
	publisher events.Publisher
}

type HandlerDeps struct {
	OrderRepo OrderRepo
	Publisher events.Publisher
}

func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}

	return &Handler{
		config:    config,
		logger:    logger,
		tlm:       telemetry.NewHTTP(),
		orderRepo: hd.OrderRepo,
		publisher: hd.Publisher,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/user/{userID}", h.ListOrdersForUser)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}/status", h.UpdateOrderStatus)
	})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateOrder")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	req, ok := h.decodeOrderCreatePayload(w, r, log)
	if !ok {
		return
	}

	if validationErrors := ValidateOrderCreate(ctx, req); len(validationErrors) > 0 {
		log.Debug("invalid order create request", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	order := NewOrder()
	order.UserID = req.UserID
	order.Items = req.Items
	order.TotalAmount = *req.TotalAmount
	order.PickupTime = req.PickupTime
	order.BeforeCreate()

	if err := h.orderRepo.Create(ctx, order); err != nil {
		log.Error("cannot create order", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not create order")
		return
	}

	h.publishOrderCreated(ctx, order)

	links := apt.RESTfulLinksFor(order)
	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, order, links...)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetOrder")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	order, err := h.orderRepo.Get(ctx, id)
	if err != nil {
		log.Error("error loading order", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusInternalServerError, "Could not load order")
		return
	}

	if order == nil {
		apt.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	links := apt.RESTfulLinksFor(order)
	apt.RespondSuccess(w, order, links...)
}

func (h *Handler) ListOrdersForUser(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListOrdersForUser")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		log.Debug("missing userID parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing userID parameter")
		return
	}

	orders, err := h.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Error("error retrieving orders", "error", err, "user_id", userID)
		apt.RespondError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}

	apt.RespondCollection(w, orders, "orders")
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateOrderStatus")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	req, ok := h.decodeStatusUpdatePayload(w, r, log)
	if !ok {
		return
	}

	if validationErrors := ValidateStatusUpdate(ctx, req); len(validationErrors) > 0 {
		log.Debug("invalid status", "status", req.Status)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	order, err := h.orderRepo.Get(ctx, id)
	if err != nil {
		log.Error("error loading order", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusInternalServerError, "Could not load order")
		return
	}

	if order == nil {
		apt.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	previousStatus := order.Status

	// Any status is writable from any current status, including back out of
	// completed or cancelled. Concurrent updates are last-write-wins.
	switch req.Status {
	case StatusPending:
		order.MarkAsPending()
	case StatusPreparing:
		order.MarkAsPreparing()
	case StatusReady:
		order.MarkAsReady()
	case StatusCompleted:
		order.MarkAsCompleted()
	case StatusCancelled:
		order.Cancel()
	}

	if err := h.orderRepo.Save(ctx, order); err != nil {
		log.Error("cannot update order", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusInternalServerError, "Could not update order")
		return
	}

	h.publishStatusChanged(ctx, order, previousStatus)

	links := apt.RESTfulLinksFor(order)
	apt.RespondSuccess(w, order, links...)
}

// Event publication is best effort: a broker outage must never fail the
// order operation that triggered it.

func (h *Handler) publishOrderCreated(ctx context.Context, o *Order) {
	if h.publisher == nil {
		return
	}

	evt := event.OrderEvent{
		EventType:   event.EventOrderCreated,
		OccurredAt:  time.Now(),
		OrderID:     o.ID.String(),
		UserID:      o.UserID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount.Amount,
		Currency:    o.TotalAmount.CurrencyCode,
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("cannot marshal order created event", "error", err, "order_id", o.ID.String())
		return
	}

	if err := h.publisher.Publish(ctx, event.OrdersTopic, payload); err != nil {
		h.logger.Error("cannot publish order created event", "error", err, "order_id", o.ID.String())
	}
}

func (h *Handler) publishStatusChanged(ctx context.Context, o *Order, previousStatus string) {
	if h.publisher == nil {
		return
	}

	evt := event.OrderEvent{
		EventType:      event.EventOrderStatusChanged,
		OccurredAt:     time.Now(),
		OrderID:        o.ID.String(),
		UserID:         o.UserID,
		Status:         o.Status,
		PreviousStatus: previousStatus,
		TotalAmount:    o.TotalAmount.Amount,
		Currency:       o.TotalAmount.CurrencyCode,
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("cannot marshal order status event", "error", err, "order_id", o.ID.String())
		return
	}

	if err := h.publisher.Publish(ctx, event.OrdersTopic, payload); err != nil {
		h.logger.Error("cannot publish order status event", "error", err, "order_id", o.ID.String())
	}
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

func (h *Handler) decodeOrderCreatePayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (OrderCreateRequest, bool) {
	var req OrderCreateRequest

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return req, false
	}

	if err := json.Unmarshal(body, &req); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return req, false
	}

	return req, true
}

func (h *Handler) decodeStatusUpdatePayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (StatusUpdateRequest, bool) {
	var req StatusUpdateRequest

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return req, false
	}

	if err := json.Unmarshal(body, &req); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return req, false
	}

	return req, true
}

func (h *Handler) respondValidationErrors(w http.ResponseWriter, errors []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  "Validation failed",
		"errors": errors,
	})
}
