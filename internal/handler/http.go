package handler

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"order-viewer/internal/entities"
	"order-viewer/internal/present"
	"order-viewer/internal/service"
	"order-viewer/pkg/utils"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/page.html
var templatesFS embed.FS

const emptyInputMessage = "Please enter an order number"

type LookupService interface {
	Submit(ctx context.Context, raw string) (service.Snapshot, error)
	Snapshot() service.Snapshot
}

type HTTPHandler struct {
	logger *slog.Logger
	svc    LookupService
	page   *template.Template
}

func NewHTTPHandler(logger *slog.Logger, svc LookupService) *HTTPHandler {
	return &HTTPHandler{
		logger: logger.With(slog.String("handler", "http")),
		svc:    svc,
		page:   template.Must(template.ParseFS(templatesFS, "templates/page.html")),
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/lookup", h.Lookup)
	r.Get("/api/order/{order_uid}", h.GetDisplayModel)
}

type pageData struct {
	OrderUID string
	Error    string
	Model    *present.DisplayModel
}

// Index renders the lookup page with the current view state.
func (h *HTTPHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageFromSnapshot("", h.svc.Snapshot()))
}

// Lookup handles the form submit and renders the outcome.
func (h *HTTPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	lookupsInFlight.Inc()
	defer lookupsInFlight.Dec()

	raw := r.FormValue("order_uid")

	snap, err := h.svc.Submit(r.Context(), raw)
	observeLookup(start, snap, err)

	if errors.Is(err, entities.ErrEmptyOrderUID) {
		h.render(w, r, pageData{OrderUID: raw, Error: emptyInputMessage})
		return
	}

	h.render(w, r, pageFromSnapshot(raw, snap))
}

// GetDisplayModel возвращает отображаемое представление заказа.
// @Summary      Look up an order
// @Description  Fetches the order from the order service and returns its render-ready projection
// @Tags         orders
// @Param        order_uid   path      string  true  "Order identifier"
// @Success      200  {object}  present.DisplayModel
// @Failure      400  {object}  utils.ErrorResponse "Blank identifier"
// @Failure      502  {object}  utils.ErrorResponse "Retrieval failed"
// @Router       /api/order/{order_uid} [get]
func (h *HTTPHandler) GetDisplayModel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	lookupsInFlight.Inc()
	defer lookupsInFlight.Dec()

	// chi yields the param from RawPath when the URL was escaped, so it
	// must be decoded here; a value that fails unescaping is passed
	// through unchanged.
	raw := chi.URLParam(r, "order_uid")
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}

	snap, err := h.svc.Submit(r.Context(), raw)
	observeLookup(start, snap, err)

	if errors.Is(err, entities.ErrEmptyOrderUID) {
		utils.WriteError(w, "order uid is required", http.StatusBadRequest)
		return
	}

	// The snapshot of a superseded submission belongs to the newer
	// lookup; it must never be served as this request's result.
	if errors.Is(err, entities.ErrLookupSuperseded) {
		utils.WriteError(w, entities.ErrLookupSuperseded.Error(), http.StatusConflict)
		return
	}

	switch snap.State {
	case service.StateSuccess:
		utils.WriteJSON(w, present.Present(snap.Order), http.StatusOK)
	case service.StateFailure:
		utils.WriteError(w, snap.Err, http.StatusBadGateway)
	default:
		utils.WriteError(w, entities.ErrLookupSuperseded.Error(), http.StatusConflict)
	}
}

func pageFromSnapshot(raw string, snap service.Snapshot) pageData {
	data := pageData{OrderUID: raw}
	switch snap.State {
	case service.StateSuccess:
		model := present.Present(snap.Order)
		data.Model = &model
	case service.StateFailure:
		data.Error = snap.Err
	}
	return data
}

func (h *HTTPHandler) render(w http.ResponseWriter, r *http.Request, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func observeLookup(start time.Time, snap service.Snapshot, err error) {
	lookupsTotal.WithLabelValues(lookupOutcome(snap, err)).Inc()
	lookupDuration.Observe(time.Since(start).Seconds())
}

func lookupOutcome(snap service.Snapshot, err error) string {
	switch {
	case errors.Is(err, entities.ErrEmptyOrderUID):
		return "validation_error"
	case errors.Is(err, entities.ErrLookupSuperseded):
		return "superseded"
	case snap.State == service.StateSuccess:
		return "success"
	case snap.State == service.StateFailure:
		return "failure"
	default:
		return "superseded"
	}
}
