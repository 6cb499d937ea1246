package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"inventory-tracker/internal/model"
	"inventory-tracker/internal/service"

	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

const (
	resultIncremented = "Quantity increased by 1"
	resultDecremented = "Quantity decreased by 1"
	resultDeleted     = "deleted"
)

// InventoryHandler handles the inventory page and its AJAX endpoints.
type InventoryHandler struct {
	service  service.InventoryService
	renderer Renderer
	logger   zerolog.Logger
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(service service.InventoryService, renderer Renderer, logger zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		renderer: renderer,
		logger:   logger.With().Str("handler", "inventory").Logger(),
	}
}

// Index handles GET / by rendering the full listing.
func (h *InventoryHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, model.Directive{Kind: model.DirectiveNone})
}

// Submit handles POST /. A product form takes precedence over a location
// form; any other submission selects a listing directive.
func (h *InventoryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidForm, "invalid form submission", h.logger)
		return
	}

	form := r.PostForm

	if _, ok := form["name"]; ok {
		_, err := h.service.AddProduct(r.Context(), model.ProductForm{
			Name:        form.Get("name"),
			Description: form.Get("description"),
			Price:       form.Get("price"),
			Location:    form.Get("product_location"),
			Quantity:    form.Get("quantity"),
		})
		h.redirectAfterWrite(w, r, err)
		return
	}

	if _, ok := form["location"]; ok {
		_, err := h.service.AddLocation(r.Context(), form.Get("location"))
		h.redirectAfterWrite(w, r, err)
		return
	}

	h.render(w, r, service.ParseDirective(form))
}

// redirectAfterWrite sends the browser back to the listing. Rejected input
// leaves the state unchanged and redirects as well.
func (h *InventoryHandler) redirectAfterWrite(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil && !errors.Is(err, model.ErrInvalidValues) && !errors.Is(err, model.ErrMissingName) {
		writeServiceError(w, r, err, h.logger)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *InventoryHandler) render(w http.ResponseWriter, r *http.Request, directive model.Directive) {
	items, err := h.service.List(r.Context(), directive)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	locations, err := h.service.Locations(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = h.renderer.RenderIndex(w, IndexPage{
		Inventory: items,
		Locations: locations,
		Directive: directive,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to render index")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to render page", h.logger)
	}
}

// AddCount handles POST /add_count.
func (h *InventoryHandler) AddCount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bodyID(w, r)
	if !ok {
		return
	}

	quantity, err := h.service.IncrementQuantity(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ResultResponse{Result: resultIncremented, Quantity: &quantity})
}

// DeleteCount handles POST /delete_count.
func (h *InventoryHandler) DeleteCount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bodyID(w, r)
	if !ok {
		return
	}

	quantity, err := h.service.DecrementQuantity(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ResultResponse{Result: resultDecremented, Quantity: &quantity})
}

// DeletePosition handles POST /delete_product, which removes one inventory row.
func (h *InventoryHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bodyID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteInventory(r.Context(), id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ResultResponse{Result: resultDeleted})
}

// DeleteProduct handles POST /api/products/delete. The body id is a product
// id; all inventory rows of the product are removed with it.
func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bodyID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ResultResponse{Result: resultDeleted})
}

// bodyID reads the target id from a JSON body {"id": n} or a form field id.
func (h *InventoryHandler) bodyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req model.InventoryIDRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "id must be an integer", h.logger)
			return 0, false
		}
		req.ID = id
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return 0, false
	}

	if req.ID <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "id must be a positive integer", h.logger)
		return 0, false
	}

	return req.ID, true
}
