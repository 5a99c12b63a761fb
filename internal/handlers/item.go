package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lostfound-app/apiserver/internal/services"
	"github.com/lostfound-app/apiserver/internal/store"
	"github.com/lostfound-app/apiserver/types"
)

// ItemHandler provides HTTP handlers for lost/found items.
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler constructs a handler with the provided service.
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ItemRouter registers item routes on the given router. Reads are
// public; mutations go through the auth middleware.
func ItemRouter(r chi.Router, itemService *services.ItemService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewItemHandler(itemService)

	r.Get("/", handler.ListItems)
	r.With(authMiddleware).Post("/", handler.CreateItem)
	r.Get("/type/{itemType}", handler.ListItemsByType)
	r.Route("/{itemID}", func(r chi.Router) {
		r.Get("/", handler.GetItem)
		r.With(authMiddleware).Put("/", handler.UpdateItem)
		r.With(authMiddleware).Delete("/", handler.DeleteItem)
	})
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) ListItemsByType(w http.ResponseWriter, r *http.Request) {
	itemType := chi.URLParam(r, "itemType")
	if !types.ValidItemType(itemType) {
		writeError(w, http.StatusBadRequest, "invalid item type")
		return
	}

	items, err := h.itemService.ListByType(r.Context(), itemType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	req, err := parseItemRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.itemService.Create(r.Context(), req.toItem(), claims.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "itemID")

	req, err := parseItemRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.itemService.Update(r.Context(), id, req.toItem(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "item not found")
		case errors.Is(err, services.ErrNotOwner):
			writeError(w, http.StatusForbidden, "forbidden")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update item")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "itemID")

	if err := h.itemService.Delete(r.Context(), id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "item not found")
		case errors.Is(err, services.ErrNotOwner):
			writeError(w, http.StatusForbidden, "forbidden")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete item")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ItemUpsertRequest is the JSON payload for creating or replacing an
// item. Ids, the owner, and record timestamps are server-assigned and
// deliberately absent.
type ItemUpsertRequest struct {
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	Date            time.Time `json:"date"`
	ContactName     string    `json:"contactName"`
	ContactPhone    string    `json:"contactPhone"`
	ContactEmail    string    `json:"contactEmail"`
	ContactTelegram string    `json:"contactTelegram"`
	ImageURL        string    `json:"imageUrl"`
}

func (req ItemUpsertRequest) toItem() types.Item {
	return types.Item{
		Type:            req.Type,
		Status:          req.Status,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Location:        req.Location,
		Date:            req.Date,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		ContactTelegram: req.ContactTelegram,
		ImageURL:        req.ImageURL,
	}
}

func parseItemRequest(r *http.Request) (ItemUpsertRequest, error) {
	var req ItemUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ItemUpsertRequest{}, errors.New("invalid request")
	}

	req.Type = strings.TrimSpace(req.Type)
	req.Status = strings.TrimSpace(req.Status)
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)
	req.Location = strings.TrimSpace(req.Location)
	req.ContactName = strings.TrimSpace(req.ContactName)
	req.ContactPhone = strings.TrimSpace(req.ContactPhone)
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)
	req.ContactTelegram = strings.TrimSpace(req.ContactTelegram)
	req.ImageURL = strings.TrimSpace(req.ImageURL)

	if !types.ValidItemType(req.Type) {
		return ItemUpsertRequest{}, errors.New("type must be lost or found")
	}
	if req.Status != "" && !types.ValidItemStatus(req.Status) {
		return ItemUpsertRequest{}, errors.New("invalid status")
	}
	if req.Title == "" {
		return ItemUpsertRequest{}, errors.New("title is required")
	}
	if req.Description == "" {
		return ItemUpsertRequest{}, errors.New("description is required")
	}
	if req.Category == "" {
		return ItemUpsertRequest{}, errors.New("category is required")
	}
	if req.Location == "" {
		return ItemUpsertRequest{}, errors.New("location is required")
	}
	if req.Date.IsZero() {
		return ItemUpsertRequest{}, errors.New("date is required")
	}
	if req.ContactName == "" {
		return ItemUpsertRequest{}, errors.New("contact name is required")
	}
	if req.ContactPhone == "" {
		return ItemUpsertRequest{}, errors.New("contact phone is required")
	}
	if req.ContactEmail == "" {
		return ItemUpsertRequest{}, errors.New("contact email is required")
	}

	return req, nil
}
