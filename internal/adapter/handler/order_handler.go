package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rl1809/campus-market/internal/core/service"
)

type PlaceOrderRequest struct {
	ItemID string `json:"item_id"`
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "missing_fields", "item_id is required")
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), userFrom(r).ID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotPurchasable):
			writeError(w, http.StatusConflict, "item_not_purchasable", "the item is no longer for sale")
		case errors.Is(err, service.ErrSelfPurchase):
			writeError(w, http.StatusBadRequest, "self_purchase", "you cannot buy your own listing")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context(), userFrom(r).ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), userFrom(r).ID, chi.URLParam(r, "id"))
	if err != nil {
		// The order may exist but belong to someone else; both cases read as
		// not found so callers cannot probe other users' trades.
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "no such order")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}
