package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/rl1809/campus-market/internal/core/domain"
	"github.com/rl1809/campus-market/internal/core/service"
)

type Handler struct {
	auth       *service.AuthService
	users      *service.UserService
	categories *service.CategoryService
	items      *service.ItemService
	orders     *service.OrderService
}

func New(auth *service.AuthService, users *service.UserService, categories *service.CategoryService,
	items *service.ItemService, orders *service.OrderService) *Handler {
	return &Handler{
		auth:       auth,
		users:      users,
		categories: categories,
		items:      items,
		orders:     orders,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Get("/users", h.ListUsers)
		r.Get("/users/{id}", h.GetUser)
		r.Get("/categories", h.ListCategories)
		r.Get("/categories/{id}", h.GetCategory)
		r.Get("/items", h.ListItems)
		r.Get("/items/{id}", h.GetItem)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.Me)
			r.Get("/me/items", h.MyItems)
			r.Delete("/users/{id}", h.DeleteUser)
			r.Post("/items", h.CreateItem)
			r.Put("/items/{id}", h.UpdateItem)
			r.Delete("/items/{id}", h.DeleteItem)
			r.Post("/orders", h.PlaceOrder)
			r.Get("/orders", h.ListOrders)
			r.Get("/orders/{id}", h.GetOrder)
		})
	})

	return r
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err string, message string) {
	writeJSON(w, status, ErrorResponse{Error: err, Message: message})
}

type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	SchoolName string    `json:"school_name"`
	Profile    string    `json:"profile,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// toUserResponse never exposes the password hash.
func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		SchoolName: u.SchoolName,
		Profile:    u.Profile,
		CreatedAt:  u.CreatedAt,
	}
}

type ItemResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	OwnerID     string          `json:"owner_id"`
	CategoryID  string          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Price:       i.Price,
		Status:      string(i.Status),
		OwnerID:     i.OwnerID,
		CategoryID:  i.CategoryID,
		CreatedAt:   i.CreatedAt,
	}
}

type OrderResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	BuyerID   string    `json:"buyer_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		ItemID:    o.ItemID,
		BuyerID:   o.BuyerID,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}
