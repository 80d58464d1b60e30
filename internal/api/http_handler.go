package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"storefront-service/internal/auth"
	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/checkout"
	"storefront-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// sessionHeader carries the browsing-session identifier. Each session
// owns one cart; the storefront client generates the id and sends it on
// every request.
const sessionHeader = "X-Session-ID"

// HTTPHandler holds dependencies for HTTP handlers.
type HTTPHandler struct {
	catalog  *catalog.Catalog
	carts    *cart.Manager
	checkout *checkout.Service
	auth     *auth.Service
	validate *validator.Validate
}

// NewHTTPHandler creates a new HTTPHandler with dependencies.
func NewHTTPHandler(cat *catalog.Catalog, carts *cart.Manager, co *checkout.Service, au *auth.Service) *HTTPHandler {
	return &HTTPHandler{
		catalog:  cat,
		carts:    carts,
		checkout: co,
		auth:     au,
		validate: validator.New(),
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("ERROR: Failed to encode JSON response: %v", err)
			http.Error(w, `{"error": "Internal server error during JSON encoding"}`, http.StatusInternalServerError)
		}
	}
}

// sessionID extracts the session identifier, rejecting the request with
// a 400 when absent. Cart, checkout, and order endpoints require it.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing "+sessionHeader+" header")
		return "", false
	}
	return id, true
}

// --- Catalog Handlers ---

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		respondWithJSON(w, http.StatusOK, h.catalog.ListByCategory(domain.CategorySlug(category)))
		return
	}
	respondWithJSON(w, http.StatusOK, h.catalog.List())
}

func (h *HTTPHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	entry, err := h.catalog.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrEntryNotFound) {
			respondWithError(w, http.StatusNotFound, catalog.ErrEntryNotFound.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to retrieve product")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, entry)
}

// GetKitMeta returns the derived aggregate view data for a kit product.
// A kit whose refs cannot be resolved is a catalog authoring bug; the
// page boundary here degrades it to a generic unavailable state instead
// of crashing the render.
func (h *HTTPHandler) GetKitMeta(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	entry, err := h.catalog.FindBySlug(slug)
	if err != nil {
		respondWithError(w, http.StatusNotFound, catalog.ErrEntryNotFound.Error())
		return
	}
	if !entry.IsKit() {
		respondWithError(w, http.StatusBadRequest, "Product is not a kit")
		return
	}

	meta, err := h.catalog.KitMeta(entry)
	if err != nil {
		var resErr *catalog.ResolutionError
		if errors.As(err, &resErr) {
			log.Printf("ERROR: kit resolution failed: %v", resErr)
			respondWithError(w, http.StatusBadGateway, "Product temporarily unavailable")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to resolve kit")
		return
	}
	respondWithJSON(w, http.StatusOK, meta)
}

// --- Cart Handlers ---

// CartView is the read-only cart state handed to the presentation layer.
type CartView struct {
	Items    []domain.CartLine `json:"items"`
	Count    int               `json:"count"`
	Subtotal int64             `json:"subtotal"`
	IsOpen   bool              `json:"is_open"`
}

func cartView(c *cart.Store) CartView {
	return CartView{
		Items:    c.Items(),
		Count:    c.Count(),
		Subtotal: c.Subtotal(),
		IsOpen:   c.IsOpen(),
	}
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	c := h.carts.ForSession(r.Context(), sid)
	respondWithJSON(w, http.StatusOK, cartView(c))
}

// CartAddInput defines the expected input for adding a line to the cart.
type CartAddInput struct {
	ProductID          string                    `json:"product_id" validate:"required"`
	BundleQuantity     *int                      `json:"bundle_quantity" validate:"omitempty,gt=0"`
	Color              string                    `json:"color,omitempty"`
	Colors             []string                  `json:"colors,omitempty"`
	KitSelectedOptions domain.KitSelectedOptions `json:"kit_selected_options,omitempty"`
	Qty                int                       `json:"qty"`
}

func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var input CartAddInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	entry, err := h.catalog.FindByID(input.ProductID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, catalog.ErrEntryNotFound.Error())
		return
	}

	// A bundle tier is chosen by its pack size; it must exist on the
	// product being added.
	var tier *domain.BundleTier
	if input.BundleQuantity != nil {
		for i := range entry.Bundles {
			if entry.Bundles[i].Quantity == *input.BundleQuantity {
				tier = &entry.Bundles[i]
				break
			}
		}
		if tier == nil {
			respondWithError(w, http.StatusBadRequest, "Unknown bundle tier for product")
			return
		}
	}

	var selected *domain.SelectedOptions
	if input.Color != "" || len(input.Colors) > 0 {
		selected = &domain.SelectedOptions{Color: input.Color, Colors: input.Colors}
	}

	c := h.carts.ForSession(r.Context(), sid)
	line := c.AddItem(r.Context(), entry, cart.AddInput{
		Bundle:             tier,
		SelectedOptions:    selected,
		KitSelectedOptions: input.KitSelectedOptions,
		Qty:                input.Qty,
	})

	respondWithJSON(w, http.StatusCreated, struct {
		Line domain.CartLine `json:"line"`
		Cart CartView        `json:"cart"`
	}{Line: line, Cart: cartView(c)})
}

// CartQtyInput defines the expected input for a quantity update.
type CartQtyInput struct {
	Qty int `json:"qty"`
}

func (h *HTTPHandler) UpdateCartItemQty(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	lineID := chi.URLParam(r, "lineId")

	var input CartQtyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	c := h.carts.ForSession(r.Context(), sid)
	if err := c.UpdateQty(r.Context(), lineID, input.Qty); err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			respondWithError(w, http.StatusNotFound, cart.ErrLineNotFound.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to update quantity")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, cartView(c))
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	c := h.carts.ForSession(r.Context(), sid)
	c.RemoveItem(r.Context(), chi.URLParam(r, "lineId"))
	respondWithJSON(w, http.StatusOK, cartView(c))
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	c := h.carts.ForSession(r.Context(), sid)
	c.Clear(r.Context())
	respondWithJSON(w, http.StatusOK, cartView(c))
}

func (h *HTTPHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	h.setCartVisibility(w, r, func(c *cart.Store) { c.Open() })
}

func (h *HTTPHandler) CloseCart(w http.ResponseWriter, r *http.Request) {
	h.setCartVisibility(w, r, func(c *cart.Store) { c.Close() })
}

func (h *HTTPHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	h.setCartVisibility(w, r, func(c *cart.Store) { c.Toggle() })
}

func (h *HTTPHandler) setCartVisibility(w http.ResponseWriter, r *http.Request, op func(*cart.Store)) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	c := h.carts.ForSession(r.Context(), sid)
	op(c)
	respondWithJSON(w, http.StatusOK, cartView(c))
}

// --- Checkout Handlers ---

// CheckoutInput defines the expected input for placing an order.
type CheckoutInput struct {
	Contact         checkout.Contact         `json:"contact" validate:"required"`
	ShippingAddress checkout.ShippingAddress `json:"shipping_address" validate:"required"`
}

func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var input CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	c := h.carts.ForSession(r.Context(), sid)
	order, err := h.checkout.PlaceOrder(r.Context(), c, sid, input.Contact, input.ShippingAddress)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			respondWithError(w, http.StatusConflict, checkout.ErrEmptyCart.Error())
			return
		}
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			respondWithError(w, http.StatusBadRequest, "Validation failed: "+vErr.Error())
			return
		}
		log.Printf("ERROR: PlaceOrder failed for session %s: %v", sid, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}
	respondWithJSON(w, http.StatusCreated, order)
}

func (h *HTTPHandler) GetLastOrder(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	order, err := h.checkout.LastOrder(r.Context(), sid)
	if err != nil {
		if errors.Is(err, checkout.ErrNoOrder) {
			respondWithError(w, http.StatusNotFound, checkout.ErrNoOrder.Error())
		} else {
			log.Printf("ERROR: GetLastOrder failed for session %s: %v", sid, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to load order")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, order)
}

// --- Auth Handlers (demo flow) ---

// RegisterInput defines the expected input for account creation.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	profile, err := h.auth.Register(r.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			respondWithError(w, http.StatusConflict, auth.ErrEmailExists.Error())
		} else {
			log.Printf("ERROR: Register failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to register")
		}
		return
	}
	respondWithJSON(w, http.StatusCreated, profile)
}

// LoginInput defines the expected input for authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	profile, err := h.auth.Authenticate(r.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		} else {
			log.Printf("ERROR: Login failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to authenticate")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// ResetRequestInput defines the expected input for requesting a reset code.
type ResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *HTTPHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var input ResetRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	code, expires, err := h.auth.RequestPasswordReset(r.Context(), input.Email)
	if err != nil {
		if errors.Is(err, auth.ErrNoAccount) {
			respondWithError(w, http.StatusNotFound, auth.ErrNoAccount.Error())
		} else {
			log.Printf("ERROR: RequestPasswordReset failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to issue reset code")
		}
		return
	}

	// Demo flow: the code is returned in the response instead of emailed.
	respondWithJSON(w, http.StatusOK, struct {
		Code    string `json:"code"`
		Expires string `json:"expires"`
	}{Code: code, Expires: expires.UTC().Format("2006-01-02T15:04:05Z07:00")})
}

// ResetConfirmInput defines the expected input for completing a reset.
type ResetConfirmInput struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func (h *HTTPHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var input ResetConfirmInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := h.auth.ResetPassword(r.Context(), input.Email, input.Code, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidResetCode):
			respondWithError(w, http.StatusBadRequest, auth.ErrInvalidResetCode.Error())
		case errors.Is(err, auth.ErrNoAccount):
			respondWithError(w, http.StatusNotFound, auth.ErrNoAccount.Error())
		default:
			log.Printf("ERROR: ConfirmPasswordReset failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Route Registration ---

// RegisterRoutes sets up the HTTP routes for the service.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", h.GetProductBySlug)
			r.Get("/kit-meta", h.GetKitMeta)
		})
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddCartItem)
		r.Route("/items/{lineId}", func(r chi.Router) {
			r.Patch("/", h.UpdateCartItemQty)
			r.Delete("/", h.RemoveCartItem)
		})
		r.Post("/clear", h.ClearCart)
		r.Post("/open", h.OpenCart)
		r.Post("/close", h.CloseCart)
		r.Post("/toggle", h.ToggleCart)
	})

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Get("/last-order", h.GetLastOrder)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/password-reset/request", h.RequestPasswordReset)
		r.Post("/password-reset/confirm", h.ConfirmPasswordReset)
	})
}
