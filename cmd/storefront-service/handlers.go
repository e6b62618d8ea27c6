package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmoralesc/campus-delivery/internal/cart"
	"github.com/rmoralesc/campus-delivery/internal/httpx"
	"github.com/rmoralesc/campus-delivery/internal/order"
	"github.com/rmoralesc/campus-delivery/internal/product"
	"github.com/rmoralesc/campus-delivery/internal/store"
	"github.com/rmoralesc/campus-delivery/internal/user"
)

// Every handler converts failures into {ok:false, error}; no error escapes an
// operation boundary as a panic or a bare 500 body.
func fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"ok": false, "error": err.Error()})
}

//
// ----- stores (public) -----
//

type storeWithItems struct {
	store.Store
	Items []product.Product `json:"items"`
}

// listStoresHandler godoc
// @Summary List all stores with their products
// @Produce json
// @Success 200 {array} main.storeWithItems
// @Router /api/stores [get]
func listStoresHandler(stores *store.Service, products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := stores.List(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to fetch stores"))
			return
		}
		out := make([]storeWithItems, 0, len(all))
		for _, s := range all {
			items, err := products.ListByStore(c.Request.Context(), s.ID)
			if err != nil {
				fail(c, http.StatusInternalServerError, errors.New("failed to fetch stores"))
				return
			}
			if items == nil {
				items = []product.Product{}
			}
			out = append(out, storeWithItems{Store: s, Items: items})
		}
		c.JSON(http.StatusOK, out)
	}
}

func getStoreHandler(stores *store.Service, products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := stores.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fail(c, http.StatusNotFound, err)
				return
			}
			fail(c, http.StatusInternalServerError, errors.New("failed to fetch store"))
			return
		}
		items, err := products.ListByStore(c.Request.Context(), s.ID)
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to fetch store"))
			return
		}
		if items == nil {
			items = []product.Product{}
		}
		c.JSON(http.StatusOK, storeWithItems{Store: *s, Items: items})
	}
}

//
// ----- stores (admin) -----
//

// createStoreHandler godoc
// @Summary Create a store
// @Accept json
// @Produce json
// @Param store body store.CreateStoreRequest true "store"
// @Success 201 {object} store.Store
// @Router /admin/stores [post]
func createStoreHandler(stores *store.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req store.CreateStoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		s, err := stores.Create(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrMissingFields):
				fail(c, http.StatusBadRequest, err)
			case errors.Is(err, store.ErrAlreadyExist):
				fail(c, http.StatusConflict, err)
			default:
				fail(c, http.StatusInternalServerError, errors.New("failed to create store"))
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "store": s})
	}
}

func updateStoreHandler(stores *store.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req store.UpdateStoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		if err := stores.Update(c.Request.Context(), req); err != nil {
			switch {
			case errors.Is(err, store.ErrMissingFields):
				fail(c, http.StatusBadRequest, err)
			case errors.Is(err, store.ErrNotFound):
				fail(c, http.StatusNotFound, err)
			default:
				fail(c, http.StatusInternalServerError, errors.New("failed to update store"))
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// deleteStoreHandler godoc
// @Summary Delete a store and everything referencing it
// @Produce json
// @Param slug path string true "store identifier"
// @Success 200 {object} map[string]any
// @Router /admin/stores/{slug} [delete]
func deleteStoreHandler(stores *store.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// deleting a slug that matches nothing is still ok:true
		if err := stores.Delete(c.Request.Context(), c.Param("slug")); err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to delete store"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func createProductHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		if req.StoreID == "" || req.Name == "" || req.Price == "" {
			fail(c, http.StatusBadRequest, errors.New("store_id, name and price are required"))
			return
		}
		availability := req.Availability
		if availability == "" {
			availability = product.AvailabilityInStock
		}
		p := &product.Product{
			ID:           newID(),
			StoreID:      req.StoreID,
			Name:         req.Name,
			Description:  req.Description,
			Price:        req.Price,
			Availability: availability,
		}
		if err := products.Create(c.Request.Context(), p); err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to create product"))
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func deleteProductHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := products.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to delete product"))
			return
		}
		if !ok {
			fail(c, http.StatusNotFound, product.ErrNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

//
// ----- auth & profile -----
//

func registerHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		u, err := users.Register(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, user.ErrMissingFields):
				fail(c, http.StatusBadRequest, err)
			case errors.Is(err, user.ErrAlreadyExist):
				fail(c, http.StatusConflict, err)
			default:
				fail(c, http.StatusInternalServerError, errors.New("failed to register"))
			}
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

func loginHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		token, u, err := users.Login(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				fail(c, http.StatusUnauthorized, err)
				return
			}
			fail(c, http.StatusInternalServerError, errors.New("failed to login"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": u})
	}
}

// profileHandler returns the user together with their orders already split
// into ongoing and history buckets.
func profileHandler(users *user.Service, orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := httpx.UserID(c)
		u, err := users.Profile(c.Request.Context(), uid)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				fail(c, http.StatusNotFound, err)
				return
			}
			fail(c, http.StatusInternalServerError, errors.New("failed to fetch profile"))
			return
		}
		buckets, err := orders.ListBuckets(c.Request.Context(), uid, 0, 0)
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to fetch orders"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u, "orders": buckets})
	}
}

func updateProfileHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		u, err := users.UpdateProfile(c.Request.Context(), httpx.UserID(c), req)
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to update profile"))
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

//
// ----- cart -----
//

func getCartHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, err := carts.GetOrCreate(c.Request.Context(), httpx.UserID(c))
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to fetch cart"))
			return
		}
		if ct.Items == nil {
			ct.Items = []cart.Item{}
		}
		c.JSON(http.StatusOK, ct)
	}
}

func addCartItemHandler(carts cart.Repository, products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cart.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		if req.ProductID == "" || req.Quantity <= 0 {
			fail(c, http.StatusBadRequest, errors.New("product_id and a positive quantity are required"))
			return
		}
		p, err := products.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				fail(c, http.StatusNotFound, err)
				return
			}
			fail(c, http.StatusInternalServerError, errors.New("failed to add item"))
			return
		}

		ct, err := carts.GetOrCreate(c.Request.Context(), httpx.UserID(c))
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to add item"))
			return
		}
		it := &cart.Item{
			ProductID: p.ID,
			SourceID:  p.StoreID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  req.Quantity,
		}
		if err := carts.AddItem(c.Request.Context(), ct.ID, it); err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to add item"))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
}

func updateCartItemHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		ct, err := carts.GetOrCreate(c.Request.Context(), httpx.UserID(c))
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to update item"))
			return
		}
		if err := carts.UpdateQuantity(c.Request.Context(), ct.ID, c.Param("id"), req.Quantity); err != nil {
			if errors.Is(err, cart.ErrItemNotFound) {
				fail(c, http.StatusNotFound, err)
				return
			}
			fail(c, http.StatusInternalServerError, errors.New("failed to update item"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func removeCartItemHandler(carts cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, err := carts.GetOrCreate(c.Request.Context(), httpx.UserID(c))
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to remove item"))
			return
		}
		if err := carts.RemoveItem(c.Request.Context(), ct.ID, c.Param("id")); err != nil {
			if errors.Is(err, cart.ErrItemNotFound) {
				fail(c, http.StatusNotFound, err)
				return
			}
			fail(c, http.StatusInternalServerError, errors.New("failed to remove item"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

//
// ----- orders -----
//

// placeOrderHandler godoc
// @Summary Place an order from the cart
// @Accept json
// @Produce json
// @Param order body order.PlaceOrderRequest true "order"
// @Success 201 {object} order.Order
// @Router /api/orders [post]
func placeOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		o, err := orders.Place(c.Request.Context(), httpx.UserID(c), req)
		if err != nil {
			if errors.Is(err, order.ErrEmptyOrder) {
				fail(c, http.StatusBadRequest, err)
				return
			}
			fail(c, http.StatusInternalServerError, errors.New("failed to place order"))
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func listOrdersHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		buckets, err := orders.ListBuckets(c.Request.Context(), httpx.UserID(c), 0, 0)
		if err != nil {
			fail(c, http.StatusInternalServerError, errors.New("failed to fetch orders"))
			return
		}
		if buckets.Ongoing == nil {
			buckets.Ongoing = []order.Order{}
		}
		if buckets.History == nil {
			buckets.History = []order.Order{}
		}
		c.JSON(http.StatusOK, buckets)
	}
}

func getOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, items, err := orders.Get(c.Request.Context(), httpx.UserID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				fail(c, http.StatusNotFound, err)
				return
			}
			fail(c, http.StatusInternalServerError, errors.New("failed to fetch order"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": o, "items": items})
	}
}

func cancelOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := orders.Cancel(c.Request.Context(), httpx.UserID(c), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, order.ErrNotFound):
				fail(c, http.StatusNotFound, err)
			case errors.Is(err, order.ErrNotCancellable):
				fail(c, http.StatusConflict, err)
			default:
				fail(c, http.StatusInternalServerError, errors.New("failed to cancel order"))
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func setOrderStatusHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, errors.New("invalid payload"))
			return
		}
		if err := orders.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			if errors.Is(err, order.ErrNotFound) {
				fail(c, http.StatusNotFound, err)
				return
			}
			fail(c, http.StatusBadRequest, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
