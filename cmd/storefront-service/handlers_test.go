package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rmoralesc/campus-delivery/internal/product"
	st "github.com/rmoralesc/campus-delivery/internal/store"
)

//
// ===== IN-MEMORY STUBS (implement the package Repository interfaces) =====
//

type stubStoreRepo struct {
	stores map[string]*st.Store // keyed by slug
}

func newStubStoreRepo() *stubStoreRepo { return &stubStoreRepo{stores: map[string]*st.Store{}} }

func (s *stubStoreRepo) Create(ctx context.Context, store *st.Store) error {
	if _, ok := s.stores[store.Slug]; ok {
		return st.ErrAlreadyExist
	}
	cp := *store
	s.stores[store.Slug] = &cp
	return nil
}

func (s *stubStoreRepo) ExistsConflict(ctx context.Context, slug, username, email string) (bool, error) {
	for _, store := range s.stores {
		if store.Slug == slug || store.Username == username || store.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStoreRepo) GetBySlug(ctx context.Context, slug string) (*st.Store, error) {
	store, ok := s.stores[slug]
	if !ok {
		return nil, st.ErrNotFound
	}
	cp := *store
	return &cp, nil
}

func (s *stubStoreRepo) List(ctx context.Context) ([]st.Store, error) {
	out := make([]st.Store, 0, len(s.stores))
	for _, store := range s.stores {
		out = append(out, *store)
	}
	return out, nil
}

func (s *stubStoreRepo) Update(ctx context.Context, originalSlug string, store *st.Store, updatePassword bool) (bool, error) {
	cur, ok := s.stores[originalSlug]
	if !ok {
		return false, nil
	}
	next := *store
	next.ID = cur.ID
	if !updatePassword {
		next.PasswordHash = cur.PasswordHash
	}
	delete(s.stores, originalSlug)
	s.stores[next.Slug] = &next
	return true, nil
}

func (s *stubStoreRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	for slug, store := range s.stores {
		if store.ID == id {
			delete(s.stores, slug)
			return true, nil
		}
	}
	return false, nil
}

type stubProductRepo struct {
	items map[string]*product.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{items: map[string]*product.Product{}}
}

func (s *stubProductRepo) Create(ctx context.Context, p *product.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	cp := *p
	s.items[p.ID] = &cp
	return nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*product.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubProductRepo) ListByStore(ctx context.Context, storeID string) ([]product.Product, error) {
	var out []product.Product
	for _, p := range s.items {
		if p.StoreID == storeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) Update(ctx context.Context, p *product.Product) error {
	cur, ok := s.items[p.ID]
	if !ok {
		return product.ErrNotFound
	}
	if p.Name != "" {
		cur.Name = p.Name
	}
	if p.Price != "" {
		cur.Price = p.Price
	}
	return nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *stubProductRepo) DeleteByStore(ctx context.Context, storeID string) (int64, error) {
	var n int64
	for id, p := range s.items {
		if p.StoreID == storeID {
			delete(s.items, id)
			n++
		}
	}
	return n, nil
}

// cartPrunerFunc adapts a func to the store.CartPruner interface.
type cartPrunerFunc func(ctx context.Context, sourceID string) (int64, error)

func (f cartPrunerFunc) PruneBySource(ctx context.Context, sourceID string) (int64, error) {
	return f(ctx, sourceID)
}

//
// ===== TEST ROUTER (same handlers the main wires) =====
//

func newRouter(stores *st.Service, products product.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/api/stores", listStoresHandler(stores, products))
	r.GET("/api/stores/:slug", getStoreHandler(stores, products))
	r.POST("/admin/stores", createStoreHandler(stores))
	r.PUT("/admin/stores", updateStoreHandler(stores))
	r.DELETE("/admin/stores/:slug", deleteStoreHandler(stores))
	r.POST("/admin/products", createProductHandler(products))
	r.DELETE("/admin/products/:id", deleteProductHandler(products))
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validStoreBody(slug string) map[string]string {
	return map[string]string{
		"id":          slug,
		"name":        "Store " + slug,
		"description": "desc",
		"type":        "snacks",
		"username":    "admin_" + slug,
		"password":    "pw",
		"phone":       "123",
		"email":       slug + "@campus.edu",
	}
}

//
// ===== TESTS =====
//

func TestCreateStore_ThenListedPublicly(t *testing.T) {
	storeRepo := newStubStoreRepo()
	productRepo := newStubProductRepo()
	svc := st.NewService(storeRepo, productRepo, cartPrunerFunc(func(context.Context, string) (int64, error) { return 0, nil }), nil)
	r := newRouter(svc, productRepo)

	w := doJSON(r, http.MethodPost, "/admin/stores", validStoreBody("munchies"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/stores", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d", w.Code)
	}
	var listed []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("want 1 store, got %d", len(listed))
	}
	if listed[0]["id"] != "munchies" {
		t.Errorf("want slug munchies, got %v", listed[0]["id"])
	}
}

func TestCreateStore_DuplicateConflict(t *testing.T) {
	storeRepo := newStubStoreRepo()
	productRepo := newStubProductRepo()
	svc := st.NewService(storeRepo, productRepo, cartPrunerFunc(func(context.Context, string) (int64, error) { return 0, nil }), nil)
	r := newRouter(svc, productRepo)

	if w := doJSON(r, http.MethodPost, "/admin/stores", validStoreBody("munchies")); w.Code != http.StatusCreated {
		t.Fatalf("first create: got %d", w.Code)
	}
	w := doJSON(r, http.MethodPost, "/admin/stores", validStoreBody("munchies"))
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate create: want 409, got %d body=%s", w.Code, w.Body.String())
	}
	if len(storeRepo.stores) != 1 {
		t.Errorf("conflict must not insert, have %d stores", len(storeRepo.stores))
	}
}

func TestCreateStore_MissingFields(t *testing.T) {
	storeRepo := newStubStoreRepo()
	productRepo := newStubProductRepo()
	svc := st.NewService(storeRepo, productRepo, cartPrunerFunc(func(context.Context, string) (int64, error) { return 0, nil }), nil)
	r := newRouter(svc, productRepo)

	body := validStoreBody("munchies")
	body["email"] = "  "
	w := doJSON(r, http.MethodPost, "/admin/stores", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestUpdateStore_RenameSlug(t *testing.T) {
	storeRepo := newStubStoreRepo()
	productRepo := newStubProductRepo()
	svc := st.NewService(storeRepo, productRepo, cartPrunerFunc(func(context.Context, string) (int64, error) { return 0, nil }), nil)
	r := newRouter(svc, productRepo)

	if w := doJSON(r, http.MethodPost, "/admin/stores", validStoreBody("old-name")); w.Code != http.StatusCreated {
		t.Fatalf("create: got %d", w.Code)
	}

	w := doJSON(r, http.MethodPut, "/admin/stores", map[string]string{
		"originalId":  "old-name",
		"id":          "new-name",
		"name":        "Renamed",
		"description": "desc",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: got %d body=%s", w.Code, w.Body.String())
	}

	if w := doJSON(r, http.MethodGet, "/api/stores/old-name", nil); w.Code != http.StatusNotFound {
		t.Errorf("old slug should be gone, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/stores/new-name", nil); w.Code != http.StatusOK {
		t.Errorf("new slug should resolve, got %d", w.Code)
	}
}

func TestUpdateStore_MissingOriginalIsNotFound(t *testing.T) {
	storeRepo := newStubStoreRepo()
	productRepo := newStubProductRepo()
	svc := st.NewService(storeRepo, productRepo, cartPrunerFunc(func(context.Context, string) (int64, error) { return 0, nil }), nil)
	r := newRouter(svc, productRepo)

	w := doJSON(r, http.MethodPut, "/admin/stores", map[string]string{
		"originalId":  "ghost",
		"id":          "ghost",
		"name":        "Ghost",
		"description": "desc",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestDeleteStore_CascadesAndIsIdempotent(t *testing.T) {
	storeRepo := newStubStoreRepo()
	productRepo := newStubProductRepo()
	var pruned []string
	svc := st.NewService(storeRepo, productRepo, cartPrunerFunc(func(_ context.Context, sourceID string) (int64, error) {
		pruned = append(pruned, sourceID)
		return 1, nil
	}), nil)
	r := newRouter(svc, productRepo)

	if w := doJSON(r, http.MethodPost, "/admin/stores", validStoreBody("munchies")); w.Code != http.StatusCreated {
		t.Fatalf("create store: got %d", w.Code)
	}
	target := storeRepo.stores["munchies"].ID

	if w := doJSON(r, http.MethodPost, "/admin/stores", validStoreBody("keeper")); w.Code != http.StatusCreated {
		t.Fatalf("create second store: got %d", w.Code)
	}
	keeper := storeRepo.stores["keeper"].ID

	for i, owner := range []string{target, target, keeper} {
		w := doJSON(r, http.MethodPost, "/admin/products", map[string]any{
			"store_id": owner,
			"name":     fmt.Sprintf("item-%d", i),
			"price":    "10.00",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create product %d: got %d", i, w.Code)
		}
	}

	w := doJSON(r, http.MethodDelete, "/admin/stores/munchies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d body=%s", w.Code, w.Body.String())
	}

	if _, ok := storeRepo.stores["munchies"]; ok {
		t.Error("store row should be gone")
	}
	if left, _ := productRepo.ListByStore(context.Background(), target); len(left) != 0 {
		t.Errorf("deleted store still owns %d products", len(left))
	}
	if left, _ := productRepo.ListByStore(context.Background(), keeper); len(left) != 1 {
		t.Errorf("other store's products must survive, have %d", len(left))
	}
	if len(pruned) != 1 || pruned[0] != target {
		t.Errorf("cart prune for %s expected, got %v", target, pruned)
	}

	// deleting again is still a success with no further side effects
	w = doJSON(r, http.MethodDelete, "/admin/stores/munchies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat delete: got %d", w.Code)
	}
	if len(pruned) != 1 {
		t.Errorf("repeat delete must not prune again, got %v", pruned)
	}
}
