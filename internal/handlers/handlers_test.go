package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarovs/kross-storefront/internal/checkout"
	"github.com/akbarovs/kross-storefront/internal/handlers"
	"github.com/akbarovs/kross-storefront/internal/pricing"
	"github.com/akbarovs/kross-storefront/internal/routes"
	"github.com/akbarovs/kross-storefront/internal/shop"
)

const upstreamProducts = `[
	{"id": 1, "name": "Air Max 90", "brand": "Nike", "price": 500000, "category": "men",
	 "image": "https://cdn.example/1.jpg", "sizes": [{"size": 40}, {"size": 41}],
	 "description": {"uz": "Klassik model", "ru": "Классическая модель"}},
	{"id": 2, "name": "Ultraboost", "brand": "Adidas", "price": "300000", "category": "women",
	 "image": "https://cdn.example/2.jpg", "sizes": [{"size": 37}], "is_new": true,
	 "description": {"uz": "Yengil", "ru": "Лёгкие"}},
	{"id": 3, "name": "Air Force 1", "brand": "Nike", "price": 700000, "category": "unisex",
	 "image": "https://cdn.example/3.jpg", "sizes": [{"size": 41}, {"size": 42}], "is_sale": true,
	 "original_price": 875000,
	 "description": {"uz": "Oq", "ru": "Белые"}}
]`

// testEnv wires a router against a fake upstream API.
type testEnv struct {
	router     *gin.Engine
	upstream   *httptest.Server
	orderCalls *atomic.Int64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var orderCalls atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/products/" && r.Method == http.MethodGet:
			w.Write([]byte(`{"results": ` + upstreamProducts + `}`))
		case strings.HasPrefix(r.URL.Path, "/products/") && r.Method == http.MethodGet:
			var products []json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(upstreamProducts), &products))
			switch strings.Trim(strings.TrimPrefix(r.URL.Path, "/products/"), "/") {
			case "1":
				w.Write(products[0])
			case "2":
				w.Write(products[1])
			case "3":
				w.Write(products[2])
			default:
				http.NotFound(w, r)
			}
		case r.URL.Path == "/orders/" && r.Method == http.MethodPost:
			orderCalls.Add(1)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 77, "status": "pending"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)

	app := &handlers.Handlers{
		Shop:      shop.NewClient(upstream.URL),
		Coupons:   pricing.DefaultCoupons(),
		Sessions:  checkout.NewStore(),
		PublicURL: "https://kross.example",
	}

	return &testEnv{
		router:     routes.SetupRouter(app, "https://kross.example"),
		upstream:   upstream,
		orderCalls: &orderCalls,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func productIDs(t *testing.T, body map[string]any) []int64 {
	t.Helper()
	raw, ok := body["products"].([]any)
	require.True(t, ok, "no products array in %v", body)
	out := make([]int64, len(raw))
	for i, entry := range raw {
		product := entry.(map[string]any)
		out[i] = int64(product["id"].(float64))
	}
	return out
}

func TestCatalogDefaultQuery(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/v1/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []int64{1, 2, 3}, productIDs(t, body))
	assert.EqualValues(t, 3, body["total"])
	assert.Equal(t, "Katalog", body["title"])

	facets := body["facets"].(map[string]any)
	assert.Equal(t, []any{"Nike", "Adidas"}, facets["brands"])
	assert.Equal(t, []any{37.0, 40.0, 41.0, 42.0}, facets["sizes"])
}

func TestCatalogCategoryIncludesUnisex(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/v1/catalog?category=men", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{1, 3}, productIDs(t, body))
	assert.Equal(t, "Erkaklar uchun", body["title"])
}

func TestCatalogSortAndLocale(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/v1/catalog?sort=priceLow&lang=ru", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{2, 1, 3}, productIDs(t, body))
	assert.Equal(t, "Каталог", body["title"])
}

func TestCatalogFacetOptionsIgnoreNarrowing(t *testing.T) {
	env := newTestEnv(t)

	// Brand facet narrows the products but not the option lists.
	w, body := env.do(t, http.MethodGet, "/v1/catalog?brand=Adidas", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{2}, productIDs(t, body))

	facets := body["facets"].(map[string]any)
	assert.Equal(t, []any{"Nike", "Adidas"}, facets["brands"])
	assert.Equal(t, []any{37.0, 40.0, 41.0, 42.0}, facets["sizes"])
}

func TestCatalogBadSizeParam(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodGet, "/v1/catalog?size=forty", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductDetail(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/v1/products/3?lang=ru", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Белые", body["description"])
	assert.EqualValues(t, 20, body["discount_percent"])

	share := body["share"].(map[string]any)
	assert.Equal(t, "nike-air-force-1", share["slug"])
	assert.Equal(t, "https://kross.example/product/3", share["url"])
	assert.Contains(t, share["telegram"], "t.me/share/url")
}

func TestProductDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/v1/products/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", body["error"])
}

func TestHomeView(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/v1/home?lang=ru", "")
	require.Equal(t, http.StatusOK, w.Code)

	hero := body["hero"].(map[string]any)
	assert.Equal(t, "Оригинальные кроссовки.", hero["title"])

	newArrivals := body["new_arrivals"].([]any)
	require.Len(t, newArrivals, 1)
	assert.EqualValues(t, 2, newArrivals[0].(map[string]any)["id"])

	assert.Len(t, body["categories"], 4)
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)

	// Start a session for product 1 in size 41.
	w, body := env.do(t, http.MethodPost, "/v1/checkout/sessions", `{"product_id": 1, "size": 41}`)
	require.Equal(t, http.StatusCreated, w.Code)
	session := body["session"].(map[string]any)
	sessionID := session["session_id"].(string)
	require.NotEmpty(t, sessionID)

	// Unknown coupon reports a failure and changes nothing.
	w, body = env.do(t, http.MethodPost, "/v1/checkout/sessions/"+sessionID+"/coupon", `{"code": "XYZ"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid coupon", body["error"])

	// SALE10 brings 500000 down to 450000.
	w, body = env.do(t, http.MethodPost, "/v1/checkout/sessions/"+sessionID+"/coupon", `{"code": "SALE10"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 10, body["discount"])
	assert.Equal(t, "450000", body["total"])

	// A second valid code cannot stack.
	w, _ = env.do(t, http.MethodPost, "/v1/checkout/sessions/"+sessionID+"/coupon", `{"code": "SALE20"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Confirm the order.
	w, body = env.do(t, http.MethodPost, "/v1/checkout/sessions/"+sessionID+"/confirm",
		`{"full_name": "Aziz Karimov", "phone": "+998901234567", "payment_method": "card"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, env.orderCalls.Load())

	summary := body["summary"].(map[string]any)
	assert.Equal(t, "450000", summary["total"])

	// The session is retired once the order is accepted.
	w, _ = env.do(t, http.MethodPost, "/v1/checkout/sessions/"+sessionID+"/confirm",
		`{"full_name": "Aziz Karimov", "phone": "+998901234567", "payment_method": "card"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutRejectsUnavailableSize(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/v1/checkout/sessions", `{"product_id": 1, "size": 36}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "not available")
}

func TestConfirmValidatesBeforeUpstreamCall(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/v1/checkout/sessions", `{"product_id": 2, "size": 37}`)
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := body["session"].(map[string]any)["session_id"].(string)

	// Missing phone: rejected locally, nothing reaches the upstream.
	w, _ = env.do(t, http.MethodPost, "/v1/checkout/sessions/"+sessionID+"/confirm",
		`{"full_name": "Aziz Karimov", "payment_method": "cash"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, env.orderCalls.Load())

	// Bad payment method too.
	w, _ = env.do(t, http.MethodPost, "/v1/checkout/sessions/"+sessionID+"/confirm",
		`{"full_name": "Aziz Karimov", "phone": "+998901234567", "payment_method": "crypto"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, env.orderCalls.Load())
}
