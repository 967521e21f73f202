package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/config"
	"github.com/ghuser/assetforge/pkg/logger"
	"github.com/ghuser/assetforge/services/registry/application/handlers"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
	"github.com/ghuser/assetforge/services/registry/domain/ledger"
	"github.com/ghuser/assetforge/services/registry/infrastructure/persistence/postgres"
	"github.com/ghuser/assetforge/services/registry/infrastructure/wallet"
)

var admin = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// newRouter builds the registry routes against in-memory services, with a
// middleware that injects the caller's principal in place of the session
// layer.
func newRouter(t *testing.T, principal *uuid.UUID) (chi.Router, *appsvcs.Services) {
	t.Helper()

	w := wallet.New()
	l := ledger.New(w)
	log := logger.New(&config.Config{LogLevel: "error"})
	svcs := &appsvcs.Services{
		Registry: appsvcs.NewRegistryService(l, nil, nil, nil, log),
		Wallet:   w,
		Gate:     ledger.NewAccessGate(admin),
	}

	return mountRoutes(svcs, principal), svcs
}

// routerFor mounts the routes for an additional principal over an existing
// service container.
func routerFor(t *testing.T, svcs *appsvcs.Services, principal uuid.UUID) chi.Router {
	t.Helper()
	return mountRoutes(svcs, &principal)
}

func mountRoutes(svcs *appsvcs.Services, principal *uuid.UUID) chi.Router {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if principal != nil {
				req = req.WithContext(auth.WithPrincipal(req.Context(), *principal))
			}
			next.ServeHTTP(w, req)
		})
	})

	items := handlers.NewGetItemsHandler(svcs)
	r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
	r.Get("/items", items.List)
	r.Get("/items/{index}", items.GetByIndex)
	r.Put("/items/{id}/listing", handlers.NewPutListingHandler(svcs).Execute)
	r.Get("/items/{id}/audit", handlers.NewGetAuditHandler(svcs).Execute)
	r.Get("/listings/{owner}/{id}", handlers.NewGetListingHandler(svcs).Execute)
	r.Post("/purchases", handlers.NewPostPurchaseHandler(svcs).Execute)
	burn := handlers.NewBurnHandlers(svcs)
	r.Post("/burn-requests", burn.Request)
	r.Post("/burn-acceptances", burn.Accept)
	r.Post("/burns", burn.Burn)
	wh := handlers.NewWalletHandlers(svcs)
	r.Post("/wallet/deposits", wh.Deposit)
	r.Get("/wallet/balance", wh.Balance)
	ah := handlers.NewAdminHandlers(svcs)
	r.Get("/admin", ah.Current)
	r.Post("/admin/transfer", ah.Transfer)

	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func issueBody(name string) map[string]any {
	return map[string]any{
		"name":     name,
		"value":    100,
		"unit":     "oz",
		"qty":      5,
		"validity": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"resale":   true,
	}
}

func TestPostItem(t *testing.T) {
	alice := uuid.New()

	t.Run("issues a holding", func(t *testing.T) {
		r, _ := newRouter(t, &alice)
		rec := doJSON(t, r, http.MethodPost, "/items", issueBody("gold"))
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var resp handlers.ItemResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Name != "gold" || resp.Qty != 5 || resp.Issuer != alice {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("rejects unauthenticated callers", func(t *testing.T) {
		r, _ := newRouter(t, nil)
		rec := doJSON(t, r, http.MethodPost, "/items", issueBody("gold"))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		r, _ := newRouter(t, &alice)
		req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		r, _ := newRouter(t, &alice)
		rec := doJSON(t, r, http.MethodPost, "/items", map[string]any{"name": "gold"})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("rejects past validity", func(t *testing.T) {
		r, _ := newRouter(t, &alice)
		body := issueBody("gold")
		body["validity"] = time.Now().Add(-time.Hour).Format(time.RFC3339)
		rec := doJSON(t, r, http.MethodPost, "/items", body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})
}

func TestGetItems(t *testing.T) {
	alice := uuid.New()
	r, _ := newRouter(t, &alice)

	for _, name := range []string{"gold", "silver"} {
		if rec := doJSON(t, r, http.MethodPost, "/items", issueBody(name)); rec.Code != http.StatusCreated {
			t.Fatalf("issue %s: %d", name, rec.Code)
		}
	}

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/items", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp handlers.ListItemsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Length != 2 || len(resp.Items) != 2 {
			t.Errorf("length = %d, items = %d", resp.Length, len(resp.Items))
		}
	})

	t.Run("by index", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/items/1", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp handlers.ItemResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Name != "silver" || resp.DenseIndex != 1 {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("index out of bounds", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/items/9", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("non-numeric index", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/items/abc", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestListingAndPurchase(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	// Two routers sharing one service container, so alice and bob act on
	// the same ledger.
	sellerRouter, svcs := newRouter(t, &alice)
	buyerRouter := routerFor(t, svcs, bob)

	rec := doJSON(t, sellerRouter, http.MethodPost, "/items", issueBody("gold"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("issue: %d", rec.Code)
	}
	var item handlers.ItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}

	t.Run("set listing price", func(t *testing.T) {
		rec := doJSON(t, sellerRouter, http.MethodPut, "/items/"+item.ID.String()+"/listing",
			map[string]any{"price": 3})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("read listing", func(t *testing.T) {
		rec := doJSON(t, buyerRouter, http.MethodGet,
			fmt.Sprintf("/listings/%s/%s", alice, item.ID), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var listing handlers.ListingResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if listing.Price != 3 || listing.Owner != alice {
			t.Errorf("listing = %+v", listing)
		}
	})

	t.Run("underfunded purchase", func(t *testing.T) {
		rec := doJSON(t, buyerRouter, http.MethodPost, "/purchases", map[string]any{
			"owner":   alice.String(),
			"item_id": item.ID.String(),
			"qty":     1,
			"payment": 3,
		})
		if rec.Code != http.StatusPaymentRequired {
			t.Errorf("status = %d, want 402", rec.Code)
		}
	})

	t.Run("funded purchase", func(t *testing.T) {
		if rec := doJSON(t, buyerRouter, http.MethodPost, "/wallet/deposits",
			map[string]any{"amount": 10}); rec.Code != http.StatusOK {
			t.Fatalf("deposit: %d", rec.Code)
		}
		rec := doJSON(t, buyerRouter, http.MethodPost, "/purchases", map[string]any{
			"owner":   alice.String(),
			"item_id": item.ID.String(),
			"qty":     2,
			"payment": 6,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}

		// Buyer now holds the purchased quantity.
		list := doJSON(t, buyerRouter, http.MethodGet, "/items", nil)
		var resp handlers.ListItemsResponse
		if err := json.Unmarshal(list.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Length != 1 || resp.Items[0].Qty != 2 {
			t.Errorf("buyer holdings = %+v", resp)
		}

		// Seller received the payment.
		bal := doJSON(t, sellerRouter, http.MethodGet, "/wallet/balance", nil)
		var balance handlers.BalanceResponse
		if err := json.Unmarshal(bal.Body.Bytes(), &balance); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if balance.Balance != 6 {
			t.Errorf("seller balance = %d, want 6", balance.Balance)
		}
	})

	t.Run("underpayment is rejected", func(t *testing.T) {
		rec := doJSON(t, buyerRouter, http.MethodPost, "/purchases", map[string]any{
			"owner":   alice.String(),
			"item_id": item.ID.String(),
			"qty":     2,
			"payment": 5,
		})
		if rec.Code != http.StatusPaymentRequired {
			t.Errorf("status = %d, want 402", rec.Code)
		}
	})
}

func TestBurnEndpoints(t *testing.T) {
	issuer := uuid.New()
	holder := uuid.New()

	issuerRouter, svcs := newRouter(t, &issuer)
	holderRouter := routerFor(t, svcs, holder)

	rec := doJSON(t, issuerRouter, http.MethodPost, "/items", issueBody("voucher"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("issue: %d", rec.Code)
	}
	var item handlers.ItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if rec := doJSON(t, issuerRouter, http.MethodPut, "/items/"+item.ID.String()+"/listing",
		map[string]any{"price": 1}); rec.Code != http.StatusOK {
		t.Fatalf("listing: %d", rec.Code)
	}
	if rec := doJSON(t, holderRouter, http.MethodPost, "/wallet/deposits",
		map[string]any{"amount": 10}); rec.Code != http.StatusOK {
		t.Fatalf("deposit: %d", rec.Code)
	}
	if rec := doJSON(t, holderRouter, http.MethodPost, "/purchases", map[string]any{
		"owner":   issuer.String(),
		"item_id": item.ID.String(),
		"qty":     2,
		"payment": 2,
	}); rec.Code != http.StatusOK {
		t.Fatalf("purchase: %d", rec.Code)
	}

	t.Run("burn before consent conflicts", func(t *testing.T) {
		rec := doJSON(t, issuerRouter, http.MethodPost, "/burns",
			map[string]any{"item_id": item.ID.String()})
		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})

	t.Run("request accept burn", func(t *testing.T) {
		rec := doJSON(t, issuerRouter, http.MethodPost, "/burn-requests", map[string]any{
			"owner":   holder.String(),
			"item_id": item.ID.String(),
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("request: %d, body %s", rec.Code, rec.Body.String())
		}

		rec = doJSON(t, holderRouter, http.MethodPost, "/burn-acceptances",
			map[string]any{"item_id": item.ID.String()})
		if rec.Code != http.StatusOK {
			t.Fatalf("accept: %d, body %s", rec.Code, rec.Body.String())
		}

		rec = doJSON(t, issuerRouter, http.MethodPost, "/burns",
			map[string]any{"item_id": item.ID.String()})
		if rec.Code != http.StatusOK {
			t.Fatalf("burn: %d, body %s", rec.Code, rec.Body.String())
		}

		list := doJSON(t, holderRouter, http.MethodGet, "/items", nil)
		var resp handlers.ListItemsResponse
		if err := json.Unmarshal(list.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Items[0].Qty != 1 {
			t.Errorf("holder qty = %d after burn, want 1", resp.Items[0].Qty)
		}
	})

	t.Run("request by non-issuer is forbidden", func(t *testing.T) {
		rec := doJSON(t, holderRouter, http.MethodPost, "/burn-requests", map[string]any{
			"owner":   holder.String(),
			"item_id": item.ID.String(),
		})
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})
}

func TestAdminEndpoints(t *testing.T) {
	outsider := uuid.New()

	t.Run("current admin", func(t *testing.T) {
		r, _ := newRouter(t, &outsider)
		rec := doJSON(t, r, http.MethodGet, "/admin", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp handlers.AdminResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Admin != admin {
			t.Errorf("admin = %v", resp.Admin)
		}
	})

	t.Run("transfer by non-admin is forbidden", func(t *testing.T) {
		r, _ := newRouter(t, &outsider)
		rec := doJSON(t, r, http.MethodPost, "/admin/transfer",
			map[string]any{"new_admin": outsider.String()})
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("transfer by admin succeeds", func(t *testing.T) {
		r, _ := newRouter(t, &admin)
		rec := doJSON(t, r, http.MethodPost, "/admin/transfer",
			map[string]any{"new_admin": outsider.String()})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var resp handlers.AdminResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Admin != outsider {
			t.Errorf("admin = %v, want new admin", resp.Admin)
		}
	})
}

// auditTrailStub serves canned audit rows and records the queried item.
type auditTrailStub struct {
	rows    []*postgres.AuditEvent
	lastID  uuid.UUID
	lastMax int
}

func (s *auditTrailStub) FindByItem(_ context.Context, itemID uuid.UUID, limit int) ([]*postgres.AuditEvent, error) {
	s.lastID = itemID
	s.lastMax = limit
	return s.rows, nil
}

func TestGetItemAudit(t *testing.T) {
	alice := uuid.New()
	itemID := uuid.New()

	t.Run("returns the recorded trail", func(t *testing.T) {
		r, svcs := newRouter(t, &alice)
		stub := &auditTrailStub{rows: []*postgres.AuditEvent{
			{
				EventID:    uuid.New(),
				Topic:      "registry.item.listed",
				Payload:    json.RawMessage(`{"item_id":"` + itemID.String() + `","price":5}`),
				OccurredAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			},
			{
				EventID:    uuid.New(),
				Topic:      "registry.item.issued",
				Payload:    json.RawMessage(`{"item_id":"` + itemID.String() + `"}`),
				OccurredAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		}}
		svcs.Audit = stub

		rec := doJSON(t, r, http.MethodGet, "/items/"+itemID.String()+"/audit", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var resp handlers.AuditTrailResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Events) != 2 {
			t.Fatalf("events = %d, want 2", len(resp.Events))
		}
		if resp.Events[0].Topic != "registry.item.listed" {
			t.Errorf("newest topic = %q", resp.Events[0].Topic)
		}
		if stub.lastID != itemID {
			t.Errorf("queried item = %v, want %v", stub.lastID, itemID)
		}
		if stub.lastMax <= 0 {
			t.Errorf("limit = %d, want positive", stub.lastMax)
		}
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		r, svcs := newRouter(t, &alice)
		svcs.Audit = &auditTrailStub{}
		rec := doJSON(t, r, http.MethodGet, "/items/not-a-uuid/audit", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unavailable without a database", func(t *testing.T) {
		r, _ := newRouter(t, &alice)
		rec := doJSON(t, r, http.MethodGet, "/items/"+itemID.String()+"/audit", nil)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("requires a principal", func(t *testing.T) {
		r, svcs := newRouter(t, nil)
		svcs.Audit = &auditTrailStub{}
		rec := doJSON(t, r, http.MethodGet, "/items/"+itemID.String()+"/audit", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
