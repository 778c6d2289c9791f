package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/datacatalog/metadata-system/internal/core/domain"
	"github.com/datacatalog/metadata-system/internal/core/service"
	"github.com/datacatalog/metadata-system/internal/core/token"
)

const testSecret = "router-test-secret"

// In-memory repositories so the full stack (router, middleware, services) can
// be exercised without Mongo.

type memAuthRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int64
}

func newMemAuthRepo() *memAuthRepo {
	return &memAuthRepo{users: make(map[string]*domain.User)}
}

func (r *memAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	cp := *user
	cp.ID = r.nextID
	r.users[user.Username] = &cp
	return &cp, nil
}

type memEntityRepo struct {
	mu      sync.Mutex
	records map[int64]domain.Entity
}

func newMemEntityRepo() *memEntityRepo {
	return &memEntityRepo{records: make(map[int64]domain.Entity)}
}

func (r *memEntityRepo) List(context.Context) ([]domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Entity, 0, len(r.records))
	for _, e := range r.records {
		out = append(out, e)
	}
	return out, nil
}

func (r *memEntityRepo) Create(_ context.Context, e *domain.Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[e.EntityID]; ok {
		return domain.ErrRecordExists
	}
	r.records[e.EntityID] = *e
	return nil
}

func (r *memEntityRepo) Update(_ context.Context, id int64, e *domain.Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return domain.ErrRecordNotFound
	}
	e.EntityID = id
	r.records[id] = *e
	return nil
}

func (r *memEntityRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

type memGlossaryRepo struct {
	mu      sync.Mutex
	records map[string]domain.GlossaryTerm
}

func newMemGlossaryRepo() *memGlossaryRepo {
	return &memGlossaryRepo{records: make(map[string]domain.GlossaryTerm)}
}

func (r *memGlossaryRepo) List(context.Context) ([]domain.GlossaryTerm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.GlossaryTerm, 0, len(r.records))
	for _, g := range r.records {
		out = append(out, g)
	}
	return out, nil
}

func (r *memGlossaryRepo) Create(_ context.Context, g *domain.GlossaryTerm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[g.BusinessTermShortName]; ok {
		return domain.ErrRecordExists
	}
	r.records[g.BusinessTermShortName] = *g
	return nil
}

func (r *memGlossaryRepo) Update(_ context.Context, name string, g *domain.GlossaryTerm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[name]; !ok {
		return domain.ErrRecordNotFound
	}
	g.BusinessTermShortName = name
	r.records[name] = *g
	return nil
}

func (r *memGlossaryRepo) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[name]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.records, name)
	return nil
}

// emptyAttributeRepo and friends satisfy the repositories the scenario tests
// never write to.

type emptyAttributeRepo struct{}

func (emptyAttributeRepo) List(context.Context) ([]domain.Attribute, error)     { return nil, nil }
func (emptyAttributeRepo) Create(context.Context, *domain.Attribute) error      { return nil }
func (emptyAttributeRepo) Update(context.Context, int64, *domain.Attribute) error {
	return domain.ErrRecordNotFound
}
func (emptyAttributeRepo) Delete(context.Context, int64) error { return domain.ErrRecordNotFound }

type emptyOwnerRepo struct{}

func (emptyOwnerRepo) List(context.Context) ([]domain.BusinessTermOwner, error) { return nil, nil }
func (emptyOwnerRepo) Create(context.Context, *domain.BusinessTermOwner) error  { return nil }
func (emptyOwnerRepo) Update(context.Context, string, *domain.BusinessTermOwner) error {
	return domain.ErrRecordNotFound
}
func (emptyOwnerRepo) Delete(context.Context, string) error { return domain.ErrRecordNotFound }

type emptySourceRepo struct{}

func (emptySourceRepo) List(context.Context) ([]domain.SourceSystem, error) { return nil, nil }
func (emptySourceRepo) Create(context.Context, *domain.SourceSystem) error  { return nil }
func (emptySourceRepo) Update(context.Context, int64, *domain.SourceSystem) error {
	return domain.ErrRecordNotFound
}
func (emptySourceRepo) Delete(context.Context, int64) error { return domain.ErrRecordNotFound }

// The Prometheus request middleware registers collectors on the default
// registry, so the test router is built exactly once and shared.
var (
	routerOnce  sync.Once
	testHandler http.Handler
	testCodec   *token.Codec
)

func testRouter(t *testing.T) (http.Handler, *token.Codec) {
	t.Helper()
	routerOnce.Do(func() {
		codec := token.NewCodec(testSecret, time.Hour)
		auth := service.NewAuthService(newMemAuthRepo(), nil, codec)
		catalog := service.NewCatalogService(
			emptyAttributeRepo{},
			emptyOwnerRepo{},
			newMemEntityRepo(),
			newMemGlossaryRepo(),
			emptySourceRepo{},
		)
		testHandler = NewRouter(Deps{
			Auth:    auth,
			Catalog: catalog,
			Codec:   codec,
			Logger:  zerolog.Nop(),
		})
		testCodec = codec
	})
	return testHandler, testCodec
}

func do(t *testing.T, h http.Handler, method, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorField(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestCatalogLifecycle(t *testing.T) {
	h, _ := testRouter(t)

	// Register, then prove the username is now taken.
	rec := do(t, h, http.MethodPost, "/register",
		`{"username": "alice", "password": "Secret123!", "email": "alice@example.com"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodPost, "/register",
		`{"username": "alice", "password": "Other456!", "email": "alice2@example.com"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: status = %d, want 409", rec.Code)
	}

	// Wrong password and unknown user produce the same 401.
	rec = do(t, h, http.MethodPost, "/login", `{"username": "alice", "password": "wrong"}`, "")
	if rec.Code != http.StatusUnauthorized || errorField(t, rec) != "invalid credentials" {
		t.Fatalf("bad password: status = %d, error = %q", rec.Code, errorField(t, rec))
	}
	rec = do(t, h, http.MethodPost, "/login", `{"username": "nobody", "password": "wrong"}`, "")
	if rec.Code != http.StatusUnauthorized || errorField(t, rec) != "invalid credentials" {
		t.Fatalf("unknown user: status = %d, error = %q", rec.Code, errorField(t, rec))
	}

	rec = do(t, h, http.MethodPost, "/login", `{"username": "alice", "password": "Secret123!"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil || login.Token == "" {
		t.Fatalf("login body %q: err = %v", rec.Body.String(), err)
	}

	// Writes are gated; reads are not.
	rec = do(t, h, http.MethodPost, "/Entity", `{"entity_id": 1, "entity_name": "Customer"}`, "")
	if rec.Code != http.StatusUnauthorized || errorField(t, rec) != "NO_TOKEN" {
		t.Fatalf("unauthenticated write: status = %d, error = %q", rec.Code, errorField(t, rec))
	}
	rec = do(t, h, http.MethodGet, "/Entity", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("public read: status = %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/Entity", `{"entity_id": 1, "entity_name": "Customer"}`, login.Token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodPost, "/Entity", `{"entity_id": 1, "entity_name": "Customer"}`, login.Token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create: status = %d, want 409", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/Entity", "", "")
	if !strings.Contains(rec.Body.String(), `"entity_name":"Customer"`) {
		t.Fatalf("list after create missing record: %s", rec.Body.String())
	}

	rec = do(t, h, http.MethodPut, "/Entity/1",
		`{"entity_name": "Customer", "entity_description": "A person or organisation"}`, login.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodGet, "/Entity", "", "")
	if !strings.Contains(rec.Body.String(), "A person or organisation") {
		t.Fatalf("list after update missing new description: %s", rec.Body.String())
	}
	rec = do(t, h, http.MethodPut, "/Entity/42", `{"entity_name": "Ghost"}`, login.Token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update absent: status = %d, want 404", rec.Code)
	}

	rec = do(t, h, http.MethodDelete, "/Entity/1", "", login.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", rec.Code)
	}
	rec = do(t, h, http.MethodDelete, "/Entity/1", "", login.Token)
	if rec.Code != http.StatusNotFound || errorField(t, rec) != "record not found" {
		t.Fatalf("second delete: status = %d, error = %q", rec.Code, errorField(t, rec))
	}
}

func TestGlossaryDateValidation(t *testing.T) {
	h, codec := testRouter(t)
	tok, err := codec.Issue(50, "manager", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := do(t, h, http.MethodPost, "/Glossary-of-Business-Terms",
		`{"business_term_short_name": "churn", "date_term_defined": "12/31/2024"}`, tok)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad date: status = %d, want 400", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/Glossary-of-Business-Terms",
		`{"business_term_short_name": "churn", "date_term_defined": "2024-12-31"}`, tok)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create term: status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestWriteRejectionCodes(t *testing.T) {
	h, _ := testRouter(t)

	// Hand-signed token that expired an hour ago.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		UserID:   7,
		Username: "alice",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	cases := []struct {
		name   string
		bearer string
		code   string
	}{
		{"expired", signed, "EXPIRED_TOKEN"},
		{"garbage", "not.a.token", "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/Entity",
				`{"entity_id": 2, "entity_name": "Order"}`, tc.bearer)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if got := errorField(t, rec); got != tc.code {
				t.Fatalf("error = %q, want %q", got, tc.code)
			}
		})
	}
}

func TestViewerCannotWrite(t *testing.T) {
	h, codec := testRouter(t)
	tok, err := codec.Issue(9, "viewer", domain.RoleViewer)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := do(t, h, http.MethodPost, "/Entity", `{"entity_id": 3, "entity_name": "Shipment"}`, tok)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if got := errorField(t, rec); got != "forbidden" {
		t.Fatalf("error = %q, want forbidden", got)
	}

	rec = do(t, h, http.MethodGet, "/Entity", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("viewer read: status = %d, want 200", rec.Code)
	}
}

func TestHomePage(t *testing.T) {
	h, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, path := range []string{"/Attribute", "/Entity", "/Glossary-of-Business-Terms"} {
		if !strings.Contains(rec.Body.String(), fmt.Sprintf("href=\"%s\"", path)) {
			t.Fatalf("home page missing link to %s", path)
		}
	}
}
