package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IsPeeves/lumenixorg/internal/repository"
	"github.com/IsPeeves/lumenixorg/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func errMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &body)
	return body.Error
}

// Function-field fakes so each test overrides only what it exercises.

type fakeClientStore struct {
	listFn   func(ctx context.Context, opt repository.ListOptions) ([]models.Client, int64, error)
	getFn    func(ctx context.Context, id uint) (models.Client, error)
	createFn func(ctx context.Context, c models.Client) (models.Client, error)
	updateFn func(ctx context.Context, id uint, updates map[string]any) (models.Client, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (f *fakeClientStore) List(ctx context.Context, opt repository.ListOptions) ([]models.Client, int64, error) {
	return f.listFn(ctx, opt)
}
func (f *fakeClientStore) GetByID(ctx context.Context, id uint) (models.Client, error) {
	return f.getFn(ctx, id)
}
func (f *fakeClientStore) Create(ctx context.Context, c models.Client) (models.Client, error) {
	return f.createFn(ctx, c)
}
func (f *fakeClientStore) Update(ctx context.Context, id uint, updates map[string]any) (models.Client, error) {
	return f.updateFn(ctx, id, updates)
}
func (f *fakeClientStore) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

type fakeExpenseStore struct {
	listFn   func(ctx context.Context, opt repository.ListOptions) ([]models.Expense, int64, error)
	getFn    func(ctx context.Context, id uint) (models.Expense, error)
	createFn func(ctx context.Context, e models.Expense) (models.Expense, error)
	updateFn func(ctx context.Context, id uint, updates map[string]any) (models.Expense, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (f *fakeExpenseStore) List(ctx context.Context, opt repository.ListOptions) ([]models.Expense, int64, error) {
	return f.listFn(ctx, opt)
}
func (f *fakeExpenseStore) GetByID(ctx context.Context, id uint) (models.Expense, error) {
	return f.getFn(ctx, id)
}
func (f *fakeExpenseStore) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	return f.createFn(ctx, e)
}
func (f *fakeExpenseStore) Update(ctx context.Context, id uint, updates map[string]any) (models.Expense, error) {
	return f.updateFn(ctx, id, updates)
}
func (f *fakeExpenseStore) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

type fakeProjectStore struct {
	listFn    func(ctx context.Context) ([]models.Project, error)
	getFn     func(ctx context.Context, id uint) (models.Project, error)
	createFn  func(ctx context.Context, p models.Project) (models.Project, error)
	updateFn  func(ctx context.Context, id uint, updates map[string]any) (models.Project, error)
	deleteFn  func(ctx context.Context, id uint) error
	reorderFn func(ctx context.Context, orders []repository.ProjectOrder) error
}

func (f *fakeProjectStore) List(ctx context.Context) ([]models.Project, error) {
	return f.listFn(ctx)
}
func (f *fakeProjectStore) GetByID(ctx context.Context, id uint) (models.Project, error) {
	return f.getFn(ctx, id)
}
func (f *fakeProjectStore) Create(ctx context.Context, p models.Project) (models.Project, error) {
	return f.createFn(ctx, p)
}
func (f *fakeProjectStore) Update(ctx context.Context, id uint, updates map[string]any) (models.Project, error) {
	return f.updateFn(ctx, id, updates)
}
func (f *fakeProjectStore) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeProjectStore) Reorder(ctx context.Context, orders []repository.ProjectOrder) error {
	return f.reorderFn(ctx, orders)
}

type fakePaymentStore struct {
	createFn func(ctx context.Context, p models.PaymentHistory) (models.PaymentHistory, error)
	listFn   func(ctx context.Context, clientID uint) ([]models.PaymentHistory, error)
}

func (f *fakePaymentStore) Create(ctx context.Context, p models.PaymentHistory) (models.PaymentHistory, error) {
	return f.createFn(ctx, p)
}
func (f *fakePaymentStore) ListByClient(ctx context.Context, clientID uint) ([]models.PaymentHistory, error) {
	return f.listFn(ctx, clientID)
}

type fakeUserStore struct {
	getByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return f.getByEmailFn(ctx, email)
}
