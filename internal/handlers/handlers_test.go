package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uptimeapi/internal/handlers"
	"uptimeapi/internal/models"
	"uptimeapi/internal/routes"
	"uptimeapi/internal/services"
	"uptimeapi/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	locks := storage.NewLockTable()

	auth := services.NewAuthService(4)
	tokens := services.NewTokenService(store, locks, auth, time.Hour, 20)
	accounts := services.NewAccountService(store, locks, auth, tokens)
	checks := services.NewCheckService(store, locks, tokens, 5)

	r := gin.New()
	return routes.SetupRoutes(
		r,
		handlers.NewSystemHandler(),
		handlers.NewAccountHandler(accounts),
		handlers.NewTokenHandler(tokens, store),
		handlers.NewCheckHandler(checks),
	)
}

func do(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestEndToEndScenario(t *testing.T) {
	r := newTestRouter(t)

	// регистрация
	w := do(t, r, http.MethodPost, "/users",
		`{"firstName":"Jane","lastName":"Doe","phone":"5551234567","password":"pw","tosAgreement":true}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// логин
	w = do(t, r, http.MethodPost, "/tokens", `{"phone":"5551234567","password":"pw"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var token models.Token
	decode(t, w, &token)
	require.Len(t, token.ID, 20)
	assert.InDelta(t, 3600, time.Until(token.Expires).Seconds(), 10)

	// создание проверки
	w = do(t, r, http.MethodPost, "/checks",
		`{"protocol":"http","url":"example.com","method":"get","successCodes":[200],"timeoutSeconds":3}`, token.ID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var check models.Check
	decode(t, w, &check)
	assert.Equal(t, "5551234567", check.UserPhone)

	// у аккаунта ровно одна проверка, секрет не отдаётся
	w = do(t, r, http.MethodGet, "/users/5551234567", "", token.ID)
	require.Equal(t, http.StatusOK, w.Code)
	var account map[string]any
	decode(t, w, &account)
	assert.NotContains(t, account, "hashedPassword")
	assert.Len(t, account["checks"], 1)

	// чтение своей проверки
	w = do(t, r, http.MethodGet, "/checks/"+check.ID, "", token.ID)
	require.Equal(t, http.StatusOK, w.Code)

	// с чужим/несуществующим токеном — 403
	w = do(t, r, http.MethodGet, "/checks/"+check.ID, "", "invalidtoken00000000")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	r := newTestRouter(t)

	body := `{"firstName":"Jane","lastName":"Doe","phone":"5551234567","password":"pw","tosAgreement":true}`
	w := do(t, r, http.MethodPost, "/users", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/users", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedJSONTreatedAsEmpty(t *testing.T) {
	r := newTestRouter(t)

	// битый JSON эквивалентен пустому объекту: валидация полей, не 500
	w := do(t, r, http.MethodPost, "/users", `{"firstName": "Jane", `, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var payload map[string]string
	decode(t, w, &payload)
	assert.Contains(t, payload["error"], "firstName")
}

func TestLogin_UniformFailure(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/users",
		`{"firstName":"Jane","lastName":"Doe","phone":"5551234567","password":"pw","tosAgreement":true}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// неизвестный телефон и неверный пароль снаружи неразличимы
	wrongPassword := do(t, r, http.MethodPost, "/tokens", `{"phone":"5551234567","password":"nope"}`, "")
	unknownPhone := do(t, r, http.MethodPost, "/tokens", `{"phone":"5550000000","password":"pw"}`, "")
	assert.Equal(t, http.StatusForbidden, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownPhone.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownPhone.Body.String())
}

func TestTokenLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/users",
		`{"firstName":"Jane","lastName":"Doe","phone":"5551234567","password":"pw","tosAgreement":true}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/tokens", `{"phone":"5551234567","password":"pw"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var token models.Token
	decode(t, w, &token)

	// чтение токена
	w = do(t, r, http.MethodGet, "/tokens/"+token.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// продление требует extend=true
	w = do(t, r, http.MethodPut, "/tokens/"+token.ID, `{"extend":false}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, r, http.MethodPut, "/tokens/"+token.ID, `{"extend":true}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// отзыв
	w = do(t, r, http.MethodDelete, "/tokens/"+token.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/tokens/"+token.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDispatcherContract(t *testing.T) {
	r := newTestRouter(t)

	// известный путь, неподдерживаемый метод
	w := do(t, r, http.MethodPut, "/ping", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	// неизвестный путь
	w = do(t, r, http.MethodGet, "/nosuchresource", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// ping жив и отвечает JSON-объектом
	w = do(t, r, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	// метрики открыты
	w = do(t, r, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "api_http_requests_total")
}
