package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/repository"
	"github.com/passgen/passgen-go/internal/service"
)

const testSecret = "test-secret"

type memoryStore map[string]model.Preset

func (m memoryStore) Upsert(_ context.Context, p *model.Preset) error {
	m[p.Name] = *p
	return nil
}

func (m memoryStore) Get(_ context.Context, name string) (*model.Preset, error) {
	p, ok := m[name]
	if !ok {
		return nil, repository.ErrPresetNotFound
	}
	return &p, nil
}

func (m memoryStore) List(_ context.Context) ([]model.Preset, error) {
	out := []model.Preset{}
	for _, p := range m {
		out = append(out, p)
	}
	return out, nil
}

func (m memoryStore) Delete(_ context.Context, name string) error {
	if _, ok := m[name]; !ok {
		return repository.ErrPresetNotFound
	}
	delete(m, name)
	return nil
}

func newTestRouter(withPresets bool) http.Handler {
	var presets *service.PresetService
	var lookup service.PresetLookup
	if withPresets {
		presets = service.NewPresetService(memoryStore{})
		lookup = presets
	}
	return Routes{
		Generator: service.NewGeneratorService(crypto.MathSource(), lookup),
		Presets:   presets,
		JWTSecret: testSecret,
	}.Router()
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(false), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleGenerate(t *testing.T) {
	h := newTestRouter(false)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLen    int
		wantPool   int
	}{
		{name: "empty body uses defaults", body: "", wantStatus: http.StatusOK, wantLen: 12, wantPool: 80},
		{name: "empty object uses defaults", body: `{}`, wantStatus: http.StatusOK, wantLen: 12, wantPool: 80},
		{name: "minimum letters only", body: `{"length":6,"numbers":false,"symbols":false}`, wantStatus: http.StatusOK, wantLen: 6, wantPool: 52},
		{name: "maximum full pool", body: `{"length":100}`, wantStatus: http.StatusOK, wantLen: 100, wantPool: 80},
		{name: "digits no symbols", body: `{"length":12,"symbols":false}`, wantStatus: http.StatusOK, wantLen: 12, wantPool: 62},
		{name: "explicit zero length", body: `{"length":0}`, wantStatus: http.StatusBadRequest},
		{name: "too short", body: `{"length":5}`, wantStatus: http.StatusBadRequest},
		{name: "too long", body: `{"length":101}`, wantStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"length":`, wantStatus: http.StatusBadRequest},
		{name: "composed counts too large", body: `{"length":6,"digit_count":4,"symbol_count":4}`, wantStatus: http.StatusBadRequest},
		{name: "preset without store", body: `{"preset":"x"}`, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/generate", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantStatus != http.StatusOK {
				var errResp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.NotEmpty(t, errResp["error"])
				return
			}

			var resp model.GenerateResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Len(t, resp.Password, tt.wantLen)
			assert.Equal(t, tt.wantLen, resp.Length)
			assert.Equal(t, tt.wantPool, resp.PoolSize)
		})
	}
}

func TestHandleGenerateBodyTooLarge(t *testing.T) {
	body := `{"preset":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := do(t, newTestRouter(false), http.MethodPost, "/api/v1/generate", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleIndex(t *testing.T) {
	rec := do(t, newTestRouter(false), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	page := rec.Body.String()
	assert.Contains(t, page, `type="range" min="6" max="100" value="12"`)
	assert.Contains(t, page, `role="switch" aria-pressed="true"`)
	assert.Contains(t, page, "readonly")
	assert.Contains(t, page, `fetch("/generate"`)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestSliderDragStaysInSync(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Production defaults: 5/10 for the API, 50/95 for the page.
	h := Routes{
		Generator:     service.NewGeneratorService(crypto.MathSource(), nil),
		RateLimit:     middleware.NewIPRateLimiter(ctx, 5, 10).Handler,
		PageRateLimit: middleware.NewIPRateLimiter(ctx, 50, crypto.MaxLength-crypto.MinLength+1).Handler,
	}.Router()

	// Drag from the default all the way to the maximum, then flip both toggles.
	var bodies []string
	for n := crypto.DefaultLength + 1; n <= crypto.MaxLength; n++ {
		bodies = append(bodies, fmt.Sprintf(`{"length":%d,"numbers":true,"symbols":true}`, n))
	}
	bodies = append(bodies,
		`{"length":100,"numbers":false,"symbols":true}`,
		`{"length":100,"numbers":false,"symbols":false}`,
	)

	for _, body := range bodies {
		var req model.GenerateRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		rec := do(t, h, http.MethodPost, "/generate", body)
		require.Equal(t, http.StatusOK, rec.Code, "request %s: %s", body, rec.Body.String())

		var resp model.GenerateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Password, *req.Length)
		for _, ch := range resp.Password {
			if !*req.Numbers {
				assert.False(t, crypto.IsDigit(ch), "digit %q with numbers off", string(ch))
			}
			if !*req.Symbols {
				assert.False(t, crypto.IsSymbol(ch), "symbol %q with symbols off", string(ch))
			}
		}
	}

	// The page budget is separate; the API keeps its own limit.
	for range 10 {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/generate", "").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodPost, "/api/v1/generate", "").Code)
}

func TestPresetRoutesDisabledWithoutStore(t *testing.T) {
	rec := do(t, newTestRouter(false), http.MethodGet, "/api/v1/presets", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPresetLifecycle(t *testing.T) {
	h := newTestRouter(true)
	token, err := crypto.IssuePresetToken("ops", testSecret, time.Hour)
	require.NoError(t, err)
	auth := []string{"Authorization", "Bearer " + token}

	rec := do(t, h, http.MethodPut, "/api/v1/presets/wifi", `{"length":24,"symbols":false}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/v1/presets/wifi", `{"length":24,"symbols":false}`, auth...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPut, "/api/v1/presets/tiny", `{"length":2}`, auth...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/presets/wifi", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var p model.Preset
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, 24, p.Length)
	assert.False(t, p.Symbols)

	rec = do(t, h, http.MethodPost, "/api/v1/generate", `{"preset":"wifi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 24, resp.Length)
	assert.Equal(t, 62, resp.PoolSize)

	rec = do(t, h, http.MethodGet, "/api/v1/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.Preset
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list, 1)

	rec = do(t, h, http.MethodDelete, "/api/v1/presets/wifi", "", auth...)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/presets/wifi", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/generate", `{"preset":"wifi"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
