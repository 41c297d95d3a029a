package preset

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	NewHandler(Builtin()).Register(mux)
	return mux
}

func TestHandleList(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []presetSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 26)
	assert.Equal(t, presetSummary{Name: "default", Display: "Default", Accent: "#DA5038"}, got[0])
}

func TestHandlePreset(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets/ruby", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got presetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Ruby", got.Display)
	assert.Equal(t, "#e0115f", got.Colors.Primary)
}

func TestHandlePresetUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets/plaid", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown scheme")
}

func TestHandleListMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/presets", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestGenerateMenuHTML(t *testing.T) {
	out := NewHandler(Builtin()).GenerateMenuHTML("warm")
	assert.Contains(t, out, `<button data-scheme="warm" class="active">`)
	assert.Contains(t, out, `<button data-scheme="cool">`)
	assert.Contains(t, out, `background:#E74C3C;`)
}

func TestRegisterWrapsHandlers(t *testing.T) {
	var seen []string
	tag := func(name string) func(http.HandlerFunc) http.HandlerFunc {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				seen = append(seen, name)
				next(w, r)
			}
		}
	}

	mux := http.NewServeMux()
	NewHandler(Builtin()).Register(mux, tag("inner"), tag("outer"))

	for _, path := range []string{"/api/presets", "/api/presets/default"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, []string{"outer", "inner", "outer", "inner"}, seen)
}
