package preset

import (
	"encoding/json"
	"html"
	"net/http"
	"strings"

	"logotint/model"
)

// Handler serves the preset catalog over HTTP.
type Handler struct {
	catalog *Catalog
}

// NewHandler creates a new preset handler.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Register mounts the preset routes on mux, wrapping each handler with wrap
// in order.
func (h *Handler) Register(mux *http.ServeMux, wrap ...func(http.HandlerFunc) http.HandlerFunc) {
	mount := func(pattern string, fn http.HandlerFunc) {
		for _, w := range wrap {
			fn = w(fn)
		}
		mux.HandleFunc(pattern, fn)
	}
	mount("/api/presets", h.HandleList)
	mount("/api/presets/", h.HandlePreset)
}

type presetSummary struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Accent  string `json:"accent"`
}

// HandleList returns the presets in menu order.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	list := h.catalog.List()
	resp := make([]presetSummary, 0, len(list))
	for _, p := range list {
		resp = append(resp, presetSummary{
			Name:    p.Name,
			Display: p.Display,
			Accent:  p.Swatch(),
		})
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, resp)
}

type presetResponse struct {
	Name    string        `json:"name"`
	Display string        `json:"display"`
	Colors  model.Palette `json:"colors"`
}

// HandlePreset returns the palette of one preset.
func (h *Handler) HandlePreset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/presets/")
	if name == "" {
		http.NotFound(w, r)
		return
	}

	p, ok := h.catalog.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": ErrUnknownScheme.Error() + ": " + name})
		return
	}
	writeJSON(w, http.StatusOK, presetResponse{Name: p.Name, Display: p.Display, Colors: p.Colors})
}

// GenerateMenuHTML renders the scheme menu buttons, marking current as active.
func (h *Handler) GenerateMenuHTML(current string) string {
	var builder strings.Builder
	for _, p := range h.catalog.List() {
		builder.WriteString(`<button data-scheme="`)
		builder.WriteString(html.EscapeString(p.Name))
		builder.WriteString(`"`)
		if p.Name == current {
			builder.WriteString(` class="active"`)
		}
		builder.WriteString(`><i class="swatch" style="background:`)
		builder.WriteString(p.Swatch())
		builder.WriteString(`;"></i> `)
		builder.WriteString(html.EscapeString(p.Display))
		builder.WriteString(`</button>`)
	}
	return builder.String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
