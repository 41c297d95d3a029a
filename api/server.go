// Package api serves the recoloring engine, the preset catalog and the saved
// scheme history over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"logotint/codec"
	"logotint/engine"
	"logotint/hexcolor"
	"logotint/logo"
	"logotint/model"
	"logotint/preset"
	"logotint/scheduler"
	"logotint/storage"
)

// maxBodySize bounds JSON request bodies. Uploads get codec.MaxUploadSize plus
// room for multipart framing.
const (
	maxBodySize   = 256 << 10
	maxUploadBody = codec.MaxUploadSize + 64<<10
)

// Options tune the server.
type Options struct {
	CaseSensitive bool
	ImportRate    float64
	ImportBurst   int
}

type Server struct {
	store    *storage.Store
	catalog  *preset.Catalog
	sched    *scheduler.Scheduler
	logger   zerolog.Logger
	template string
	opts     Options
	limiter  *clientLimiter
	ws       *WSConnectionManager
	now      func() time.Time
}

func NewServer(store *storage.Store, catalog *preset.Catalog, sched *scheduler.Scheduler, logger zerolog.Logger, opts Options) *Server {
	if opts.ImportRate <= 0 {
		opts.ImportRate = 2
	}
	if opts.ImportBurst <= 0 {
		opts.ImportBurst = 5
	}
	return &Server{
		store:    store,
		catalog:  catalog,
		sched:    sched,
		logger:   logger.With().Str("component", "api").Logger(),
		template: logo.Template(),
		opts:     opts,
		limiter:  newClientLimiter(opts.ImportRate, opts.ImportBurst),
		ws:       NewWSConnectionManager(),
		now:      time.Now,
	}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", instrument(s.handleHealth))
	mux.HandleFunc("/api/palette/default", instrument(s.handleDefaultPalette))
	mux.HandleFunc("/api/template", instrument(s.handleTemplate))
	mux.HandleFunc("/api/template/colors", instrument(s.handleTemplateColors))
	mux.HandleFunc("/api/apply", instrument(s.handleApply))
	mux.HandleFunc("/api/export", instrument(s.handleExport))
	mux.HandleFunc("/api/export/logo.svg", instrument(s.handleExportLogo))
	mux.HandleFunc("/api/export/scheme.json", instrument(s.handleExportScheme))
	mux.HandleFunc("/api/import", instrument(s.handleImport))
	mux.HandleFunc("/api/schemes", instrument(s.handleSchemes))
	mux.HandleFunc("/api/schemes/", instrument(s.handleSchemeByID))
	mux.HandleFunc("/api/stats", instrument(s.handleStats))
	mux.HandleFunc("/api/contrast", instrument(s.handleContrast))
	mux.HandleFunc("/api/schedules", instrument(s.handleSchedules))
	mux.HandleFunc("/api/schedules/run", instrument(s.handleScheduleRun))
	mux.HandleFunc("/api/preview/ws", s.handlePreview)

	preset.NewHandler(s.catalog).Register(mux, instrument)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func allow(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	w.WriteHeader(http.StatusMethodNotAllowed)
	return false
}

// ---------- palette / template ----------

type defaultPaletteResponse struct {
	Colors model.Palette `json:"colors"`
	Slots  []model.Slot  `json:"slots"`
}

func (s *Server) handleDefaultPalette(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, defaultPaletteResponse{
		Colors: model.DefaultPalette(),
		Slots:  model.Slots(),
	})
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	w.Header().Set("Content-Type", logo.MediaType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.WriteString(w, s.template)
}

type templateColorsResponse struct {
	Colors []string `json:"colors"`
}

// handleTemplateColors lists the distinct color tokens of the template.
func (s *Server) handleTemplateColors(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, templateColorsResponse{Colors: hexcolor.Extract(s.template)})
}

// ---------- apply / export ----------

type applyRequest struct {
	Colors         model.Palette    `json:"colors"`
	Preset         string           `json:"preset,omitempty"`
	CaseSensitive  *bool            `json:"caseSensitive,omitempty"`
	CustomMappings []engine.Mapping `json:"customMappings,omitempty"`
	Name           string           `json:"name,omitempty"`
	Filename       string           `json:"filename,omitempty"`
	Save           bool             `json:"save,omitempty"`
}

func decodeJSON(r *http.Request, w http.ResponseWriter, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return err
		}
		return fmt.Errorf("%w: invalid json: %v", errBadRequest, err)
	}
	return nil
}

// palette resolves the request to a delta over the default palette. A preset
// is applied first and explicit colors win over it.
func (s *Server) palette(req applyRequest) (model.Palette, error) {
	delta := req.Colors
	if req.Preset != "" {
		base, err := s.catalog.Get(req.Preset)
		if err != nil {
			return model.Palette{}, err
		}
		delta = base.Merge(req.Colors)
	}
	return delta, nil
}

func (s *Server) engineOptions(req applyRequest) engine.Options {
	opts := engine.Options{
		CaseSensitive:  s.opts.CaseSensitive,
		CustomMappings: req.CustomMappings,
	}
	if req.CaseSensitive != nil {
		opts.CaseSensitive = *req.CaseSensitive
	}
	return opts
}

func (s *Server) render(req applyRequest) (engine.Result, error) {
	delta, err := s.palette(req)
	if err != nil {
		return engine.Result{}, err
	}
	res, err := engine.Apply(s.template, delta, s.engineOptions(req))
	if err != nil {
		return res, err
	}
	metricReplacements.Observe(float64(res.Replacements))
	return res, nil
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req applyRequest
	if err := decodeJSON(r, w, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.render(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleExport dispatches on ?format=svg|json.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	format, err := codec.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.export(w, r, format)
}

func (s *Server) handleExportLogo(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	s.export(w, r, codec.FormatSVG)
}

func (s *Server) handleExportScheme(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	s.export(w, r, codec.FormatJSON)
}

func (s *Server) export(w http.ResponseWriter, r *http.Request, format codec.Format) {
	var req applyRequest
	if err := decodeJSON(r, w, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	now := s.now()
	filename := req.Filename
	if filename == "" {
		filename = codec.DefaultFilename(format, now)
	}

	switch format {
	case codec.FormatSVG:
		res, err := s.render(req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if len(res.Errors) > 0 {
			s.writeError(w, r, fmt.Errorf("%w: %s", hexcolor.ErrInvalidColor, strings.Join(res.Errors, "; ")))
			return
		}
		metricExports.WithLabelValues(string(format)).Inc()
		w.Header().Set("Content-Type", logo.MediaType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, _ = io.WriteString(w, res.Document)

	case codec.FormatJSON:
		delta, err := s.palette(req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if err := validatePalette(delta); err != nil {
			s.writeError(w, r, err)
			return
		}
		name := req.Name
		if name == "" {
			name = codec.SchemeName(filename)
		}
		data, err := codec.Marshal(codec.Serialize(model.DefaultPalette().Merge(delta), name, now))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if req.Save || r.URL.Query().Get("save") == "true" {
			saved, err := s.store.SaveScheme(r.Context(), name, data)
			if err != nil {
				s.writeError(w, r, err)
				return
			}
			w.Header().Set("X-Scheme-ID", saved.ID)
		}
		metricExports.WithLabelValues(string(format)).Inc()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, _ = w.Write(data)
	}
}

// validatePalette reports every set slot holding an invalid color.
func validatePalette(p model.Palette) error {
	var bad []string
	for _, slot := range model.Slots() {
		if v := p.Get(slot); v != "" && !hexcolor.IsValid(v) {
			bad = append(bad, fmt.Sprintf("%s %q", slot, v))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", hexcolor.ErrInvalidColor, strings.Join(bad, ", "))
	}
	return nil
}

// ---------- import ----------

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	if !s.limiter.allow(clientKey(r), s.now()) {
		metricImports.WithLabelValues("limited").Inc()
		s.writeError(w, r, errRateLimited)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

	var (
		imp codec.Imported
		err error
	)
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "multipart/form-data" {
		file, header, ferr := r.FormFile("file")
		if ferr != nil {
			var tooBig *http.MaxBytesError
			if errors.As(ferr, &tooBig) {
				err = ferr
			} else {
				err = fmt.Errorf("%w: missing file field: %v", errBadRequest, ferr)
			}
		} else {
			defer file.Close()
			imp, err = codec.Import(file, header.Filename, header.Header.Get("Content-Type"), header.Size)
		}
	} else {
		imp, err = codec.Import(r.Body, r.URL.Query().Get("filename"), r.Header.Get("Content-Type"), r.ContentLength)
	}
	if err != nil {
		metricImports.WithLabelValues("rejected").Inc()
		s.writeError(w, r, err)
		return
	}

	metricImports.WithLabelValues("ok").Inc()
	s.logger.Info().Str("name", imp.Name).Int("warnings", len(imp.Warnings)).Msg("scheme imported")
	writeJSON(w, http.StatusOK, imp)
}

// ---------- saved schemes ----------

type saveRequest struct {
	Name   string        `json:"name"`
	Colors model.Palette `json:"colors"`
}

func (s *Server) handleSchemes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				s.writeError(w, r, fmt.Errorf("%w: invalid limit", errBadRequest))
				return
			}
			limit = n
		}
		list, err := s.store.ListSchemes(r.Context(), limit)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if list == nil {
			list = []model.SavedScheme{}
		}
		writeJSON(w, http.StatusOK, list)

	case http.MethodPost:
		var req saveRequest
		if err := decodeJSON(r, w, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		if err := validatePalette(req.Colors); err != nil {
			s.writeError(w, r, err)
			return
		}
		now := s.now()
		if req.Name == "" {
			req.Name = codec.SchemeName(codec.DefaultSchemeFilename(now))
		}
		data, err := codec.Marshal(codec.Serialize(model.DefaultPalette().Merge(req.Colors), req.Name, now))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		saved, err := s.store.SaveScheme(r.Context(), req.Name, data)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)

	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSchemeByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/schemes/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		sc, err := s.store.GetScheme(r.Context(), id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = io.WriteString(w, sc.Envelope)

	case http.MethodDelete:
		if err := s.store.DeleteScheme(r.Context(), id); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodDelete)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ---------- stats / contrast / schedules ----------

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	st, err := s.store.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type contrastResponse struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"aa"`
	AAA   bool    `json:"aaa"`
}

func (s *Server) handleContrast(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	ratio, err := hexcolor.Contrast(a, b)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contrastResponse{
		A:     a,
		B:     b,
		Ratio: ratio,
		AA:    ratio >= 4.5,
		AAA:   ratio >= 7,
	})
}

func (s *Server) handleSchedules(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.sched.Schedules())
}

func (s *Server) handleScheduleRun(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	if err := s.sched.RunNow(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
