package server

import (
	"bytes"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/zalepa/ourvoice/catalog"
	"github.com/zalepa/ourvoice/chart"
	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/metrics"
)

//go:embed web.html
var indexHTML []byte

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

type districtView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameHi      string `json:"nameHi"`
	DisplayName string `json:"displayName"`
}

type regionView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	NameHi      string         `json:"nameHi"`
	DisplayName string         `json:"displayName"`
	Districts   []districtView `json:"districts"`
}

type metricView struct {
	Kind        metrics.Kind       `json:"kind"`
	Title       string             `json:"title"`
	Value       int                `json:"value"`
	Formatted   string             `json:"formatted"`
	Unit        string             `json:"unit,omitempty"`
	Status      metrics.Status     `json:"status"`
	StatusLabel string             `json:"statusLabel"`
	Comparison  metrics.Comparison `json:"comparison"`
	Sentence    string             `json:"sentence"`
	ChartURL    string             `json:"chartUrl"`
}

type dashboardResponse struct {
	SnapshotID string            `json:"snapshotId"`
	Language   i18n.Language     `json:"language"`
	Snapshot   metrics.Snapshot  `json:"snapshot"`
	Metrics    []metricView      `json:"metrics"`
	TrendURL   string            `json:"trendUrl"`
	Labels     map[string]string `json:"labels"`
}

type locateResponse struct {
	Region   regionView   `json:"region"`
	District districtView `json:"district"`
}

func newDistrictView(d catalog.SubRegion, lang i18n.Language) districtView {
	return districtView{ID: d.ID, Name: d.Name, NameHi: d.NameHi, DisplayName: d.DisplayName(lang)}
}

func newRegionView(r catalog.Region, lang i18n.Language) regionView {
	v := regionView{
		ID:          r.ID,
		Name:        r.Name,
		NameHi:      r.NameHi,
		DisplayName: r.DisplayName(lang),
		Districts:   make([]districtView, len(r.SubRegions)),
	}
	for i, d := range r.SubRegions {
		v.Districts[i] = newDistrictView(d, lang)
	}
	return v
}

// language picks the display language for r: the lang query parameter, then
// Accept-Language, then the configured default.
func (s *Server) language(r *http.Request) i18n.Language {
	explicit := r.URL.Query().Get("lang")
	accept := r.Header.Get("Accept-Language")
	if explicit == "" && accept == "" {
		return s.cfg.Language()
	}
	return i18n.Negotiate(explicit, accept)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"time":      time.Now().UTC().Format(time.RFC3339),
		"snapshots": s.snapshots.Len(),
	})
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	respondJSON(w, http.StatusOK, map[string]any{
		"language": lang,
		"labels":   i18n.Bundle(lang),
	})
}

// Catalog handlers

func (s *Server) handleListRegions(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	regions := s.catalog.Regions()
	views := make([]regionView, len(regions))
	for i, reg := range regions {
		views[i] = newRegionView(reg, lang)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"regions": views,
		"total":   len(views),
	})
}

func (s *Server) handleGetRegion(w http.ResponseWriter, r *http.Request) {
	reg, err := s.catalog.FindRegion(chi.URLParam(r, "regionID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, newRegionView(reg, s.language(r)))
}

func (s *Server) handleGetDistrict(w http.ResponseWriter, r *http.Request) {
	_, d, err := s.catalog.FindSubRegion(chi.URLParam(r, "regionID"), chi.URLParam(r, "districtID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, newDistrictView(d, s.language(r)))
}

// Dashboard handlers

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, name, state := q.Get("district"), q.Get("name"), q.Get("state")
	if id == "" || name == "" || state == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "district, name and state are required")
		return
	}
	s.respondDashboard(w, r, id, name, state)
}

func (s *Server) handleDistrictDashboard(w http.ResponseWriter, r *http.Request) {
	reg, d, err := s.catalog.FindSubRegion(chi.URLParam(r, "regionID"), chi.URLParam(r, "districtID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	s.respondDashboard(w, r, d.ID, d.Name, reg.Name)
}

func (s *Server) respondDashboard(w http.ResponseWriter, r *http.Request, id, name, state string) {
	lang := s.language(r)
	snap := s.generator.Generate(id, name, state)
	snapID := s.snapshots.Put(snap)

	slog.Debug("snapshot issued", "snapshot_id", snapID, "district", id, "state", state)
	respondJSON(w, http.StatusOK, newDashboardResponse(snapID, snap, lang))
}

func newDashboardResponse(snapID string, snap metrics.Snapshot, lang i18n.Language) dashboardResponse {
	base := "/api/v1/snapshots/" + snapID
	suffix := "?lang=" + string(lang)

	resp := dashboardResponse{
		SnapshotID: snapID,
		Language:   lang,
		Snapshot:   snap,
		TrendURL:   base + "/trend.svg" + suffix,
		Labels:     i18n.Bundle(lang),
	}
	for _, k := range metrics.Kinds {
		v := snap.Value(k)
		st := metrics.Classify(v, k)
		cmp := metrics.CompareToState(snap, k)
		resp.Metrics = append(resp.Metrics, metricView{
			Kind:        k,
			Title:       k.Title(lang),
			Value:       v,
			Formatted:   metrics.FormatIndian(v),
			Unit:        k.Unit(),
			Status:      st,
			StatusLabel: st.Label(lang),
			Comparison:  cmp,
			Sentence:    cmp.Sentence(lang),
			ChartURL:    base + "/compare/" + string(k) + ".svg" + suffix,
		})
	}
	return resp
}

func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	reg, d, err := s.locator.Locate(r.Context())
	switch {
	case errors.Is(err, catalog.ErrNoDistricts):
		respondError(w, http.StatusServiceUnavailable, "no_districts", err.Error())
		return
	case err != nil:
		slog.Info("locate abandoned", "error", err, "request_id", middleware.GetReqID(r.Context()))
		respondError(w, http.StatusServiceUnavailable, "locate_cancelled", err.Error())
		return
	}
	lang := s.language(r)
	respondJSON(w, http.StatusOK, locateResponse{
		Region:   newRegionView(reg, lang),
		District: newDistrictView(d, lang),
	})
}

// Snapshot handlers

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (metrics.Snapshot, bool) {
	snap, ok := s.snapshots.Get(chi.URLParam(r, "snapshotID"))
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "snapshot not found or expired")
	}
	return snap, ok
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) handleTrendSVG(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	p, err := chart.Trend(snap, s.language(r))
	if err != nil {
		slog.Error("failed to build trend chart", "error", err)
		respondError(w, http.StatusInternalServerError, "chart_error", "failed to build chart")
		return
	}
	writeSVG(w, p)
}

func (s *Server) handleCompareSVG(w http.ResponseWriter, r *http.Request) {
	kind, err := metrics.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	lang := s.language(r)
	p, err := chart.Comparison(metrics.CompareToState(snap, kind), kind.Label(lang), lang)
	if err != nil {
		slog.Error("failed to build comparison chart", "error", err, "kind", kind)
		respondError(w, http.StatusInternalServerError, "chart_error", "failed to build chart")
		return
	}
	writeSVG(w, p)
}

func writeSVG(w http.ResponseWriter, p *plot.Plot) {
	var buf bytes.Buffer
	if err := chart.WriteSVG(&buf, p, chartWidth, chartHeight); err != nil {
		slog.Error("failed to render svg", "error", err)
		respondError(w, http.StatusInternalServerError, "chart_error", "failed to render chart")
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.Write(buf.Bytes())
}
