package httpserver

import (
	"net/http"
)

// handleStatic handles single-field lookups.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	var req BondRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	value, err := s.service.StaticField(r.Context(), req.ISIN, req.Field)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Value: value})
}

// handleInfo handles full-record lookups.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	var req BondRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	rows, err := s.service.Info(r.Context(), req.ISIN, req.WithHeaders)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Rows: rows})
}

// handleList handles ISIN listings by country.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	var req ListRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	isins, err := s.service.List(r.Context(), req.Country, req.SecurityType, req.Limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Rows: isins})
}

// handleSearch handles multi-filter searches.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	isins, err := s.service.Search(r.Context(), req.Filters)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Rows: isins})
}

// handleCount handles bond counting, optionally per country.
func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.service.Count(r.Context(), r.URL.Query().Get("country"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Value: count})
}

// handleYearsToMaturity handles years-to-maturity calculations.
func (s *Server) handleYearsToMaturity(w http.ResponseWriter, r *http.Request) {
	var req BondRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	years, err := s.service.YearsToMaturity(r.Context(), req.ISIN, req.AsOf)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Value: years})
}

// handleMaturityRange handles maturity window queries.
func (s *Server) handleMaturityRange(w http.ResponseWriter, r *http.Request) {
	var req MaturityRangeRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	rows, err := s.service.MaturityRange(r.Context(), req.FromDate, req.ToDate, req.Country)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Rows: rows})
}

// handleCouponFrequency handles coupon frequency lookups.
func (s *Server) handleCouponFrequency(w http.ResponseWriter, r *http.Request) {
	var req BondRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	text, err := s.service.CouponFrequencyText(r.Context(), req.ISIN)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Value: text})
}

// handleIsLinker handles inflation-link checks.
func (s *Server) handleIsLinker(w http.ResponseWriter, r *http.Request) {
	var req BondRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	linker, err := s.service.IsIndexLinked(r.Context(), req.ISIN)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Value: linker})
}

// handleRefresh handles upstream refresh triggers.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	message, err := s.service.Refresh(r.Context(), req.Country)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Value: message})
}

// handleLineage handles source attribution lookups.
func (s *Server) handleLineage(w http.ResponseWriter, r *http.Request) {
	var req BondRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	text, err := s.service.Lineage(r.Context(), req.ISIN, req.Field)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Value: text})
}

// handleHistory handles change history lookups.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	var req BondRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	rows, err := s.service.History(r.Context(), req.ISIN, req.Limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Rows: rows})
}

// handleCorporateActions handles corporate action lookups.
func (s *Server) handleCorporateActions(w http.ResponseWriter, r *http.Request) {
	var req ActionsRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	rows, err := s.service.CorporateActions(r.Context(), req.ActionType, req.DaysAhead)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Rows: rows})
}

// handleStatus reports upstream connectivity.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, OpResponse{Success: true, Value: s.service.APIStatus(r.Context())})
}

// handleCacheClear empties the bond cache and reports how many entries
// were removed.
func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, OpResponse{Success: true, Value: s.service.ClearCache()})
}

// handleCacheStats reports the bond cache snapshot.
func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, CacheStatsResponse{
		Success:   true,
		Stats:     s.service.CacheStats(),
		Formatted: s.service.FormatCacheStats(),
	})
}

// handleHelp serves the reference tables.
func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	rows, err := s.service.Help(r.URL.Query().Get("topic"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Rows: rows})
}

// handleValidateISIN validates an ISIN without touching the upstream.
func (s *Server) handleValidateISIN(w http.ResponseWriter, r *http.Request) {
	var req BondRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	s.writeResponse(w, OpResponse{Success: true, Value: s.service.ValidateISIN(req.ISIN)})
}
