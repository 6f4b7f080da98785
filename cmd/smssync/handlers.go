package main

import (
	"encoding/json"
	"net/http"

	"smssync/internal/constants"
	"smssync/internal/errors"
	"smssync/internal/features"
	"smssync/internal/models"
	"smssync/internal/privacy"
	"smssync/internal/service"
	"smssync/internal/session"
	"smssync/internal/validation"

	"github.com/sirupsen/logrus"
)

// apiRequest is the single envelope for every API call; the Path field
// selects the operation.
type apiRequest struct {
	Path      string   `json:"path"`
	Email     string   `json:"email,omitempty"`
	Password  string   `json:"password,omitempty"`
	CSRFToken string   `json:"csrfToken,omitempty"`
	Filter    string   `json:"filter,omitempty"`
	Search    string   `json:"search,omitempty"`
	Sort      string   `json:"sort,omitempty"`
	ID        string   `json:"id,omitempty"`
	IDs       []string `json:"ids,omitempty"`
	Action    string   `json:"action,omitempty"`
}

type sessionUser struct {
	Email string `json:"email"`
}

type loginResponse struct {
	OK        bool   `json:"ok"`
	CSRFToken string `json:"csrfToken"`
}

type sessionResponse struct {
	OK        bool         `json:"ok"`
	User      *sessionUser `json:"user,omitempty"`
	CSRFToken string       `json:"csrfToken,omitempty"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type listResponse struct {
	OK    bool             `json:"ok"`
	Items []models.Message `json:"items"`
}

type updateResponse struct {
	OK   bool            `json:"ok"`
	Item *models.Message `json:"item,omitempty"`
}

type bulkResponse struct {
	OK      bool             `json:"ok"`
	Updated []models.Message `json:"updated"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (s *Server) handleAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := validation.ValidateHTTPRequestSize(r, constants.MaxRequestBodyBytes); err != nil {
			s.respondError(w, r, err)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)

		// A malformed body routes to the unknown-path branch rather than
		// failing outright, matching the permissive wire contract.
		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			req = apiRequest{}
		}

		switch req.Path {
		case "/login":
			s.handleLogin(w, r, &req)
		case "/session":
			s.handleSession(w, r, &req)
		case "/logout":
			s.handleLogout(w, r, &req)
		case "/list":
			s.handleList(w, r, &req)
		case "/update":
			s.handleUpdate(w, r, &req)
		case "/bulk":
			s.handleBulk(w, r, &req)
		default:
			s.respondError(w, r, errors.NewNotFoundError("path", req.Path))
		}
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, req *apiRequest) {
	if err := validation.ValidateCredentials(req.Email, req.Password); err != nil {
		s.respondError(w, r, err)
		return
	}

	if err := s.auth.Authenticate(req.Email, req.Password); err != nil {
		s.logger.WithField("email", privacy.MaskEmail(req.Email)).Warn("Login failed")
		s.respondError(w, r, err)
		return
	}

	// Session fixation defense: any pre-existing session is discarded and
	// a fresh identifier issued.
	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
		s.sessions.Destroy(cookie.Value)
	}

	sess, err := s.sessions.Create(req.Email)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.setSessionCookie(w, r, sess.ID)
	s.writeJSON(w, http.StatusOK, loginResponse{OK: true, CSRFToken: sess.CSRFToken})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request, _ *apiRequest) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil {
		s.writeJSON(w, http.StatusOK, sessionResponse{OK: false})
		return
	}

	// Refreshes the idle timer but does not rotate the CSRF token.
	sess, err := s.sessions.Touch(cookie.Value)
	if err != nil {
		s.writeJSON(w, http.StatusOK, sessionResponse{OK: false})
		return
	}

	s.writeJSON(w, http.StatusOK, sessionResponse{
		OK:        true,
		User:      &sessionUser{Email: sess.Email},
		CSRFToken: sess.CSRFToken,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, req *apiRequest) {
	sess, ok := s.gate(w, r, req)
	if !ok {
		return
	}

	s.sessions.Destroy(sess.ID)
	s.clearSessionCookie(w, r)
	s.writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request, req *apiRequest) {
	if _, ok := s.gate(w, r, req); !ok {
		return
	}

	if err := validation.ValidateSearch(req.Search); err != nil {
		s.respondError(w, r, err)
		return
	}

	items, err := s.inbox.List(models.ParseFilter(req.Filter), req.Search, service.ParseSortOrder(req.Sort))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, listResponse{OK: true, Items: items})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request, req *apiRequest) {
	if _, ok := s.gate(w, r, req); !ok {
		return
	}

	if err := validation.ValidateUpdateRequest(req.ID, req.Action); err != nil {
		s.respondError(w, r, err)
		return
	}

	action, err := models.ParseAction(req.Action)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	item, err := s.inbox.Update(req.ID, action)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, updateResponse{OK: true, Item: item})
}

func (s *Server) handleBulk(w http.ResponseWriter, r *http.Request, req *apiRequest) {
	if _, ok := s.gate(w, r, req); !ok {
		return
	}

	if !features.IsEnabled(features.FlagBulkOperations) {
		s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "bulk operations are disabled").
			WithUserMessage("Bulk operations disabled"))
		return
	}

	if err := validation.ValidateBulkRequest(req.IDs, req.Action); err != nil {
		s.respondError(w, r, err)
		return
	}

	action, err := models.ParseAction(req.Action)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	updated, err := s.inbox.Bulk(req.IDs, action)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, bulkResponse{OK: true, Updated: updated})
}

// gate validates the session cookie and CSRF token for a data-touching
// request. On failure it writes the error response and returns false.
func (s *Server) gate(w http.ResponseWriter, r *http.Request, req *apiRequest) (*session.Session, bool) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil {
		s.respondError(w, r, errors.NewAuthRequiredError())
		return nil, false
	}

	sess, err := s.sessions.Touch(cookie.Value)
	if err != nil {
		s.respondError(w, r, err)
		return nil, false
	}

	if err := s.sessions.ValidateCSRF(sess, req.CSRFToken); err != nil {
		s.respondError(w, r, err)
		return nil, false
	}

	return sess, true
}

func (s *Server) setSessionCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		s.logger.Warnf("Failed to encode response: %v", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatusCode(err)

	logLevel := logrus.WarnLevel
	if status >= 500 {
		logLevel = logrus.ErrorLevel
	}
	s.logger.WithFields(logrus.Fields{
		"error_code":  errors.GetCode(err),
		"status_code": status,
		"url":         r.URL.Path,
	}).Log(logLevel, err.Error())

	s.writeJSON(w, status, errorResponse{OK: false, Error: errors.GetUserMessage(err)})
}
