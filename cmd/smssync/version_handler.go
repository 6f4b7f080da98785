package main

import (
	"net/http"

	"smssync/internal/versioning"
)

// handleVersion reports build and API version information.
func (s *Server) handleVersion() http.HandlerFunc {
	info := versioning.NewInfo(Version, GitCommit, BuildTime)
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, info)
	}
}
