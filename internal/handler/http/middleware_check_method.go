// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches but the method is not registered. The
// vault answers 404 instead, so callers cannot probe which routes exist. A
// request whose method does match (e.g. after a trailing-slash rewrite) is
// passed back to the router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			notFound(w, r)
			return
		}
		router.ServeHTTP(w, r)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
