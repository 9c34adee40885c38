//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package server

import (
	"fmt"
	"net/http"
	"runtime"

	"waben/pkg/api/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// PanicHandler captures panics from endpoint handlers and logs stack trace
func PanicHandler() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// http.Server hides panics from handlers, we want to record them and fix the cause
			defer func() {
				if err := recover(); err != nil {
					buf := make([]byte, 1<<20) //nolint:mnd
					n := runtime.Stack(buf, true)
					logrus.Warnf("Recovering from API service endpoint handler panic: %v, %s", err, buf[:n])
					utils.Error(w, http.StatusInternalServerError, fmt.Errorf("%v", err))
				}
			}()

			h.ServeHTTP(w, r)
		})
	}
}

// ReferenceIDHandler adds a unique id to every request so client and server
// logs can be correlated.
func ReferenceIDHandler() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Reference-Id")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Reference-Id", rid)
			h.ServeHTTP(w, r)
		})
	}
}

// APIHandler is a wrapper to enhance HandlerFunc's and remove redundant code
func (s *APIServer) APIHandler(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			logrus.Errorf("Failed Request: unable to parse form: %v", err)
		}
		h(w, r)
	}
}
