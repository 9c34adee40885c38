//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package server

import (
	"net"
	"net/http"
	"sync"
)

type idleTracker struct {
	mux               sync.Mutex
	activeConnections int
	totalConnections  int
}

func newIdleTracker() *idleTracker {
	return &idleTracker{
		totalConnections: 0,
	}
}

func (t *idleTracker) TotalConnections() int {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.totalConnections
}

func (t *idleTracker) ConnState(conn net.Conn, state http.ConnState) {
	t.mux.Lock()
	defer t.mux.Unlock()
	switch state {
	case http.StateNew:
		t.totalConnections++
	case http.StateActive:
		t.activeConnections++
	case http.StateClosed, http.StateHijacked:
		t.activeConnections--
	}
}
