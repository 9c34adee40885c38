//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package progress keeps the latest run state behind an unbounded channel,
// so the scanner can publish without ever blocking on a slow reader.
package progress

import (
	"sync"

	infinity "github.com/Code-Hex/go-infinity-channel"
)

type Update struct {
	Stage string `json:"stage"`
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	RunID string `json:"run"`
}

type Snapshot struct {
	Current Update   `json:"current"`
	History []Update `json:"history"`

	// Counters updated out of band by the scanner
	IDsScanned      int64 `json:"idsScanned"`
	DuplicatesFound int64 `json:"duplicatesFound"`
	RowsFetched     int64 `json:"rowsFetched"`
}

var (
	mu       sync.RWMutex
	snapshot Snapshot

	ch   = infinity.NewChannel[Update]()
	once sync.Once
)

func consume() {
	for u := range ch.Out() {
		mu.Lock()
		snapshot.Current = u
		snapshot.History = append(snapshot.History, u)
		mu.Unlock()
	}
}

// Publish records a stage transition. The first call starts the consumer.
func Publish(u Update) {
	once.Do(func() { go consume() })
	ch.In() <- u
}

func AddIDsScanned(n int64) {
	mu.Lock()
	snapshot.IDsScanned += n
	mu.Unlock()
}

func AddDuplicatesFound(n int64) {
	mu.Lock()
	snapshot.DuplicatesFound += n
	mu.Unlock()
}

func AddRowsFetched(n int64) {
	mu.Lock()
	snapshot.RowsFetched += n
	mu.Unlock()
}

// Get returns a copy of the current snapshot.
func Get() Snapshot {
	mu.RLock()
	defer mu.RUnlock()
	s := snapshot
	s.History = append([]Update(nil), snapshot.History...)
	return s
}

// Close drains the stream; only used on shutdown.
func Close() {
	ch.Close()
}
