// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package stats serves a live statistics dashboard for a running Machine:
// go-echarts/statsview's own goroutine/heap charts (the same debug-server
// idiom the teacher wires up for its own long-running processes), plus a
// small JSON summary of this emulator's frame rate and CIA idle-skip counts,
// both behind rs/cors so a browser-hosted frontend on another origin can
// poll them.
package stats

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/rs/cors"
)

// Dashboard accumulates the frame and idle-skip counters the Scheduler
// reports and serves them alongside statsview's built-in charts.
type Dashboard struct {
	frames       uint64
	ciaIdleSkips uint64

	viewer    *statsview.Viewer
	summaryAt string
}

// New creates a Dashboard. addr is where statsview's own charts are served
// (e.g. "127.0.0.1:18066"); summaryAt is where this package's own JSON
// summary endpoint is served (e.g. "127.0.0.1:18067").
func New(addr, summaryAt string) *Dashboard {
	return &Dashboard{
		viewer:    statsview.New(viewer.WithAddr(addr)),
		summaryAt: summaryAt,
	}
}

// RecordFrame is called once per completed VIC frame.
func (d *Dashboard) RecordFrame() {
	atomic.AddUint64(&d.frames, 1)
}

// RecordIdleSkip is called once for every CIA Tick() the Scheduler skips via
// the idle-skip optimisation (§4.4).
func (d *Dashboard) RecordIdleSkip() {
	atomic.AddUint64(&d.ciaIdleSkips, 1)
}

type summary struct {
	Frames       uint64 `json:"frames"`
	CIAIdleSkips uint64 `json:"cia_idle_skips"`
}

func (d *Dashboard) summaryHandler(w http.ResponseWriter, r *http.Request) {
	s := summary{
		Frames:       atomic.LoadUint64(&d.frames),
		CIAIdleSkips: atomic.LoadUint64(&d.ciaIdleSkips),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

// Start begins serving statsview's charts and this package's summary
// endpoint in background goroutines. It does not block.
func (d *Dashboard) Start() {
	go d.viewer.Start()

	mux := http.NewServeMux()
	mux.HandleFunc("/stats/summary", d.summaryHandler)
	handler := cors.Default().Handler(mux)

	go func() {
		_ = http.ListenAndServe(d.summaryAt, handler)
	}()
}
