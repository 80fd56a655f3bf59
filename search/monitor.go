// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"log/slog"

	"github.com/poiesic/rhymer/distance"
	"github.com/poiesic/rhymer/phonetics"
)

// SearchMonitor observes the stages of FindBestWithMonitor. Calls happen on
// the goroutine that called FindBestWithMonitor.
type SearchMonitor interface {
	Start(query *phonetics.Word)
	AfterCandidateFilter(candidates int, filtered bool)
	AfterScan(scored, skipped int)
	Finish(results []distance.Result)
}

type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *phonetics.Word)            {}
func (n *noopMonitor) AfterCandidateFilter(_ int, _ bool) {}
func (n *noopMonitor) AfterScan(_, _ int)                 {}
func (n *noopMonitor) Finish(_ []distance.Result)         {}

// LogMonitor reports every stage at debug level.
type LogMonitor struct {
	Logger *slog.Logger
}

var _ SearchMonitor = (*LogMonitor)(nil)

func (m *LogMonitor) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

func (m *LogMonitor) Start(query *phonetics.Word) {
	m.logger().Debug("search started", "query", query.Text(), "transcription", query.Transcription())
}

func (m *LogMonitor) AfterCandidateFilter(candidates int, filtered bool) {
	m.logger().Debug("candidates filtered", "candidates", candidates, "filtered", filtered)
}

func (m *LogMonitor) AfterScan(scored, skipped int) {
	m.logger().Debug("groups scanned", "scored", scored, "skipped", skipped)
}

func (m *LogMonitor) Finish(results []distance.Result) {
	if len(results) == 0 {
		m.logger().Debug("search finished", "results", 0)
		return
	}
	m.logger().Debug("search finished", "results", len(results), "best", results[0].Total)
}
