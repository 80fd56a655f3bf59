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


// Package search ranks dictionary form groups against a query word.
//
// For every eligible group the Searcher takes the member closest to the
// query under distance.MeasureCore, adds the group-level terms once and keeps
// the best N results in a bounded max-heap. Candidates can be pruned by
// stress signature and by a regular expression over surface forms.
//
// The scan is sequential by default. WithPoolSize shards it over a worker
// pool and merges the per-shard heaps, which yields the same results up to
// the order of ties.
package search
