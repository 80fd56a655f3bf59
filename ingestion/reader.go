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


package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/poiesic/rhymer/core"
)

// maxLineSize bounds a single lexicon line; vectors of a few hundred
// components fit comfortably.
const maxLineSize = 1 << 20

// ParseLine parses one lexicon line. Blank and comment lines return a nil
// entry and no error.
func ParseLine(line string) (*core.Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
		return nil, nil
	}

	fields := strings.Split(line, "\t")
	if len(fields) < 2 || len(fields) > 3 {
		return nil, fmt.Errorf("%w: want 2 or 3 tab-separated fields, got %d", ErrMalformedLine, len(fields))
	}

	lemma := strings.ToLower(strings.TrimSpace(fields[0]))
	template := strings.TrimSpace(fields[1])

	var vector []float32
	if len(fields) == 3 {
		for i, s := range strings.Fields(fields[2]) {
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: vector component %d: %w", ErrMalformedLine, i, err)
			}
			vector = append(vector, float32(f))
		}
	}

	entry := core.NewEntry(lemma, template, vector)
	if err := core.ValidateEntry(entry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	return entry, nil
}

// ReadEntries yields the entries of a lexicon file in order. A parse error
// is yielded as a *LineError and ends the sequence.
func ReadEntries(r io.Reader) iter.Seq2[*core.Entry, error] {
	return func(yield func(*core.Entry, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNo := 0
		for scanner.Scan() {
			lineNo++
			entry, err := ParseLine(scanner.Text())
			if err != nil {
				yield(nil, &LineError{Line: lineNo, Err: err})
				return
			}
			if entry == nil {
				continue
			}
			if !yield(entry, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, &LineError{Line: lineNo + 1, Err: err})
		}
	}
}

// FormatEntry renders an entry as a lexicon line without the trailing newline.
func FormatEntry(entry *core.Entry) string {
	var b strings.Builder
	b.WriteString(entry.Lemma)
	b.WriteByte('\t')
	b.WriteString(entry.Template)
	if len(entry.Vector) > 0 {
		b.WriteByte('\t')
		for i, v := range entry.Vector {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		}
	}
	return b.String()
}
