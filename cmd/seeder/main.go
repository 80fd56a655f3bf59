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


// Command seeder fills a lexicon store with the built-in sample lexicon, or
// with a lexicon file, and writes the matching themes file.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/rhymer/ingestion"
	"github.com/poiesic/rhymer/storage/badger"
)

var (
	dbPath       = flag.String("db", "./lexicon_db", "lexicon store directory")
	seedFileName = flag.String("src", "", "lexicon file of seed data (the sample lexicon if empty)")
	themesPath   = flag.String("themes", "", "write the sample themes YAML to this path")
	batchSize    = flag.Int("batch", 5, "entries per transaction")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func writeThemes(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, ingestion.SampleThemesYAML(), 0o644)
}

func main() {
	repo, backend, err := badger.OpenLexicon(*dbPath, badger.WithLogger(slog.Default()))
	if err != nil {
		panic(err)
	}
	defer backend.Close()
	defer repo.Close()

	importer, err := ingestion.NewImporter(repo,
		ingestion.WithBatchSize(*batchSize),
		ingestion.WithLogger(slog.Default()))
	if err != nil {
		panic(err)
	}

	// Determine source of seed data
	var source io.Reader = ingestion.Sample()
	if *seedFileName != "" {
		f, err := os.Open(*seedFileName)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		source = f
	}

	stats, err := importer.Import(context.Background(), source)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded lexicon", "db", *dbPath, "entries", stats.Entries, "batches", stats.Batches, "dimension", stats.Dimension)

	if *themesPath != "" {
		if err := writeThemes(*themesPath); err != nil {
			panic(err)
		}
		slog.Info("wrote themes", "path", *themesPath)
	}
}
