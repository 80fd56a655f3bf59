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


package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/rhymer"
	"github.com/poiesic/rhymer/config"
	"github.com/poiesic/rhymer/distance"
	"github.com/poiesic/rhymer/ingestion"
	"github.com/poiesic/rhymer/search"
	"github.com/poiesic/rhymer/storage/badger"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const categoriesHelp = `Grammatical categories, joined with "+":
   с      noun             п      adjective
   мс     pronoun-noun     мс-п   pronoun-adjective
   г      verb             н      adverb
   числ   numeral          числ-п ordinal numeral
   вводн  parenthetical    межд   interjection
   предик predicative      предл  preposition
   союз   conjunction      сравн  comparative
   част   particle         ?      idiom fragment`

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB lexicon directory",
		Required: true,
	}
}

func finderFlags() []cli.Flag {
	return []cli.Flag{
		dbFlag(),
		&cli.StringFlag{
			Name:  "weights",
			Usage: "Path to weights YAML (defaults are used if absent)",
			Value: "config/weights.yaml",
		},
		&cli.StringFlag{
			Name:  "themes",
			Usage: "Path to themes YAML",
			Value: "config/themes.yaml",
		},
		&cli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Semantic theme name from the themes file",
		},
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "rhymer",
		Usage:     "Find Russian rhymes by phonetic and semantic distance",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "find",
				Usage:     "Find the words closest to a query (mark the stress with ')",
				ArgsUsage: "<word>",
				Action:    findCommand,
				Flags: append(finderFlags(),
					&cli.StringFlag{
						Name:    "exclude",
						Aliases: []string{"r"},
						Usage:   "Categories to remove from results. " + categoriesHelp,
					},
					&cli.StringFlag{
						Name:    "constraint",
						Aliases: []string{"c"},
						Usage:   "Regular expression every result must match",
					},
					&cli.IntFlag{
						Name:    "top-n",
						Aliases: []string{"n"},
						Usage:   "Number of results",
						Value:   100,
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Print every distance term and log search stages",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Number of scan workers",
						Value:   1,
					},
				),
			},
			{
				Name:      "measure",
				Usage:     "Print the distance between two words as YAML",
				ArgsUsage: "<word> <other>",
				Action:    measureCommand,
				Flags:     finderFlags(),
			},
			{
				Name:      "import",
				Usage:     "Import a lexicon file (lemma<TAB>template<TAB>vector) into the store",
				ArgsUsage: "<file|->",
				Action:    importCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.BoolFlag{
						Name:  "sample",
						Usage: "Import the built-in sample lexicon instead of a file",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of entries written per transaction",
						Value: 500,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N entries",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts for a batch that fails to commit",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 100 * time.Millisecond,
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Write the stored lexicon in lexicon file format",
				ArgsUsage: "[file]",
				Action:    exportCommand,
				Flags:     []cli.Flag{dbFlag()},
			},
			{
				Name:   "weights",
				Usage:  "Print the effective weights as YAML",
				Action: weightsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "weights",
						Usage: "Path to weights YAML (defaults are used if absent)",
						Value: "config/weights.yaml",
					},
				},
			},
		},
	}
}

func openFinder(c *cli.Context) (*rhymer.Finder, error) {
	weights, err := config.Load(c.String("weights"))
	if err != nil {
		return nil, err
	}
	themes, err := config.LoadThemes(c.String("themes"))
	if err != nil {
		return nil, err
	}
	workers := 1
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}
	return rhymer.OpenFinder(c.Context, c.String("db"),
		rhymer.WithWeights(weights),
		rhymer.WithThemes(themes),
		rhymer.WithPoolSize(workers),
		rhymer.WithLogger(slog.Default()))
}

func findCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("find takes exactly one word, got %d arguments", c.NArg())
	}

	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	req := rhymer.Request{
		Text:       c.Args().First(),
		Theme:      c.String("theme"),
		Exclude:    rhymer.SplitCategories(c.String("exclude")),
		Constraint: c.String("constraint"),
		TopN:       c.Int("top-n"),
	}
	if c.Bool("debug") {
		req.Monitor = &search.LogMonitor{Logger: slog.Default()}
	}

	results, err := finder.Find(c.Context, req)
	if err != nil {
		return err
	}

	out := c.App.Writer
	if c.Bool("debug") {
		return writeYAML(out, breakdowns(finder, results))
	}
	for _, r := range results {
		fmt.Fprintln(out, r.Word.Text())
	}
	return nil
}

// breakdown is the YAML form of one result.
type breakdown struct {
	Word            string `yaml:"word"`
	Lemma           string `yaml:"lemma,omitempty"`
	Category        string `yaml:"category,omitempty"`
	distance.Result `yaml:",inline"`
}

func breakdownOf(finder *rhymer.Finder, r distance.Result) breakdown {
	b := breakdown{Word: r.Word.Text(), Result: r}
	if r.Group >= 0 {
		g := finder.Index().Group(r.Group)
		b.Lemma, b.Category = g.Lemma, g.Category
	}
	return b
}

func breakdowns(finder *rhymer.Finder, results []distance.Result) []breakdown {
	out := make([]breakdown, len(results))
	for i, r := range results {
		out[i] = breakdownOf(finder, r)
	}
	return out
}

func measureCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("measure takes two words, got %d arguments", c.NArg())
	}

	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	res, err := finder.Measure(c.Context, c.Args().Get(0), c.Args().Get(1), c.String("theme"))
	if err != nil {
		return err
	}
	return writeYAML(c.App.Writer, breakdownOf(finder, res))
}

func importCommand(c *cli.Context) error {
	var (
		src  io.Reader
		name string
	)
	switch {
	case c.Bool("sample"):
		src, name = ingestion.Sample(), "sample"
	case c.NArg() != 1:
		return fmt.Errorf("import takes one file (or - for stdin), got %d arguments", c.NArg())
	case c.Args().First() == "-":
		src, name = os.Stdin, "stdin"
	default:
		name = c.Args().First()
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open lexicon file: %w", err)
		}
		defer f.Close()
		src = f
	}

	repo, backend, err := badger.OpenLexicon(c.String("db"), badger.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()
	defer repo.Close()

	importer, err := ingestion.NewImporter(repo,
		ingestion.WithBatchSize(c.Int("batch-size")),
		ingestion.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
		ingestion.WithProgress(c.App.ErrWriter, 0, c.Int("report-interval")),
		ingestion.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.ErrWriter, "Database: %s\nSource: %s\n", c.String("db"), name)
	stats, err := importer.Import(c.Context, src)
	if err != nil {
		return fmt.Errorf("import failed after %d entries: %w", stats.Entries, err)
	}
	fmt.Fprintf(c.App.ErrWriter, "Imported %d entries (dimension %d) in %s\n", stats.Entries, stats.Dimension, stats.Elapsed.Round(time.Millisecond))
	return nil
}

func exportCommand(c *cli.Context) error {
	out := c.App.Writer
	if c.NArg() > 0 {
		f, err := os.Create(c.Args().First())
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	repo, backend, err := badger.OpenLexicon(c.String("db"), badger.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()
	defer repo.Close()

	for entry, err := range repo.Entries(c.Context) {
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		if _, err := fmt.Fprintln(out, ingestion.FormatEntry(entry)); err != nil {
			return err
		}
	}
	return nil
}

func weightsCommand(c *cli.Context) error {
	weights, err := config.Load(c.String("weights"))
	if err != nil {
		return err
	}
	return writeYAML(c.App.Writer, weights)
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
