// Command invidx builds, persists and queries inverted indexes over
// tab-separated document datasets.
//
// Usage:
//
//	invidx build -d dataset.tsv -o inverted.index [-codec binary]
//	invidx query -i inverted.index [-q "cat dog"]... [-query-file queries.txt]
//
// Each -q flag is one conjunctive query; without -q, queries are read one
// per line from -query-file or stdin. Matching document ids are printed
// comma-joined, one line per query, best match first.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/madekit/invidx"
	"github.com/madekit/invidx/blobstore"
	"github.com/madekit/invidx/codec"
	"github.com/madekit/invidx/corpus"
	"github.com/madekit/invidx/index"
	"github.com/madekit/invidx/tokenizer"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "invidx:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: invidx <build|query> [flags]")
	}
	switch args[0] {
	case "build":
		return runBuild(args[1:])
	case "query":
		return runQuery(args[1:])
	default:
		return fmt.Errorf("unknown command %q (want build or query)", args[0])
	}
}

// multiFlag collects repeated occurrences of a string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, "; ") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func openStore(indexPath string) (*blobstore.LocalStore, string, error) {
	dir := filepath.Dir(indexPath)
	name := filepath.Base(indexPath)
	store, err := blobstore.NewLocalStore(dir)
	if err != nil {
		return nil, "", err
	}
	return store, name, nil
}

func newLogger(verbose bool) *invidx.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return invidx.NewTextLogger(level)
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	dataset := fs.String("d", "", "path to dataset to index")
	output := fs.String("o", "", "path to store the inverted index")
	codecName := fs.String("codec", "", "persistence codec (binary, json, binary+zstd, binary+lz4)")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dataset != "" {
		cfg.Dataset = *dataset
	}
	if *output != "" {
		cfg.Index = *output
	}
	if *codecName != "" {
		cfg.Codec = *codecName
	}
	if cfg.Dataset == "" {
		return fmt.Errorf("build: no dataset given (use -d)")
	}

	c, ok := codec.ByName(cfg.Codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", cfg.Codec)
	}
	logger := newLogger(*verbose)
	ctx := context.Background()

	docs, err := corpus.LoadFile(cfg.Dataset)
	if err != nil {
		return err
	}
	logger.Info("documents loaded", "path", cfg.Dataset, "documents", len(docs))

	idx, err := invidx.BuildIndex(ctx, docs, invidx.WithLogger(logger))
	if err != nil {
		return err
	}

	store, name, err := openStore(cfg.Index)
	if err != nil {
		return err
	}
	return invidx.SaveIndex(ctx, store, name, idx,
		invidx.WithLogger(logger), invidx.WithCodec(c))
}

func runQuery(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	indexPath := fs.String("i", "", "path to the inverted index")
	codecName := fs.String("codec", "", "persistence codec the index was written with")
	topN := fs.Int("n", 0, "maximum number of documents to return per query")
	queryFile := fs.String("query-file", "", "file with one query per line (default: stdin)")
	verbose := fs.Bool("v", false, "enable debug logging")
	var queries multiFlag
	fs.Var(&queries, "q", "query words (repeatable; each occurrence is one query)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *indexPath != "" {
		cfg.Index = *indexPath
	}
	if *codecName != "" {
		cfg.Codec = *codecName
	}
	if *topN > 0 {
		cfg.TopN = *topN
	}

	c, ok := codec.ByName(cfg.Codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", cfg.Codec)
	}
	logger := newLogger(*verbose)
	ctx := context.Background()

	store, name, err := openStore(cfg.Index)
	if err != nil {
		return err
	}
	idx, err := invidx.LoadIndex(ctx, store, name,
		invidx.WithLogger(logger), invidx.WithCodec(c))
	if err != nil {
		return err
	}

	if len(queries) > 0 {
		for _, q := range queries {
			if err := answer(idx, q, cfg.TopN); err != nil {
				return err
			}
		}
		return nil
	}

	in := io.Reader(os.Stdin)
	if *queryFile != "" {
		f, err := os.Open(*queryFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := answer(idx, line, cfg.TopN); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// answer normalizes one raw query line, evaluates it and prints the matching
// document ids comma-joined on stdout.
func answer(idx *index.Index, raw string, topN int) error {
	words := slices.Collect(tokenizer.Tokenize(raw))
	ids, err := invidx.Query(idx, words, topN)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(ids, ","))
	return nil
}
