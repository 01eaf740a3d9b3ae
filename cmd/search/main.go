package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scottcagno/searchbench/pkg/bench"
	"github.com/scottcagno/searchbench/pkg/corpus"
	"github.com/scottcagno/searchbench/pkg/logger"
	"github.com/scottcagno/searchbench/pkg/search"
	"github.com/scottcagno/searchbench/pkg/util"
)

var (
	//go:embed article1.txt
	article1 []byte

	//go:embed article2.txt
	article2 []byte
)

var (
	iterations = flag.Int("n", 100, "number of timed calls per algorithm and substring")
	runes      = flag.Bool("runes", false, "search by code point instead of by byte")
	level      = flag.String("log", "info", "log level: trace, debug, info, warn or error")
	path1      = flag.String("a1", "", "path to the first article (default: embedded article1.txt)")
	path2      = flag.String("a2", "", "path to the second article (default: embedded article2.txt)")
	existing1  = flag.String("e1", "алгоритм", "substring that occurs in the first article")
	missing1   = flag.String("m1", "qwertyzxcv", "substring that does not occur in the first article")
	existing2  = flag.String("e2", "даних", "substring that occurs in the second article")
	missing2   = flag.String("m2", "asdfghjkl", "substring that does not occur in the second article")
)

func loadArticle(path, name string, embedded []byte) (*corpus.Document, error) {
	if path == "" {
		return corpus.Parse(name, embedded)
	}
	return corpus.Load(path)
}

func main() {
	flag.Parse()

	log := logger.NewLogger(os.Stderr)
	if lvl, ok := logger.ParseLevel(*level); ok {
		log.SetLevel(lvl)
	} else {
		log.Warnf("unknown log level %q, using info", *level)
		log.SetLevel(logger.LevelInfo)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc1, err := loadArticle(*path1, "article1.txt", article1)
	if err != nil {
		log.Fatalf("loading article 1: %v", err)
	}
	doc2, err := loadArticle(*path2, "article2.txt", article2)
	if err != nil {
		log.Fatalf("loading article 2: %v", err)
	}
	log.Infof("loaded %s", doc1)
	log.Infof("loaded %s", doc2)

	var cases []bench.Case
	cases = append(cases, bench.Cases("Article 1", doc1, *existing1, *missing1, *runes)...)
	cases = append(cases, bench.Cases("Article 2", doc2, *existing2, *missing2, *runes)...)
	for _, c := range cases {
		log.Debugf("case %q: pattern=%q expect=%d", c.Name, c.Pattern, c.Expect)
	}

	conf := &bench.Config{
		Iterations:    *iterations,
		Runes:         *runes,
		ProgressEvery: time.Second,
		Logger:        log,
	}
	log.Infof("config: %s", conf)

	searchers := search.Searchers()
	t1 := time.Now()
	results, err := bench.NewRunner(conf).Run(ctx, searchers, cases)
	if err != nil {
		log.Warnf("run stopped early: %v", err)
	}
	log.Info(util.FormatTime("benchmark", t1, time.Now()))

	if err := bench.WriteReport(os.Stdout, results); err != nil {
		log.Fatalf("writing report: %v", err)
	}
	for _, s := range searchers {
		fmt.Printf("%s total: %s\n", s, util.Seconds(bench.Total(results, s.String())))
	}
}
