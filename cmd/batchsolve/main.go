// Command batchsolve runs many independent generate() calls concurrently
// against one or more learned models and reports the success rate and
// timing across seeds, the way a parameter sweep samples many points at
// once instead of one at a time. Sweeping several -sources/-n-values
// combinations shares one modelcache.Cache across the whole run, so a
// (source, N) pair repeated in the sweep is learned only once.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"tilewave/internal/wfc"
	"tilewave/pkg/examples"
	"tilewave/pkg/modelcache"
)

type result struct {
	seed     int64
	ok       bool
	err      error
	duration time.Duration
}

func main() {
	var (
		sources     = flag.String("sources", "checker", "comma-separated example sources to learn from (see -list)")
		nValues     = flag.String("n-values", "2", "comma-separated pattern sizes N to sweep")
		width       = flag.Int("width", 32, "output width in tiles")
		height      = flag.Int("height", 32, "output height in tiles")
		sourceSize  = flag.Int("source-size", 24, "size of the generated training image")
		baseSeed    = flag.Int64("seed", 1, "first seed in each batch")
		count       = flag.Int("count", 100, "number of seeds to try per (source, N) combination")
		maxAttempts = flag.Int("max-attempts", 50, "maximum retry attempts per generate call")
		workers     = flag.Int("workers", runtime.NumCPU(), "number of concurrent workers per batch")
		list        = flag.Bool("list", false, "list available example sources and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range examples.Sources() {
			fmt.Println(name)
		}
		return
	}

	sourceNames := strings.Split(*sources, ",")
	ns, err := parseInts(*nValues)
	if err != nil {
		log.Fatalf("parsing -n-values: %v", err)
	}

	cache := modelcache.New()
	for _, source := range sourceNames {
		source = strings.TrimSpace(source)
		factory, ok := examples.Get(source)
		if !ok {
			log.Fatalf("unknown source %q (see -list)", source)
		}
		img := factory(*sourceSize, *sourceSize, *baseSeed)

		for _, n := range ns {
			learned, err := cache.GetOrLearn([]wfc.Tilemap{img}, n)
			if err != nil {
				log.Fatalf("learning from %q at N=%d: %v", source, n, err)
			}
			model := wfc.NewModelFrom(learned)
			rate, avg := runBatch(model, *width, *height, *maxAttempts, *baseSeed, *count, *workers)
			fmt.Printf("%s N=%d: %.1f%% success, average %v per generate call\n", source, n, rate*100, avg)
		}
	}
	fmt.Printf("learned %d distinct model(s) across the sweep\n", cache.Len())
}

func runBatch(model *wfc.Model, w, h, maxAttempts int, baseSeed int64, count, workers int) (successRate float64, avgDuration time.Duration) {
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	results := make([]result, count)
	var wg sync.WaitGroup

	for i := 0; i < count; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			seed := baseSeed + int64(i)
			rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))

			start := time.Now()
			_, _, ok, err := model.Generate(context.Background(), w, h, maxAttempts, rng)
			results[i] = result{seed: seed, ok: ok, err: err, duration: time.Since(start)}
		}(i)
	}
	wg.Wait()

	var succeeded int
	var total time.Duration
	for _, r := range results {
		if r.err != nil {
			log.Printf("seed %d: error: %v", r.seed, r.err)
			continue
		}
		if r.ok {
			succeeded++
		}
		total += r.duration
	}

	return float64(succeeded) / float64(count), total / time.Duration(count)
}

func parseInts(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
