// Command attempttuner searches for the smallest maxAttempts value that
// clears a target success rate for one or more models, evaluating each
// candidate value with a concurrent batch of seeds rather than serially,
// then binary-searching the candidate range per (source, N) combination.
// A modelcache.Cache is shared across the sweep so repeated (source, N)
// pairs are learned only once.
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

	"tilewave/internal/wfc"
	"tilewave/pkg/examples"
	"tilewave/pkg/modelcache"
)

func main() {
	var (
		sources      = flag.String("sources", "checker", "comma-separated example sources to learn from (see -list)")
		nValues      = flag.String("n-values", "2", "comma-separated pattern sizes N to sweep")
		width        = flag.Int("width", 32, "output width in tiles")
		height       = flag.Int("height", 32, "output height in tiles")
		sourceSize   = flag.Int("source-size", 24, "size of the generated training image")
		baseSeed     = flag.Int64("seed", 1, "first seed in each evaluation batch")
		samples      = flag.Int("samples", 40, "seeds evaluated per candidate maxAttempts")
		targetRate   = flag.Float64("target-rate", 0.95, "minimum acceptable success rate")
		lowAttempts  = flag.Int("low", 1, "lower bound of the search range")
		highAttempts = flag.Int("high", 200, "upper bound of the search range")
		workers      = flag.Int("workers", runtime.NumCPU(), "concurrent workers per evaluation batch")
		list         = flag.Bool("list", false, "list available example sources and exit")
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

			eval := func(maxAttempts int) float64 {
				return successRate(model, *width, *height, maxAttempts, *baseSeed, *samples, *workers)
			}

			lo, hi := *lowAttempts, *highAttempts
			if eval(hi) < *targetRate {
				fmt.Printf("%s N=%d: target rate %.2f not reached even at maxAttempts=%d\n", source, n, *targetRate, hi)
				continue
			}

			for lo < hi {
				mid := lo + (hi-lo)/2
				if eval(mid) >= *targetRate {
					hi = mid
				} else {
					lo = mid + 1
				}
			}

			fmt.Printf("%s N=%d: smallest maxAttempts clearing %.2f success rate: %d\n", source, n, *targetRate, lo)
		}
	}
	fmt.Printf("learned %d distinct model(s) across the sweep\n", cache.Len())
}

// successRate evaluates one candidate maxAttempts value across `samples`
// independent seeds, bounding concurrency with a semaphore channel the
// same way a parameter sweep would bound candidate evaluation.
func successRate(model *wfc.Model, w, h, maxAttempts int, baseSeed int64, samples, workers int) float64 {
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < samples; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			seed := baseSeed + int64(i)
			rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
			_, _, ok, err := model.Generate(context.Background(), w, h, maxAttempts, rng)
			if err == nil && ok {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	return float64(succeeded) / float64(samples)
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
