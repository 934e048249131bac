// Package modelcache memoizes wfc.Learn results behind a concurrency-safe
// map so a batch tool generating many tilemaps from the same training
// images only pays the learning cost once.
package modelcache

import (
	"hash/fnv"
	"strconv"

	"golang.org/x/sync/syncmap"

	"tilewave/internal/wfc"
)

// Cache maps a (images, N) digest to its learned model. The zero value
// is ready to use.
type Cache struct {
	models syncmap.Map // string -> *wfc.LearnedModel
}

// New constructs an empty Cache.
func New() *Cache { return &Cache{} }

// GetOrLearn returns the cached model for (images, N), learning and
// storing it on first use. Concurrent callers racing on the same key
// both call Learn, but only one result wins the slot, matching
// sync.Map's LoadOrStore semantics.
func (c *Cache) GetOrLearn(images []wfc.Tilemap, n int) (*wfc.LearnedModel, error) {
	key := digest(images, n)
	if v, ok := c.models.Load(key); ok {
		return v.(*wfc.LearnedModel), nil
	}
	model, err := wfc.Learn(images, n)
	if err != nil {
		return nil, err
	}
	actual, _ := c.models.LoadOrStore(key, model)
	return actual.(*wfc.LearnedModel), nil
}

// Len reports how many distinct (images, N) keys are cached. It walks
// the whole map, so it is meant for diagnostics, not hot paths.
func (c *Cache) Len() int {
	n := 0
	c.models.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

func digest(images []wfc.Tilemap, n int) string {
	h := fnv.New64a()
	h.Write([]byte(strconv.Itoa(n)))
	h.Write([]byte{0})
	for _, img := range images {
		for _, row := range img {
			for _, t := range row {
				h.Write([]byte{byte(t), byte(t >> 8), byte(t >> 16), byte(t >> 24)})
			}
			h.Write([]byte{0xff})
		}
		h.Write([]byte{0xfe})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
