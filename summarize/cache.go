package summarize

import (
	"strconv"

	"github.com/dgraph-io/ristretto"

	"statplot/table"
)

// Cache memoizes summaries keyed by (table id, group fields,
// measurement). Tables are immutable and their ids process-unique,
// so a hit can never serve stale statistics. Misses fall through to
// Summarize; correctness never depends on the cache admitting an
// entry.
type Cache struct {
	summaries *ristretto.Cache
}

func NewCache() *Cache {
	summaries, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	return &Cache{summaries: summaries}
}

func cacheKey(tableId int64, groupFields []string, measurement string) string {
	return strconv.FormatInt(tableId, 10) + "/" +
		compositeKey(groupFields) + "/" + compositeKey([]string{measurement})
}

func (c *Cache) Summarize(t *table.Table, groupFields []string, measurement string) (*SummaryTable, error) {
	key := cacheKey(t.ID(), groupFields, measurement)
	if cached, found := c.summaries.Get(key); found {
		return cached.(*SummaryTable), nil
	}
	summary, err := Summarize(t, groupFields, measurement)
	if err != nil {
		return nil, err
	}
	c.summaries.Set(key, summary, 1)
	return summary, nil
}
