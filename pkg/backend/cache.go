package backend

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/girltalk-community/meetbot/pkg/db/models"
)

// cache holds recently fetched meetings keyed by internal ID. Bot handlers
// re-render the same meeting for every button press, so lookups repeat.
type cache struct {
	b        *Backend
	meetings *lru.Cache[int64, *models.Meeting]
}

func newCache(b *Backend, size int) *cache {
	if size <= 0 {
		size = 1
	}
	c := &cache{b: b}
	cache, _ := lru.New[int64, *models.Meeting](size)
	c.meetings = cache
	return c
}

func (c *cache) Get(id int64) (*models.Meeting, bool) {
	return c.meetings.Get(id)
}

func (c *cache) Set(id int64, m *models.Meeting) {
	c.meetings.Add(id, m)
}

func (c *cache) Len() int {
	return c.meetings.Len()
}
