package cache

import (
	"sync"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

// Memory is a process-local cache of built groups. It is safe for
// concurrent use. Cached groups are shared and must not be modified.
type Memory struct {
	m sync.Map // map[Key][]*grouping.Group
}

// NewMemory returns an empty cache.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the cached groups for k.
func (c *Memory) Get(k Key) ([]*grouping.Group, bool) {
	v, ok := c.m.Load(k)
	if !ok {
		return nil, false
	}
	return v.([]*grouping.Group), true
}

// Put stores groups under k.
func (c *Memory) Put(k Key, groups []*grouping.Group) {
	c.m.Store(k, groups)
}

// Len returns the number of cached builds.
func (c *Memory) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
