package plot

import (
	"sync"

	"github.com/abhisek/limitz/internal/problem"
)

// Key identifies a curve by the immutable problem coefficients.
type Key struct {
	A int
	C int
	B int
}

// Cache memoizes Sample by coefficient tuple. It lives outside the
// session state machine; dropping it changes nothing but speed.
type Cache struct {
	mu     sync.Mutex
	curves map[Key]Curve
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{curves: make(map[Key]Curve)}
}

// Curve returns the memoized curve for p, sampling on first use.
func (c *Cache) Curve(p problem.Problem) Curve {
	key := Key{A: p.A, C: p.C, B: p.B}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.curves[key]; ok {
		return cached
	}
	curve := Sample(p)
	c.curves[key] = curve
	return curve
}

// Len reports how many curves are memoized.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.curves)
}
