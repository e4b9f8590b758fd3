package combo

// Iterator yields combinations one at a time. The slice returned by Value is
// owned by the iterator and only valid until the next call to Next.
type Iterator interface {
	Next() bool
	Value() []int
}

type Order int

const (
	Ascending Order = iota
	Descending
)

// Combinations yields all size k combinations of 0..total-1.
type Combinations struct {
	total   int
	k       int
	current []int
	started bool
	done    bool
}

func SizeK(total, k int) *Combinations {
	c := &Combinations{total: total, k: k}
	if k < 0 || k > total {
		c.done = true
	}
	return c
}

func (c *Combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		c.current = make([]int, c.k)
		for i := range c.current {
			c.current[i] = i
		}
		return true
	}
	// find the rightmost position which can still be advanced
	i := c.k - 1
	for i >= 0 && c.current[i] == c.total-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true
		c.current = nil
		return false
	}
	c.current[i]++
	for j := i + 1; j < c.k; j++ {
		c.current[j] = c.current[j-1] + 1
	}
	return true
}

func (c *Combinations) Value() []int {
	return c.current
}

type chain struct {
	parts []*Combinations
	pos   int
}

// SizeAtMostK yields the combinations of every size between 1 and k, one size
// class after the other. Within a size class the order is the one of SizeK.
func SizeAtMostK(total, k int, order Order) Iterator {
	ch := &chain{}
	if k > total {
		k = total
	}
	for size := 1; size <= k; size++ {
		ch.parts = append(ch.parts, SizeK(total, size))
	}
	if order == Descending {
		for i, j := 0, len(ch.parts)-1; i < j; i, j = i+1, j-1 {
			ch.parts[i], ch.parts[j] = ch.parts[j], ch.parts[i]
		}
	}
	return ch
}

func (ch *chain) Next() bool {
	for ch.pos < len(ch.parts) {
		if ch.parts[ch.pos].Next() {
			return true
		}
		ch.pos++
	}
	return false
}

func (ch *chain) Value() []int {
	if ch.pos >= len(ch.parts) {
		return nil
	}
	return ch.parts[ch.pos].Value()
}

// Disjoint reports whether none of the candidate indices is forbidden.
func Disjoint(candidate []int, forbidden map[int]bool) bool {
	if len(forbidden) == 0 {
		return true
	}
	for _, c := range candidate {
		if forbidden[c] {
			return false
		}
	}
	return true
}

// Binomial returns C(n, k), saturating at the maximum int on overflow.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	const maxInt = int(^uint(0) >> 1)
	r := 1
	for i := 1; i <= k; i++ {
		if r > maxInt/(n-k+i) {
			return maxInt
		}
		r = r * (n - k + i) / i
	}
	return r
}
