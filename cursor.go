package checkbench

// Cursor selects the next input of a category. It is owned by one run and is
// never reset while that run lasts, so consecutive iterations and cases keep
// walking the data instead of replaying its head.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	pos uint64
}

// Next returns the index of the next element in a list of n items and
// advances the cursor. n must be positive.
func (c *Cursor) Next(n int) int {
	i := c.pos % uint64(n)
	c.pos++
	return int(i)
}

// Position is the number of times Next has been called.
func (c *Cursor) Position() uint64 {
	return c.pos
}

// Blackhole consumes predicate results so the compiler cannot drop calls
// whose answers are otherwise unused.
//
// A Blackhole is not safe for concurrent use.
type Blackhole struct {
	invocations int64
	hits        int64
}

// Consume records one result.
func (b *Blackhole) Consume(result bool) {
	b.invocations++
	if result {
		b.hits++
	}
}

// Invocations is the number of results consumed.
func (b *Blackhole) Invocations() int64 { return b.invocations }

// Hits is the number of true results consumed.
func (b *Blackhole) Hits() int64 { return b.hits }
