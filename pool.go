package textbind

import "math/bits"

// argPool manages reusable argument slices keyed by power-of-two capacity.
// After warmup, Acquire/Release are zero-alloc. A slice handed out by
// Acquire belongs to the caller until Release; Release clears it so no
// input value outlives the format call that read it.
type argPool struct {
	buckets map[int][][]any
}

// Acquire returns a zeroed slice of length n.
func (p *argPool) Acquire(n int) []any {
	c := nextPowerOfTwo(n)
	if p.buckets != nil {
		if stack := p.buckets[c]; len(stack) > 0 {
			buf := stack[len(stack)-1]
			stack[len(stack)-1] = nil
			p.buckets[c] = stack[:len(stack)-1]
			return buf[:n]
		}
	}
	return make([]any, n, c)
}

// Release clears buf and returns it to the pool.
func (p *argPool) Release(buf []any) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	clear(buf)
	c := cap(buf)
	if c != nextPowerOfTwo(c) {
		return // not one of ours
	}
	if p.buckets == nil {
		p.buckets = make(map[int][][]any)
	}
	p.buckets[c] = append(p.buckets[c], buf[:0])
}

// Idle returns the number of slices waiting in the pool.
func (p *argPool) Idle() int {
	n := 0
	for _, stack := range p.buckets {
		n += len(stack)
	}
	return n
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
