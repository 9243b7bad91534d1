package buffered

import (
	"github.com/pbnjay/memory"
)

const (
	minimumCapacity = 256
	maximumCapacity = 65536
)

// defaultCapacity sizes the queue from installed system memory: one slot
// per megabyte, clamped to a power-of-two range.
func defaultCapacity() (capacity int) {
	totalMem := memory.TotalMemory()

	capacity = nextPowerOfTwo(int(totalMem / (1024 * 1024)))
	if capacity < minimumCapacity {
		capacity = minimumCapacity
	}
	if capacity > maximumCapacity {
		capacity = maximumCapacity
	}
	return
}

func nextPowerOfTwo(start int) (next int) {
	if start <= 1 {
		next = 1
		return
	}
	start--
	start |= start >> 1
	start |= start >> 2
	start |= start >> 4
	start |= start >> 8
	start |= start >> 16
	start |= start >> 32
	next = start + 1
	return
}
