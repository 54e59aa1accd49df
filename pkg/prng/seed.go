package prng

import (
	"encoding/binary"
	"hash/fnv"
	"os"
	"sync/atomic"
	"time"
)

// counter distinguishes seeds requested within the same nanosecond.
var counter atomic.Uint64

// RandomSeed derives a seed from the process ID, the current time and a
// call counter. Not cryptographic; it only has to make independent runs
// start from different states.
func RandomSeed() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(os.Getpid()))
	h.Write(buf[:])

	binary.LittleEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	h.Write(buf[:])

	binary.LittleEndian.PutUint64(buf[:], counter.Add(1))
	h.Write(buf[:])

	return h.Sum64()
}
