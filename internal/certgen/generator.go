// Package certgen produces certificate identifiers and pseudo-hash strings.
//
// None of the outputs are cryptographic. ContentHash and TxHash share an
// algorithm but stand in for two different concepts (a stored content hash
// and a chain transaction hash), so they stay separate operations. DataHash
// is deterministic over its input and is only that: it has no collision
// resistance.
package certgen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	hexChars    = "0123456789abcdef"

	certIDSuffixLen = 6
	hashDigits      = 64
)

// Generator builds identifiers and pseudo-hashes from an injected random
// source and clock, so tests can pin outputs.
type Generator struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rnd *rand.Rand
	now func() time.Time
}

// New returns a Generator seeded from the current time.
func New() *Generator {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithSource returns a Generator with the given random source and clock.
func NewWithSource(rnd *rand.Rand, now func() time.Time) *Generator {
	return &Generator{rnd: rnd, now: now}
}

// CertificateID returns a human-facing identifier of the form
// CERT-<4-digit year>-<6 uppercase base36 chars>. It is not guaranteed
// collision-free; callers must tolerate duplicates.
func (g *Generator) CertificateID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	suffix := make([]byte, certIDSuffixLen)
	for i := range suffix {
		suffix[i] = base36Chars[g.rnd.Intn(len(base36Chars))]
	}
	return fmt.Sprintf("CERT-%04d-%s", g.now().Year(), suffix)
}

// ContentHash returns "0x" plus 64 uniform random hex digits, a stand-in for
// a real content hash of the stored record.
func (g *Generator) ContentHash() string {
	return g.randomHex()
}

// TxHash returns "0x" plus 64 uniform random hex digits, a stand-in for a
// chain transaction hash.
func (g *Generator) TxHash() string {
	return g.randomHex()
}

func (g *Generator) randomHex() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]byte, hashDigits)
	for i := range out {
		out[i] = hexChars[g.rnd.Intn(len(hexChars))]
	}
	return "0x" + string(out)
}

// DataHash maps a serialized payload to "0x" plus 64 hex digits,
// deterministically: each output position folds the cycled payload byte with
// its index into a single hex digit. Identical input gives identical output;
// nothing stronger is promised.
func DataHash(payload []byte) string {
	out := make([]byte, hashDigits)
	for i := range out {
		var c byte
		if len(payload) > 0 {
			c = payload[i%len(payload)]
		}
		out[i] = hexChars[(int(c)+i)%len(hexChars)]
	}
	return "0x" + string(out)
}
