// internal/domain/order/number.go
package order

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const (
	base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLength   = 4
	// largest multiple of 36 that fits in a byte
	maxUnbiased = 252
)

// NumberSource produces candidate order numbers
type NumberSource interface {
	Next() string
}

// NumberGenerator creates numbers of the form ORD-<time>-<rand>, where <time>
// is the unix millisecond clock in upper-case base 36 and <rand> is four random
// base 36 characters. Numbers are not guaranteed unique; the database unique
// index is the final arbiter.
type NumberGenerator struct {
	now  func() time.Time
	fill func([]byte)
}

// NewNumberGenerator uses the wall clock and crypto/rand
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{
		now: time.Now,
		fill: func(b []byte) {
			_, _ = rand.Read(b)
		},
	}
}

// Next returns a new order number
func (g *NumberGenerator) Next() string {
	stamp := strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36))

	suffix := make([]byte, 0, suffixLength)
	raw := make([]byte, 2*suffixLength)
	for len(suffix) < suffixLength {
		g.fill(raw)
		for _, b := range raw {
			// bytes at or above maxUnbiased would favour the first digits
			if b >= maxUnbiased {
				continue
			}
			suffix = append(suffix, base36Alphabet[int(b)%len(base36Alphabet)])
			if len(suffix) == suffixLength {
				break
			}
		}
	}

	return "ORD-" + stamp + "-" + string(suffix)
}
