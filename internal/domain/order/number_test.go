// internal/domain/order/number_test.go
package order

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberGenerator_Format(t *testing.T) {
	g := &NumberGenerator{
		now: func() time.Time { return time.UnixMilli(1700000000000) },
		fill: func(b []byte) {
			copy(b, []byte{0, 10, 35, 36})
		},
	}

	// 1700000000000 in base 36 is LOYW3V28
	assert.Equal(t, "ORD-LOYW3V28-0AZ0", g.Next())
}

func TestNumberGenerator_RejectsBiasedBytes(t *testing.T) {
	batches := [][]byte{
		{255, 252, 253, 254, 255, 252, 253, 254},
		{255, 1, 252, 2, 253, 3, 254, 4},
	}
	calls := 0
	g := &NumberGenerator{
		now: func() time.Time { return time.UnixMilli(0) },
		fill: func(b []byte) {
			copy(b, batches[calls])
			calls++
		},
	}

	assert.Equal(t, "ORD-0-1234", g.Next())
	assert.Equal(t, 2, calls)
}

func TestNumberGenerator_Default(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{4}$`)
	g := NewNumberGenerator()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := g.Next()
		assert.Regexp(t, pattern, n)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentMethodUPI.IsValid())
	assert.False(t, PaymentMethod("cash").IsValid())
	assert.Equal(t, PaymentStatusPending, PaymentMethodCOD.InitialPaymentStatus())
	assert.Equal(t, PaymentStatusPaid, PaymentMethodCard.InitialPaymentStatus())
}

func TestShippingAddressNormalize(t *testing.T) {
	a := ShippingAddress{FullName: "  Ravi ", Email: " RAVI@Mail.In ", Pincode: " 400001"}.Normalize()
	assert.Equal(t, "Ravi", a.FullName)
	assert.Equal(t, "ravi@mail.in", a.Email)
	assert.Equal(t, "400001", a.Pincode)
}
