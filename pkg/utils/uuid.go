package utils

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateOrderNumber generates a candidate sale order number: "PD" followed
// by six random digits. Collisions are possible and must be handled by the
// caller with a retry against the unique constraint.
func GenerateOrderNumber() string {
	var sb strings.Builder
	sb.WriteString("PD")
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			sb.WriteByte('0')
			continue
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String()
}

// GenerateSKU generates a unique product SKU
func GenerateSKU() string {
	return "SKU-" + strings.ToUpper(uuid.New().String()[:8])
}
