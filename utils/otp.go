package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOTP returns a 6-digit numeric code for email verification
// and password reset.
func GenerateOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
