package testutil

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RandomEmail returns a unique email address for registration tests.
func RandomEmail() string {
	return fmt.Sprintf("user-%s@example.com", shortID())
}

// RandomName returns a unique name with the given prefix.
func RandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, shortID())
}

func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
