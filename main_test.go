package seqs_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Split and Zip run their upstream through iter.Pull; a pull that is never
// released shows up as a leaked goroutine.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
