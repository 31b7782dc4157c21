package gtest

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TimeFactorEnv is the environment variable read into [TimeFactor].
const TimeFactorEnv = "GDBC_TEST_TIME_FACTOR"

// TimeFactor multiplies every timeout produced by [ScaleMs].
//
// Violations are reported from a separate goroutine,
// and the failure path parses the caller's source file,
// so a loaded CI machine may need more than the default wait.
// Set GDBC_TEST_TIME_FACTOR=3 to triple all test timeouts
// without touching the tests.
var TimeFactor ScaledDuration = 1

func init() {
	f := os.Getenv(TimeFactorEnv)
	if f == "" {
		return
	}

	n, err := parseTimeFactor(f)
	if err != nil {
		panic(err)
	}
	TimeFactor = ScaledDuration(n)
}

func parseTimeFactor(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s (%q) into an integer: %w", TimeFactorEnv, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive; got %d", TimeFactorEnv, n)
	}
	return n, nil
}

// ScaledDuration is a duration already multiplied by [TimeFactor].
// Test helpers accept it instead of a time.Duration
// so that literal timeouts cannot slip in.
type ScaledDuration time.Duration

// ScaleMs returns ms milliseconds multiplied by [TimeFactor].
func ScaleMs(ms int64) ScaledDuration {
	return TimeFactor * ScaledDuration(ms) * ScaledDuration(time.Millisecond)
}
