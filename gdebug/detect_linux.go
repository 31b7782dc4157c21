//go:build linux

package gdebug

import (
	"fmt"
	"os"
)

func attached() (bool, error) {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false, fmt.Errorf("failed to open process status: %w", err)
	}
	defer f.Close()

	pid, err := parseTracerPID(f)
	if err != nil {
		return false, err
	}
	return pid != 0, nil
}
