package gdebug

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseTracerPID extracts the TracerPid field from a Linux
// /proc/<pid>/status document.
// A value of zero means no tracer is attached.
func parseTracerPID(r io.Reader) (int, error) {
	s := bufio.NewScanner(r)
	for s.Scan() {
		v, ok := strings.CutPrefix(s.Text(), "TracerPid:")
		if !ok {
			continue
		}

		pid, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("failed to parse TracerPid %q: %w", v, err)
		}
		return pid, nil
	}
	if err := s.Err(); err != nil {
		return 0, fmt.Errorf("failed to read status: %w", err)
	}

	return 0, fmt.Errorf("no TracerPid field in status: %w", ErrDetectionUnavailable)
}
