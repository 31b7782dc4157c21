//go:build darwin

package gdebug

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// pTraced is P_TRACED from <sys/proc.h>.
const pTraced = 0x00000800

func attached() (bool, error) {
	info, err := unix.SysctlKinfoProc("kern.proc.pid", unix.Getpid())
	if err != nil {
		return false, fmt.Errorf("failed to query kern.proc.pid: %w", err)
	}
	return info.Proc.P_flag&pTraced != 0, nil
}
