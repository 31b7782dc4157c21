//go:build !linux && !darwin && !windows

package gdebug

func attached() (bool, error) {
	return false, ErrDetectionUnavailable
}
