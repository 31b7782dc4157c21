//go:build !notrap && !js && !wasip1 && (386 || amd64 || arm || arm64 || loong64 || mips || mipsle || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x)

package gdebug

import "runtime"

// TrapAllowed reports whether [Trap] issues a breakpoint in this build.
const TrapAllowed = true

// trap relies on runtime.Breakpoint,
// which carries the breakpoint instruction for each supported architecture
// (INT3 on x86, BRK on arm64, EBREAK on riscv64, and so on).
func trap() {
	runtime.Breakpoint()
}
