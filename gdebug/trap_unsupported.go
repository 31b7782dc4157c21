//go:build notrap || js || wasip1 || !(386 || amd64 || arm || arm64 || loong64 || mips || mipsle || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x)

package gdebug

// TrapAllowed reports whether [Trap] issues a breakpoint in this build.
const TrapAllowed = false

func trap() {}
