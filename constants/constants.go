// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Benchmark Tunables & Fixed Inputs
//
// Purpose:
//   - Defines the iteration count, oracle seed and payload text shared by
//     every strategy run.
//   - Holds the heap limits used by the memory-bounded build and the
//     environment variable names read by the diagnostics layer.
//
// Notes:
//   - Every strategy must see identical inputs, so nothing here is derived
//     from the command line or the environment.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Benchmark Shape ─────────────────────────────

const (
	// Iterations is the number of simulated call sites per strategy run.
	Iterations = 1_000_000_000

	// PayloadText is the owned text passed through every call site.
	// 52 bytes of UTF-8, long enough that duplication is a real heap copy.
	PayloadText = "dhoqhwoidnwqpdwqdiwqd92132648903ÃŸ92uejoiwgfvurew7"
)

// Seed keys the oracle's ChaCha20 stream. It is a var only because Go has no
// array constants; callers pass it by value and never write to it.
var Seed = [32]byte{
	54, 97, 98, 23, 123, 238, 124, 76, 0, 17, 76, 254, 200, 190, 100, 101,
	143, 9, 3, 237, 100, 102, 200, 0, 17, 38, 90, 74, 174, 12, 74, 9,
}

// ─────────────────────────── Memory Guardrails ─────────────────────────────

const (
	// HeapSoftLimit is the runtime memory limit of the membound build. With
	// the proportional collector disabled, GC runs only when the heap
	// reaches this size.
	HeapSoftLimit = 128 << 20 // 128 MiB
)

// ──────────────────────────── Diagnostics Env ──────────────────────────────

const (
	// EnvLogLevel selects the stderr log level (trace, debug, info, warn, error, disabled).
	EnvLogLevel = "COWBENCH_LOG_LEVEL"

	// EnvGops starts the gops agent when non-empty.
	EnvGops = "COWBENCH_GOPS"
)
