package typeface

import "sync/atomic"

// defaultPtr stores the process-wide default typeface. Accessed
// atomically so that SetDefault can race with resolution from any
// goroutine; single-slot atomicity is the only guarantee needed,
// since every other operation is a pure function of its inputs.
var defaultPtr atomic.Pointer[Typeface]

func init() {
	defaultPtr.Store(builtinDefault())
}

// builtinDefault is the value the default slot holds at startup:
// regular weight, upright, StyleNormal, no families.
func builtinDefault() *Typeface {
	return CreateAbsolute(NormalWeight, false)
}

// SetDefault replaces the process-wide default typeface used when
// CreateRelative and ResolveDefault are given a nil base. The
// previous default becomes a plain immutable value with no further
// special status.
//
// SetDefault is safe for concurrent use. Passing nil restores the
// built-in default.
func SetDefault(tf *Typeface) {
	if tf == nil {
		tf = builtinDefault()
	}
	defaultPtr.Store(tf)
}

// Default returns the current process-wide default typeface.
func Default() *Typeface {
	return defaultPtr.Load()
}

// ResolveDefault returns base unchanged, or the current default
// typeface when base is nil.
func ResolveDefault(base *Typeface) *Typeface {
	if base != nil {
		return base
	}
	return defaultPtr.Load()
}
