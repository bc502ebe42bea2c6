package kit

// ApplyIf returns op(acc, val()) when cond is true, and acc unchanged
// otherwise. val is only invoked when cond holds, so the expression it
// wraps is never evaluated on the false branch.
func ApplyIf[T any](acc T, cond bool, op func(T, T) T, val func() T) T {
	if !cond {
		return acc
	}
	return op(acc, val())
}

// AppendIf is ApplyIf specialized to string concatenation: it returns
// acc + val() when cond is true, and acc unchanged otherwise.
func AppendIf(acc string, cond bool, val func() string) string {
	if !cond {
		return acc
	}
	return acc + val()
}

// Must returns v when err is nil and panics with err otherwise.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
