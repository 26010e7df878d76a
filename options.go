package balltree

// Option configures secondary construction knobs that do not belong in
// New's required positional arguments, following the functional-options
// pattern. Most callers need none of these; the zero value of every field
// an Option can set reproduces the default behavior.
type Option func(*Index)

// WithSeed fixes the RNG used to pick the random pivot in Build step 2(a),
// making construction reproducible across runs for the same inputs. A seed
// of 0 is treated as "unset" (process-level randomness).
func WithSeed(seed int64) Option {
	return func(t *Index) { t.seed = seed }
}

// WithRejectNonFinite enables a preflight check, at construction time, that
// rejects points containing NaN or ±Inf. Disabled by default:
// the baseline behavior lets non-finite values propagate into distances,
// degrading pruning to a linear scan rather than failing outright.
func WithRejectNonFinite(reject bool) Option {
	return func(t *Index) { t.rejectNonFinite = reject }
}
