// Package options provides the generic functional-option plumbing shared by
// the configurable quadex packages.
package options

// Option configures a target of type T. Returning an error rejects the
// whole configuration; callers surface it unchanged so sentinel errors
// wrapped inside an option remain matchable with errors.Is.
type Option[T any] func(target T) error

// Apply runs every option against target in order, stopping at the first
// error. Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
