// Package marshal converts values and failures between the native subsystem
// and the managed runtime.
//
// Every conversion in this package is total: enumeration codes outside the
// known range fall back to a neutral member, and absent optional fields are
// encoded as empty strings. The only failure value produced here is the
// NativeFailure built from a failed ErrorSentinel.
package marshal
