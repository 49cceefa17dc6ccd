// Package flagvalue implements the flag.Value variants the CLI needs
// beyond plain scalars: repeatable flags and flags whose argument is
// optional.
package flagvalue

import "flag"

// Getter constrains a type whose pointer implements flag.Getter,
// so List can construct and fill new elements as arguments arrive.
type Getter[T any] interface {
	*T
	flag.Getter
}
