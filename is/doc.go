// Package is provides runtime type guards and value predicates for values of
// static type any, such as decoded JSON or configuration trees.
//
// Guards look at the dynamic kind, so named types count too: a
// `type Celsius float64` is a [Number] and a [Float].
//
//	is.Nil((*User)(nil)) // → true, typed nil pointers are nil
//	is.Empty(map[string]int{}) // → true
package is
