// Package conv converts loosely typed values (decoded JSON, environment
// strings, configuration trees) to concrete Go types.
//
// Every converter comes in two forms. The plain form returns the zero value
// when the input cannot be converted; the E form returns an error wrapping
// [ErrConversion]:
//
//	conv.ToInt("42")         // → 42
//	conv.ToInt("forty-two")  // → 0
//	_, err := conv.ToIntE("forty-two") // errors.Is(err, conv.ErrConversion)
package conv
