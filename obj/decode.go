package obj

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies a map[string]any document (or any compatible value) into
// out, which must be a non-nil pointer. Struct fields are matched by their
// json tag, falling back to a case-insensitive field name match. Input is
// weakly typed: "42" decodes into an int, "1s" into a time.Duration and
// "a,b" into a []string.
func Decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("obj: decode: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("obj: decode: %w", err)
	}
	return nil
}
