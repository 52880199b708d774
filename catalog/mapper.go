package catalog

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// trimmedNumberHook cleans string inputs headed for numeric fields. Some
// backend deployments serialize prices as strings ("12.50", " 7 ", "").
func trimmedNumberHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			s := strings.TrimSpace(data.(string))
			if s == "" {
				return "0", nil
			}
			return s, nil
		}
		return data, nil
	}
}

// intToBoolHook accepts 0/1 flags for bool fields (has_next_page et al).
func intToBoolHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Bool {
			return data, nil
		}
		switch v := data.(type) {
		case int:
			return v != 0, nil
		case int64:
			return v != 0, nil
		case float64:
			return int(v) != 0, nil
		}
		return data, nil
	}
}

var entityDecodeHook = mapstructure.ComposeDecodeHookFunc(
	trimmedNumberHook(),
	intToBoolHook(),
)

// decodeEntity maps loosely typed backend JSON onto a typed record. Field
// names follow the json tags.
func decodeEntity(src, dst interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       entityDecodeHook,
		Result:           dst,
		TagName:          "json",
		ZeroFields:       true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(src)
}
