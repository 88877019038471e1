package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// applyEnvOverrides replaces every field carrying an `env` tag with the variable's value
// when that variable is set. Nested structs are walked recursively.
func applyEnvOverrides(target any) error {
	v := reflect.Indirect(reflect.ValueOf(target))
	if v.Kind() != reflect.Struct {
		return nil
	}
	return overrideStruct(v)
}

func overrideStruct(v reflect.Value) error {
	t := v.Type()
	for i := range t.NumField() {
		field, meta := v.Field(i), t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := overrideStruct(field); err != nil {
				return err
			}
			continue
		}

		name, ok := meta.Tag.Lookup("env")
		if !ok || name == "" {
			continue
		}
		raw, set := os.LookupEnv(name)
		if !set {
			continue
		}

		parsed, err := parseEnvValue(field.Type(), raw)
		if err != nil {
			return fmt.Errorf("%s (%s): %w", name, meta.Name, err)
		}
		field.Set(parsed)
	}
	return nil
}

// parseEnvValue converts raw into a value assignable to t
func parseEnvValue(t reflect.Type, raw string) (reflect.Value, error) {
	switch {
	case t == durationType:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid duration %q", raw)
		}
		return reflect.ValueOf(d), nil

	case t.Kind() == reflect.String:
		return reflect.ValueOf(raw).Convert(t), nil

	case t.Kind() >= reflect.Int && t.Kind() <= reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid integer %q", raw)
		}
		return reflect.ValueOf(n).Convert(t), nil

	case t.Kind() == reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid boolean %q", raw)
		}
		return reflect.ValueOf(b), nil

	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String:
		// comma separated, blanks dropped
		items := []string{}
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return reflect.ValueOf(items).Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("unsupported field type %s", t)
}
