package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// OrderSchema describes ordering defaults and whitelisted keys.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Keys               []string
}

type orderParams struct {
	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

// parseOrderBy reads "key [asc|desc][, key [asc|desc]]". Keys missing from
// the clause fall back to the schema defaults.
func parseOrderBy(raw string, schema OrderSchema) (orderParams, error) {
	if schema.DefaultPrimary == "" || schema.FallbackKey == "" {
		return orderParams{}, errors.New("order schema requires default primary and fallback keys")
	}
	for _, key := range []string{schema.DefaultPrimary, schema.FallbackKey} {
		if !slices.Contains(schema.Keys, key) {
			return orderParams{}, fmt.Errorf("order key %q missing from schema keys", key)
		}
	}

	ord := orderParams{PrimaryKey: schema.DefaultPrimary, PrimaryDesc: schema.DefaultPrimaryDesc}

	var keys []string
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		key := parts[0]
		if !slices.Contains(schema.Keys, key) {
			return orderParams{}, fmt.Errorf("field %q cannot be used for ordering", key)
		}
		if slices.Contains(keys, key) {
			return orderParams{}, fmt.Errorf("duplicate order key %q", key)
		}

		desc := false
		switch {
		case len(parts) == 1:
		case len(parts) == 2 && strings.EqualFold(parts[1], "asc"):
		case len(parts) == 2 && strings.EqualFold(parts[1], "desc"):
			desc = true
		default:
			return orderParams{}, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}

		switch len(keys) {
		case 0:
			ord.PrimaryKey, ord.PrimaryDesc = key, desc
		case 1:
			ord.SecondaryKey, ord.SecondaryDesc = key, desc
		default:
			return orderParams{}, errors.New("order_by supports at most two keys")
		}
		keys = append(keys, key)
	}

	if ord.SecondaryKey == "" {
		ord.SecondaryKey, ord.SecondaryDesc = schema.FallbackKey, schema.FallbackDesc
	}
	if ord.SecondaryKey == ord.PrimaryKey {
		ord.SecondaryKey, ord.SecondaryDesc = "", false
		for _, key := range schema.Keys {
			if key != ord.PrimaryKey {
				ord.SecondaryKey = key
				break
			}
		}
		if ord.SecondaryKey == "" {
			return orderParams{}, errors.New("order schema requires at least two distinct keys for stable ordering")
		}
	}
	return ord, nil
}

func setOrderParams(target reflect.Value, ord orderParams) error {
	values := []struct {
		name  string
		value any
	}{
		{"PrimaryKey", ord.PrimaryKey},
		{"PrimaryDesc", ord.PrimaryDesc},
		{"SecondaryKey", ord.SecondaryKey},
		{"SecondaryDesc", ord.SecondaryDesc},
	}
	for _, v := range values {
		field := target.FieldByName(v.name)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("params struct %s has no settable field %q", target.Type(), v.name)
		}
		rv := reflect.ValueOf(v.value)
		if !rv.Type().ConvertibleTo(field.Type()) {
			return fmt.Errorf("field %q must be %s-compatible, got %s", v.name, rv.Type(), field.Type())
		}
		field.Set(rv.Convert(field.Type()))
	}
	return nil
}
