// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "fmt"

// coerceAttributeValue validates and converts a raw BA_/BA_DEF_DEF_ value
// against its AttributeDefinition's declared kind (spec §4.4). On failure
// it returns a human-readable reason suitable for a Diagnostic.
func coerceAttributeValue(def *AttributeDefinition, raw rawAttrValue) (AttributeValue, string, bool) {
	switch def.ValueType {
	case AttrInt, AttrHex:
		if raw.IsString || !raw.NumIsInt {
			return AttributeValue{}, fmt.Sprintf(
				"attribute %q expects an integer value", def.Name), false
		}
		v := int64(raw.Num)
		if def.HasBounds && (float64(v) < def.Min || float64(v) > def.Max) {
			return AttributeValue{}, fmt.Sprintf(
				"attribute %q value %d outside bounds [%v,%v]", def.Name, v, def.Min, def.Max), false
		}
		return AttributeValue{Name: def.Name, Kind: def.ValueType, Int: v}, "", true

	case AttrFloat:
		if raw.IsString {
			return AttributeValue{}, fmt.Sprintf(
				"attribute %q expects a numeric value", def.Name), false
		}
		if def.HasBounds && (raw.Num < def.Min || raw.Num > def.Max) {
			return AttributeValue{}, fmt.Sprintf(
				"attribute %q value %v outside bounds [%v,%v]", def.Name, raw.Num, def.Min, def.Max), false
		}
		return AttributeValue{Name: def.Name, Kind: AttrFloat, Float: raw.Num}, "", true

	case AttrString:
		if !raw.IsString {
			return AttributeValue{}, fmt.Sprintf(
				"attribute %q expects a string value", def.Name), false
		}
		return AttributeValue{Name: def.Name, Kind: AttrString, Str: raw.Str}, "", true

	case AttrEnum:
		if raw.IsString {
			for i, label := range def.EnumValues {
				if label == raw.Str {
					return AttributeValue{Name: def.Name, Kind: AttrEnum, Int: int64(i)}, "", true
				}
			}
			return AttributeValue{}, fmt.Sprintf(
				"attribute %q has no enum value %q", def.Name, raw.Str), false
		}
		if !raw.NumIsInt {
			return AttributeValue{}, fmt.Sprintf(
				"attribute %q enum index must be an integer", def.Name), false
		}
		idx := int64(raw.Num)
		if idx < 0 || idx >= int64(len(def.EnumValues)) {
			return AttributeValue{}, fmt.Sprintf(
				"attribute %q enum index %d out of range [0,%d)", def.Name, idx, len(def.EnumValues)), false
		}
		return AttributeValue{Name: def.Name, Kind: AttrEnum, Int: idx}, "", true
	}
	return AttributeValue{}, fmt.Sprintf("attribute %q has an unknown value kind", def.Name), false
}
