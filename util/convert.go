// Package util holds the string-to-value conversions used when filling
// caller-defined option stores from parsed argument values.
package util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// ConvertString converts one raw option argument into the value pointed at
// by data. Supported targets are *string, *bool, the signed and unsigned
// integer types, the float types, *time.Duration and *time.Time; timestamps
// are parsed leniently from common layouts.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = v
	case *int:
		v, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = int(v)
	case *int8:
		v, err := strconv.ParseInt(value, 10, 8)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = int8(v)
	case *int16:
		v, err := strconv.ParseInt(value, 10, 16)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = int16(v)
	case *int32:
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = int32(v)
	case *int64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = v
	case *uint:
		v, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = uint(v)
	case *uint8:
		v, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = v
	case *float32:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = v
	case *time.Duration:
		v, err := time.ParseDuration(value)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = v
	case *time.Time:
		v, err := dateparse.ParseAny(value)
		if err != nil {
			return conversionErr(value, data, err)
		}
		*t = v
	default:
		return fmt.Errorf("unsupported conversion target %T", data)
	}

	return nil
}

// ConvertStrings converts each accumulated value of an array option, in
// order.
func ConvertStrings[T any](values []string) ([]T, error) {
	out := make([]T, len(values))
	for i, v := range values {
		if err := ConvertString(v, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func conversionErr(value string, data any, err error) error {
	return fmt.Errorf("cannot convert %q to %T: %w", value, data, err)
}
