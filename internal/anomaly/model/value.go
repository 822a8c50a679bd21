// Package model defines the tabular data model consumed by the anomaly pipeline.
package model

import (
	"math"
	"strconv"
)

// Kind describes what a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBool
)

// Value is a single table cell.
type Value struct {
	kind Kind
	num  float64
	text string
	flag bool
}

// Null returns a missing value.
func Null() Value { return Value{} }

// Number returns a numeric value. NaN is treated as missing.
func Number(v float64) Value {
	if math.IsNaN(v) {
		return Value{}
	}
	return Value{kind: KindNumber, num: v}
}

// Text returns a string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Float64 returns the numeric payload; ok is false for non-numeric values.
func (v Value) Float64() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Bool returns the boolean payload; ok is false for non-bool values.
func (v Value) Bool() (b bool, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}

// Equal reports whether two cells hold the same kind and payload.
// Positive and negative zero compare equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindBool:
		return v.flag == o.flag
	default:
		return true
	}
}

func (v Value) appendKey(dst []byte) []byte {
	dst = append(dst, byte(v.kind))
	switch v.kind {
	case KindNumber:
		n := v.num
		if n == 0 {
			n = 0
		}
		bits := math.Float64bits(n)
		for i := 0; i < 8; i++ {
			dst = append(dst, byte(bits>>(8*i)))
		}
	case KindText:
		dst = strconv.AppendInt(dst, int64(len(v.text)), 10)
		dst = append(dst, ':')
		dst = append(dst, v.text...)
	case KindBool:
		if v.flag {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	}
	return dst
}

func nan() float64 { return math.NaN() }
