// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "math"

// extractBits walks startBit/length/order exactly as the DBC grammar
// defines it and returns the raw, unscaled bit pattern right-aligned in a
// uint64 (spec §4.5). It never reads past the end of data.
func extractBits(data []byte, startBit, length uint32, order ByteOrder) (uint64, error) {
	if length == 0 || length > 64 {
		return 0, ErrBitsOutOfBounds
	}
	var value uint64
	switch order {
	case Intel:
		bit := startBit
		for i := uint32(0); i < length; i++ {
			byteIdx := bit / 8
			bitIdx := bit % 8
			if int(byteIdx) >= len(data) {
				return 0, ErrBitsOutOfBounds
			}
			if data[byteIdx]&(1<<bitIdx) != 0 {
				value |= 1 << i
			}
			bit++
		}
	case Motorola:
		bit := startBit
		for i := uint32(0); i < length; i++ {
			byteIdx := bit / 8
			bitIdx := bit % 8
			if int(byteIdx) >= len(data) {
				return 0, ErrBitsOutOfBounds
			}
			if data[byteIdx]&(1<<bitIdx) != 0 {
				value |= 1 << (length - 1 - i)
			}
			bit = motorolaNext(bit)
		}
	default:
		return 0, ErrBitsOutOfBounds
	}
	return value, nil
}

// insertBits is extractBits' inverse: it writes the low `length` bits of
// value into data at startBit/order, never past the end of data.
func insertBits(data []byte, startBit, length uint32, order ByteOrder, value uint64) error {
	if length == 0 || length > 64 {
		return ErrBitsOutOfBounds
	}
	switch order {
	case Intel:
		bit := startBit
		for i := uint32(0); i < length; i++ {
			byteIdx := bit / 8
			bitIdx := bit % 8
			if int(byteIdx) >= len(data) {
				return ErrBitsOutOfBounds
			}
			if value&(1<<i) != 0 {
				data[byteIdx] |= 1 << bitIdx
			} else {
				data[byteIdx] &^= 1 << bitIdx
			}
			bit++
		}
	case Motorola:
		bit := startBit
		for i := uint32(0); i < length; i++ {
			byteIdx := bit / 8
			bitIdx := bit % 8
			if int(byteIdx) >= len(data) {
				return ErrBitsOutOfBounds
			}
			if value&(1<<(length-1-i)) != 0 {
				data[byteIdx] |= 1 << bitIdx
			} else {
				data[byteIdx] &^= 1 << bitIdx
			}
			bit = motorolaNext(bit)
		}
	default:
		return ErrBitsOutOfBounds
	}
	return nil
}

// motorolaNext advances a Motorola (big-endian) bit cursor: within a byte
// bit numbering runs 7..0, and crossing a byte boundary continues at bit 7
// of the following byte (absolute bit+15), per the DBC big-endian
// convention (spec §4.5).
// Buffer-tail overrun is caught by the caller's bounds check, never
// zero-filled, per this library's frozen resolution of that Open Question.
func motorolaNext(bit uint32) uint32 {
	bitIdx := bit % 8
	if bitIdx == 0 {
		return bit + 15
	}
	return bit - 1
}

// signExtend reinterprets the low `length` bits of raw as a two's-complement
// signed value.
func signExtend(raw uint64, length uint32) int64 {
	if length == 0 || length >= 64 {
		return int64(raw)
	}
	signBit := uint64(1) << (length - 1)
	if raw&signBit != 0 {
		return int64(raw | (^uint64(0) << length))
	}
	return int64(raw)
}

// rawToPhysical applies a signal's scaling and, when set, its extended
// value type reinterpretation (spec §4.5, §4.6).
func rawToPhysical(s *Signal, raw uint64) float64 {
	switch s.ExtendedValueType {
	case ValueTypeFloat32:
		return float64(math.Float32frombits(uint32(raw)))
	case ValueTypeFloat64:
		return math.Float64frombits(raw)
	}
	var iv float64
	if s.Sign == Signed {
		iv = float64(signExtend(raw, s.Length))
	} else {
		iv = float64(raw)
	}
	return iv*s.Factor + s.Offset
}

// physicalToRaw is rawToPhysical's inverse, rounding to the nearest integer
// raw value and clamping to what Length bits can represent.
func physicalToRaw(s *Signal, phys float64) uint64 {
	switch s.ExtendedValueType {
	case ValueTypeFloat32:
		return uint64(math.Float32bits(float32(phys)))
	case ValueTypeFloat64:
		return math.Float64bits(phys)
	}
	iv := phys
	if s.Factor != 0 {
		iv = (phys - s.Offset) / s.Factor
	}
	rounded := math.Round(iv)

	if s.Sign == Signed {
		lo := -(int64(1) << (s.Length - 1))
		hi := int64(1)<<(s.Length-1) - 1
		r := int64(rounded)
		if r < lo {
			r = lo
		}
		if r > hi {
			r = hi
		}
		mask := uint64(1)<<s.Length - 1
		return uint64(r) & mask
	}

	hi := uint64(1)<<s.Length - 1
	if rounded < 0 {
		return 0
	}
	u := uint64(rounded)
	if u > hi {
		u = hi
	}
	return u
}
