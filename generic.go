package netpack

import (
	"fmt"
	"reflect"
)

// 本文件提供按 Insertable 类型集合约束的泛型编解码操作
// 它们让派生类型（如 type Port uint16）以及同构序列参与协议，
// 不在集合中的元素类型在编译期即被拒绝
//
// This file provides the generic codec operations constrained by the
// Insertable type set. They let derived types (e.g. type Port uint16)
// and homogeneous sequences participate in the protocol; element types
// outside the set are rejected at compile time.

// Put 插入一个任意 Insertable 类型的值
// Put inserts a single value of any Insertable type
func Put[T Insertable](p *Packer, v T) *Packer {
	return putValue(p, reflect.ValueOf(v))
}

// Get 提取一个任意 Insertable 类型的值
// Get extracts a single value of any Insertable type
func Get[T Insertable](u *Unpacker, out *T) *Unpacker {
	return getValue(u, reflect.ValueOf(out).Elem())
}

// PutSlice 按元素顺序插入一个序列，固定数组通过 arr[:] 参与
// 1 字节元素走单次整块复制的快速路径，无需逐元素转换
//
// PutSlice inserts a sequence element-wise, in order; fixed arrays
// participate via arr[:]. Slices of 1-byte elements take a single
// bulk-copy fast path, no per-element conversion
func PutSlice[T Insertable](p *Packer, vals []T) *Packer {
	if len(vals) == 0 {
		return p
	}
	switch reflect.TypeOf(vals).Elem().Kind() {
	case reflect.Int8, reflect.Uint8:
		return p.PutBytes(unsafeBytesView(vals))
	}
	for i := range vals {
		putValue(p, reflect.ValueOf(vals[i]))
	}
	return p
}

// GetSlice 按元素顺序提取一个序列，与 PutSlice 对称
// 每个元素的提取都独立经过越界检查；越界时已提取的元素保留，
// 失败元素及其后的元素保持不变
//
// GetSlice extracts a sequence element-wise, symmetric with PutSlice
// Every element extraction is independently bounds-checked; on overrun
// the already extracted elements are kept, the failing element and the
// ones after it stay untouched
func GetSlice[T Insertable](u *Unpacker, out []T) *Unpacker {
	if u.err != nil || len(out) == 0 {
		return u
	}
	switch reflect.TypeOf(out).Elem().Kind() {
	case reflect.Int8, reflect.Uint8:
		return u.GetBytes(unsafeBytesView(out))
	}
	for i := range out {
		getValue(u, reflect.ValueOf(&out[i]).Elem())
		if u.err != nil {
			break
		}
	}
	return u
}

// putValue 按 Kind 分派到对应的基本插入操作
// putValue dispatches on Kind to the matching primitive insertion
func putValue(p *Packer, val reflect.Value) *Packer {
	switch val.Kind() {
	case reflect.Bool:
		return p.PutBool(val.Bool())
	case reflect.Int8:
		return p.PutInt8(int8(val.Int()))
	case reflect.Uint8:
		return p.PutUint8(uint8(val.Uint()))
	case reflect.Int16:
		return p.PutInt16(int16(val.Int()))
	case reflect.Uint16:
		return p.PutUint16(uint16(val.Uint()))
	case reflect.Int32:
		return p.PutInt32(int32(val.Int()))
	case reflect.Uint32:
		return p.PutUint32(uint32(val.Uint()))
	}
	// Insertable 类型集合保证不可达
	// Unreachable, guaranteed by the Insertable type set
	panic(fmt.Sprintf("netpack: unsupported kind %s", val.Kind()))
}

// getValue 按 Kind 分派到对应的基本提取操作
// 仅在提取成功后写入目标，失败时目标保持原值
//
// getValue dispatches on Kind to the matching primitive extraction
// The destination is written only on success and keeps its value otherwise
func getValue(u *Unpacker, val reflect.Value) *Unpacker {
	if u.err != nil {
		return u
	}
	switch val.Kind() {
	case reflect.Bool:
		var v bool
		if u.GetBool(&v); u.err == nil {
			val.SetBool(v)
		}
	case reflect.Int8:
		var v int8
		if u.GetInt8(&v); u.err == nil {
			val.SetInt(int64(v))
		}
	case reflect.Uint8:
		var v uint8
		if u.GetUint8(&v); u.err == nil {
			val.SetUint(uint64(v))
		}
	case reflect.Int16:
		var v int16
		if u.GetInt16(&v); u.err == nil {
			val.SetInt(int64(v))
		}
	case reflect.Uint16:
		var v uint16
		if u.GetUint16(&v); u.err == nil {
			val.SetUint(uint64(v))
		}
	case reflect.Int32:
		var v int32
		if u.GetInt32(&v); u.err == nil {
			val.SetInt(int64(v))
		}
	case reflect.Uint32:
		var v uint32
		if u.GetUint32(&v); u.err == nil {
			val.SetUint(uint64(v))
		}
	default:
		panic(fmt.Sprintf("netpack: unsupported kind %s", val.Kind()))
	}
	return u
}
