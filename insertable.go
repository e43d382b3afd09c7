package netpack

import "reflect"

// Insertable 是编解码器支持的线格式类型的类型集合
// 它是编译期的能力判定：不在集合中的类型（特别是 64 位整数以及
// 宽度随平台变化的 int/uint）无法实例化泛型编解码操作
//
// Insertable is the type set of wire-format types the codec supports
// It is the compile-time capability test: types outside the set (notably
// 64-bit integers, and int/uint whose width varies by platform) cannot
// instantiate the generic codec operations
type Insertable interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// ByteData 是可以被 Unpacker 零复制包装的字节形态数据的类型集合
// 这是一个比 Insertable 更窄的独立判定：元素必须恰好为 1 字节宽
//
// ByteData is the type set of byte-shaped data an Unpacker can wrap
// zero-copy. It is a separate, narrower test than Insertable: elements
// must be exactly 1 byte wide
type ByteData interface {
	~[]byte | ~[]int8 | ~string
}

// Marshaler 定义了自定义类型的打包接口
// 实现者通过组合 Packer 的基本插入操作来定义自身的线格式，
// 编解码器无需了解类型的内部布局
//
// Marshaler defines the packing interface for custom types
// Implementers define their own wire format by composing the Packer's
// primitive insertions; the codec never needs to know the type's layout
type Marshaler interface {
	// MarshalPacket 将自身按字段顺序写入 p
	// MarshalPacket writes the receiver into p, field by field
	MarshalPacket(p *Packer)
}

// Unmarshaler 定义了自定义类型的解包接口，与 Marshaler 对称
// 提取失败由 Unpacker 的粘滞错误承载，无需单独返回
//
// Unmarshaler defines the unpacking interface for custom types, symmetric
// with Marshaler. Extraction failures are carried by the Unpacker's
// sticky error, no separate return needed
type Unmarshaler interface {
	// UnmarshalPacket 从 u 中按字段顺序读出并填充自身
	// UnmarshalPacket reads the receiver out of u, field by field
	UnmarshalPacket(u *Unpacker)
}

var (
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)

// kindWidths 给出各反射 Kind 的线格式宽度
// 缺失的 Kind（Int64、Uint64、Int、Uint、浮点等）即为不支持
//
// kindWidths gives the wire width of each reflect Kind
// Absent kinds (Int64, Uint64, Int, Uint, floats, ...) are unsupported
var kindWidths = map[reflect.Kind]int{
	reflect.Bool:   1,
	reflect.Int8:   1,
	reflect.Uint8:  1,
	reflect.Int16:  2,
	reflect.Uint16: 2,
	reflect.Int32:  4,
	reflect.Uint32: 4,
}

// Packable 报告类型 t 的值是否具有已定义的插入操作
// 对基本数值类型只接受精确列举的 Kind：不能仅因为某个通用编码器
// 碰巧能处理 int64 或 float64 就把它们误报为可打包，
// 宽度为 8 的整数是被有意排除的
//
// Packable reports whether values of type t have a defined insertion
// operation. For primitive numerics only the explicitly listed kinds
// are accepted: int64 or float64 must not be reported packable merely
// because some generic encoder happens to handle them — 8-byte
// integers are excluded on purpose
func Packable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Implements(marshalerType) {
		return true
	}
	if _, ok := kindWidths[t.Kind()]; ok {
		return true
	}
	switch t.Kind() {
	case reflect.String:
		// 字符串以原始字节插入，但没有对应的提取操作
		// Strings insert as raw bytes but have no extraction counterpart
		return true
	case reflect.Array, reflect.Slice:
		return Packable(t.Elem())
	}
	return false
}

// Extractable 报告类型 t 的值是否具有已定义的提取操作
// 与 Packable 对称；自定义类型通过指针接收者实现 Unmarshaler
//
// Extractable reports whether values of type t have a defined extraction
// operation. Symmetric with Packable; custom types implement Unmarshaler
// on a pointer receiver
func Extractable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Implements(unmarshalerType) || reflect.PtrTo(t).Implements(unmarshalerType) {
		return true
	}
	if _, ok := kindWidths[t.Kind()]; ok {
		return true
	}
	switch t.Kind() {
	case reflect.Array, reflect.Slice:
		return Extractable(t.Elem())
	}
	return false
}

// WireSize 返回类型 t 的值在线格式中占用的字节数
// 对动态长度或自行定义格式的类型（切片、Marshaler）无法静态得出，
// 返回 ok=false；可用于为固定大小的 Packer 预算目标大小
//
// WireSize returns the number of bytes a value of type t occupies on the
// wire. For dynamically sized or self-formatting types (slices,
// Marshalers) the size cannot be derived statically and ok is false.
// Useful for budgeting a fixed-size Packer's target size
func WireSize(t reflect.Type) (size int, ok bool) {
	if t == nil {
		return 0, false
	}
	if w, found := kindWidths[t.Kind()]; found {
		return w, true
	}
	if t.Kind() == reflect.Array {
		elem, found := WireSize(t.Elem())
		if !found {
			return 0, false
		}
		return t.Len() * elem, true
	}
	return 0, false
}
