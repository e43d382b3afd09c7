package netpack

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"unsafe"
)

// Unpacker 从调用方持有的连续字节区域中按序提取类型化的值
// 字节区域只被借用，绝不复制；调用方必须保证其生命周期覆盖所有提取操作
// 每次提取前都会进行越界检查，读取游标永远不会越过区域末尾
//
// Unpacker extracts typed values, in order, from a contiguous byte region
// owned by the caller. The region is only borrowed, never copied; the
// caller must keep it alive across every extraction. Every extraction is
// bounds-checked first, and the read cursor never moves past the end of
// the region.
//
// 提取失败后错误会被粘滞保留，后续提取均为空操作，直到调用 Reset
// After a failed extraction the error sticks and further extractions are
// no-ops until Reset is called.
type Unpacker struct {
	data []byte // 借用的字节区域 / borrowed byte region
	next int    // 当前读取位置 / current read position
	err  error  // 粘滞错误 / sticky error
}

// NewUnpacker 包装一个调用方持有的字节切片
// NewUnpacker wraps a caller-owned byte slice
func NewUnpacker(data []byte) *Unpacker {
	return &Unpacker{data: data}
}

// NewUnpackerOf 包装任意字节形态的连续数据，零复制
// 接受的形态由 ByteData 约束给出：~[]byte、~[]int8 或 ~string
//
// NewUnpackerOf wraps contiguous data of any byte shape, zero-copy
// Accepted shapes are given by the ByteData constraint: ~[]byte,
// ~[]int8 or ~string
func NewUnpackerOf[S ByteData](src S) *Unpacker {
	value := reflect.ValueOf(src)
	switch value.Kind() {
	case reflect.String:
		return NewUnpacker(unsafeString2Bytes(value.String()))
	default:
		if value.Len() == 0 {
			return NewUnpacker(nil)
		}
		if value.Type().Elem().Kind() == reflect.Uint8 {
			return NewUnpacker(value.Bytes())
		}
		// ~[]int8：逐字节同形，直接重解释底层存储
		// ~[]int8: byte-identical layout, reinterpret the backing store
		ptr := (*byte)(unsafe.Pointer(value.Index(0).Addr().Pointer()))
		return NewUnpacker(unsafe.Slice(ptr, value.Len()))
	}
}

// GetByte 提取一个原始字节
// GetByte extracts a single raw byte
func (u *Unpacker) GetByte(out *byte) *Unpacker {
	if b := u.take(1); b != nil {
		*out = b[0]
	}
	return u
}

// GetUint8 提取一个无符号 8 位整数
// GetUint8 extracts an unsigned 8-bit integer
func (u *Unpacker) GetUint8(out *uint8) *Unpacker {
	if b := u.take(1); b != nil {
		*out = b[0]
	}
	return u
}

// GetInt8 提取一个有符号 8 位整数
// GetInt8 extracts a signed 8-bit integer
func (u *Unpacker) GetInt8(out *int8) *Unpacker {
	if b := u.take(1); b != nil {
		*out = int8(b[0])
	}
	return u
}

// GetBool 提取一个布尔值，任何非零字节都归一化为 true
// GetBool extracts a boolean; any nonzero byte normalizes to true
func (u *Unpacker) GetBool(out *bool) *Unpacker {
	if b := u.take(1); b != nil {
		*out = b[0] != 0
	}
	return u
}

// GetUint16 提取一个网络字节序的无符号 16 位整数
// GetUint16 extracts an unsigned 16-bit integer in network byte order
func (u *Unpacker) GetUint16(out *uint16) *Unpacker {
	if b := u.take(2); b != nil {
		*out = binary.BigEndian.Uint16(b)
	}
	return u
}

// GetInt16 提取一个网络字节序的有符号 16 位整数
// GetInt16 extracts a signed 16-bit integer in network byte order
func (u *Unpacker) GetInt16(out *int16) *Unpacker {
	if b := u.take(2); b != nil {
		*out = int16(binary.BigEndian.Uint16(b))
	}
	return u
}

// GetUint32 提取一个网络字节序的无符号 32 位整数
// GetUint32 extracts an unsigned 32-bit integer in network byte order
func (u *Unpacker) GetUint32(out *uint32) *Unpacker {
	if b := u.take(4); b != nil {
		*out = binary.BigEndian.Uint32(b)
	}
	return u
}

// GetInt32 提取一个网络字节序的有符号 32 位整数
// GetInt32 extracts a signed 32-bit integer in network byte order
func (u *Unpacker) GetInt32(out *int32) *Unpacker {
	if b := u.take(4); b != nil {
		*out = int32(binary.BigEndian.Uint32(b))
	}
	return u
}

// GetBytes 提取 len(out) 个字节到 out 中，单次整块复制
// GetBytes extracts len(out) bytes into out in a single bulk copy
func (u *Unpacker) GetBytes(out []byte) *Unpacker {
	if b := u.take(len(out)); b != nil {
		copy(out, b)
	}
	return u
}

// GetPacket 提取一个用户自定义类型
// 该类型通过组合基本提取操作来定义自身的线格式
//
// GetPacket extracts a user-defined type
// The type defines its own wire format by composing primitive extractions
func (u *Unpacker) GetPacket(m Unmarshaler) *Unpacker {
	if u.err == nil {
		m.UnmarshalPacket(u)
	}
	return u
}

// Size 返回所包装字节区域的总长度，构造后不变
// Size returns the total length of the wrapped region, fixed at construction
func (u *Unpacker) Size() int {
	return len(u.data)
}

// Remaining 返回尚未消费的字节数
// Remaining returns the number of bytes not yet consumed
func (u *Unpacker) Remaining() int {
	return len(u.data) - u.next
}

// Err 返回首次提取失败时记录的错误，无错误时为 nil
// Err returns the error recorded by the first failed extraction, or nil
func (u *Unpacker) Err() error {
	return u.err
}

// Reset 将游标回绕到区域起点并清除粘滞错误
// 底层数据不受影响，可用于多遍解析
//
// Reset rewinds the cursor to the start of the region and clears the
// sticky error. The underlying data is untouched; enables multi-pass
// parsing
func (u *Unpacker) Reset() {
	u.next = 0
	u.err = nil
}

// take 在复制前检查剩余字节数是否足够
// 检查失败时游标不会前进，目标变量保持不变
//
// take checks that enough bytes remain before any copy
// On failure the cursor does not advance and destinations stay untouched
func (u *Unpacker) take(n int) []byte {
	if u.err != nil {
		return nil
	}
	if u.next+n > len(u.data) {
		u.err = fmt.Errorf("unpacker needs %d bytes, %d remaining: %w", n, u.Remaining(), ErrOverrun)
		return nil
	}
	b := u.data[u.next : u.next+n]
	u.next += n
	return b
}
