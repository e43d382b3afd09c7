package netpack

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Packer 按插入顺序将类型化的值累积到其独占持有的字节缓冲区中
// 所有多字节整数均转换为网络字节序（大端序）后追加
// 缓冲区只会通过定义好的追加操作增长，已写入的字节不会被改写
//
// Packer accumulates typed values, in insertion order, into a byte buffer
// it exclusively owns. All multi-byte integers are converted to network
// byte order (big-endian) before being appended. The buffer only grows
// through well-defined append operations; previously written bytes are
// never rewritten.
//
// Packer 不是并发安全的，每个实例代表一次进行中的序列化会话
// A Packer is not safe for concurrent use; each instance represents a
// single in-progress serialization session.
type Packer struct {
	buf        []byte // 内部字节缓冲区 / internal byte buffer
	targetSize int    // 目标大小，0 表示可变大小 / target size, 0 means variable
}

// NewPacker 创建一个可变大小的 Packer
// 生成的数据包长度由调用方自行负责校验
//
// NewPacker creates a variable-size Packer
// Checking the length of the generated packet is the caller's business
func NewPacker() *Packer {
	return &Packer{}
}

// NewPackerSize 创建一个固定大小的 Packer，并预留相应容量
// Data 和 WriteTo 会校验累积的字节数是否恰好等于 size
//
// NewPackerSize creates a fixed-size Packer, pre-reserving capacity
// Data and WriteTo verify that exactly size bytes were accumulated
func NewPackerSize(size int) *Packer {
	return &Packer{
		buf:        make([]byte, 0, size),
		targetSize: size,
	}
}

// PutByte 追加一个原始字节
// PutByte appends a single raw byte
func (p *Packer) PutByte(v byte) *Packer {
	p.buf = append(p.buf, v)
	return p
}

// PutUint8 追加一个无符号 8 位整数
// PutUint8 appends an unsigned 8-bit integer
func (p *Packer) PutUint8(v uint8) *Packer {
	p.buf = append(p.buf, v)
	return p
}

// PutInt8 追加一个有符号 8 位整数
// PutInt8 appends a signed 8-bit integer
func (p *Packer) PutInt8(v int8) *Packer {
	p.buf = append(p.buf, byte(v))
	return p
}

// PutBool 将布尔值编码为单个字节：true 为 1，false 为 0
// PutBool encodes a boolean as a single byte: 1 for true, 0 for false
func (p *Packer) PutBool(v bool) *Packer {
	var b byte
	if v {
		b = 1
	}
	p.buf = append(p.buf, b)
	return p
}

// PutUint16 以网络字节序追加一个无符号 16 位整数
// PutUint16 appends an unsigned 16-bit integer in network byte order
func (p *Packer) PutUint16(v uint16) *Packer {
	p.buf = binary.BigEndian.AppendUint16(p.buf, v)
	return p
}

// PutInt16 以网络字节序追加一个有符号 16 位整数
// PutInt16 appends a signed 16-bit integer in network byte order
func (p *Packer) PutInt16(v int16) *Packer {
	p.buf = binary.BigEndian.AppendUint16(p.buf, uint16(v))
	return p
}

// PutUint32 以网络字节序追加一个无符号 32 位整数
// PutUint32 appends an unsigned 32-bit integer in network byte order
func (p *Packer) PutUint32(v uint32) *Packer {
	p.buf = binary.BigEndian.AppendUint32(p.buf, v)
	return p
}

// PutInt32 以网络字节序追加一个有符号 32 位整数
// PutInt32 appends a signed 32-bit integer in network byte order
func (p *Packer) PutInt32(v int32) *Packer {
	p.buf = binary.BigEndian.AppendUint32(p.buf, uint32(v))
	return p
}

// PutBytes 整块追加字节数据，不做任何转换
// 单字节元素没有字节序问题
//
// PutBytes appends byte data in a single bulk copy, no conversion
// Single-byte elements have no byte order
func (p *Packer) PutBytes(b []byte) *Packer {
	p.buf = append(p.buf, b...)
	return p
}

// PutCString 追加字符串的原始字节，外加一个结尾的 NUL 字节
// 写入大小为 len(s)+1，使用固定大小 Packer 时调用方需要计入结尾字节
//
// PutCString appends the raw bytes of the string plus a trailing NUL byte
// The written size is len(s)+1; callers using a fixed-size Packer must
// budget for the terminator
func (p *Packer) PutCString(s string) *Packer {
	p.buf = append(p.buf, s...)
	p.buf = append(p.buf, 0)
	return p
}

// PutString 追加字符串的原始字节，不带结尾字节
// PutString appends the raw bytes of the string, no terminator
func (p *Packer) PutString(s string) *Packer {
	p.buf = append(p.buf, s...)
	return p
}

// PutPacket 追加一个用户自定义类型
// 该类型通过组合基本插入操作来定义自身的线格式
//
// PutPacket appends a user-defined type
// The type defines its own wire format by composing primitive insertions
func (p *Packer) PutPacket(m Marshaler) *Packer {
	m.MarshalPacket(p)
	return p
}

// Reserve 提示 Packer 预留至少 n 字节的容量
// 对固定大小的 Packer 是空操作，其容量已在构造时确定
//
// Reserve hints the Packer to reserve capacity for at least n bytes
// No-op for a fixed-size Packer, whose capacity was set at construction
func (p *Packer) Reserve(n int) {
	if p.targetSize > 0 || n <= cap(p.buf) {
		return
	}
	buf := make([]byte, len(p.buf), n)
	copy(buf, p.buf)
	p.buf = buf
}

// Size 返回目前已追加的字节数
// Size returns the number of bytes appended so far
func (p *Packer) Size() int {
	return len(p.buf)
}

// Cap 返回当前分配的存储容量
// Cap returns the currently allocated storage capacity
func (p *Packer) Cap() int {
	return cap(p.buf)
}

// TargetSize 返回构造时设定的固定大小，可变大小时为 0
// TargetSize returns the fixed size set at construction, or 0 if variable
func (p *Packer) TargetSize() int {
	return p.targetSize
}

// Data 返回指向内部缓冲区的只读视图
// 若设置了目标大小，每次调用都会重新校验当前大小是否与之完全一致；
// 校验失败返回 ErrSizeMismatch，此后仍可继续追加数据并重试
//
// Data returns a read-only view of the internal buffer
// If a target size is set, every call re-validates that the current size
// matches it exactly; on failure ErrSizeMismatch is returned and the
// caller may keep appending data and retry
//
// 返回的切片与 Packer 共享存储，调用方不得修改
// The returned slice shares storage with the Packer and must not be modified
func (p *Packer) Data() ([]byte, error) {
	if err := p.checkSize(); err != nil {
		return nil, err
	}
	return p.buf, nil
}

// Bytes 返回内部缓冲区的未校验只读视图，用于检视和测试
// Bytes returns an unchecked read-only view of the internal buffer,
// for inspection and testing
func (p *Packer) Bytes() []byte {
	return p.buf
}

// WriteTo 校验大小后将缓冲区写入 w，实现 io.WriterTo
// 这是与字节汇（如 socket 发送调用）对接的边界
//
// WriteTo validates the size and writes the buffer to w, implementing
// io.WriterTo. This is the boundary to a byte sink (e.g. a socket send)
func (p *Packer) WriteTo(w io.Writer) (int64, error) {
	data, err := p.Data()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Reset 清空缓冲区但保留目标大小，容量也会保留以便复用
// Reset empties the buffer but keeps the target size; capacity is
// retained for reuse
func (p *Packer) Reset() {
	p.buf = p.buf[:0]
}

// checkSize 校验固定大小约定
// checkSize validates the fixed-size contract
func (p *Packer) checkSize() error {
	if p.targetSize > 0 && len(p.buf) != p.targetSize {
		return fmt.Errorf("packer size %d <> target size %d: %w", len(p.buf), p.targetSize, ErrSizeMismatch)
	}
	return nil
}
