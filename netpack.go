// Package netpack implements building and parsing of binary network packets.
// netpack 包实现了二进制网络数据包的构建与解析功能。
// 它提供类型安全的链式 API，所有多字节整数均按网络字节序（大端序）编码。
//
// Features:
// - 支持 1/2/4 字节整数类型的类型安全编码和解码
// - 链式调用 API，按插入顺序精确生成字节序列
// - 固定大小数据包的精确长度校验
// - 解包时对每次读取进行严格的越界检查
// - 通过 Marshaler/Unmarshaler 接口支持用户自定义协议结构
// - 提供高性能的对象池复用
//
// Features:
// - Type-safe encoding and decoding of 1/2/4-byte integer types
// - Chainable API producing bytes in exact insertion order
// - Exact length validation for fixed-size packets
// - Strict bounds checking on every read during unpacking
// - User-defined protocol structures via Marshaler/Unmarshaler interfaces
// - High-performance object pool reuse
//
// 8 字节整数被有意排除在外：64 位字没有唯一的网络字节序转换约定，
// 与其猜测，不如让误用在编译期失败。
//
// 8-byte integers are deliberately excluded: there is no single canonical
// network byte order conversion for 64-bit words, so misuse fails at
// compile time instead of being guessed at.
package netpack

// Marshal 将一个 Marshaler 序列化为新分配的字节切片
// 这是一个便捷方法，内部使用对象池中的 Packer
//
// Marshal serializes a Marshaler into a freshly allocated byte slice
// This is a convenience method that uses a pooled Packer internally
func Marshal(m Marshaler) ([]byte, error) {
	packer := AcquirePacker()
	defer ReleasePacker(packer)

	m.MarshalPacket(packer)

	data, err := packer.Data()
	if err != nil {
		return nil, err
	}

	// 复制出缓冲区内容，因为 packer 即将归还对象池
	// Copy the buffer contents out, the packer is about to be pooled
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Unmarshal 从字节切片中反序列化一个 Unmarshaler
// 字节切片仅被借用，不会被复制或修改
//
// Unmarshal deserializes an Unmarshaler from a byte slice
// The byte slice is only borrowed, never copied or modified
func Unmarshal(data []byte, m Unmarshaler) error {
	unpacker := NewUnpacker(data)
	m.UnmarshalPacket(unpacker)
	return unpacker.Err()
}
