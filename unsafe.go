package netpack

import "unsafe"

// unsafeSliceHeader 是切片的内部表示
type unsafeSliceHeader struct {
	Data uintptr
	Len  int
	Cap  int
}

// unsafeStringHeader 是字符串的内部表示
type unsafeStringHeader struct {
	Data uintptr
	Len  int
}

// unsafeString2Bytes 使用 unsafe 将字符串转换为字节切片
// 避免内存拷贝，返回的切片与字符串共享底层存储，只读
func unsafeString2Bytes(s string) (b []byte) {
	sh := (*unsafeStringHeader)(unsafe.Pointer(&s))
	bh := (*unsafeSliceHeader)(unsafe.Pointer(&b))
	bh.Data = sh.Data
	bh.Len = sh.Len
	bh.Cap = sh.Len
	return b
}

// unsafeBytesView 将 1 字节元素的切片重解释为字节切片
// 仅对元素宽度恰为 1 字节的类型有效
func unsafeBytesView[T any](vals []T) []byte {
	if len(vals) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals))
}
