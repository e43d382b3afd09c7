package netpack

import "sync"

// MaxCapSize 定义了缓冲区的最大容量限制
// 超过此限制的 Packer 不会被放回对象池，避免池中滞留大块内存
//
// MaxCapSize defines the maximum capacity limit for buffers
// Packers exceeding this limit are not put back into the object pool,
// keeping large blocks from lingering in the pool
const MaxCapSize = 1 << 20

// packerPool 用于复用 Packer 对象，减少构建数据包时的内存分配
// packerPool is used to reuse Packer objects to reduce allocations
// when building packets
var packerPool = sync.Pool{
	New: func() interface{} {
		return &Packer{}
	},
}

// unpackerPool 用于复用 Unpacker 对象
// unpackerPool is used to reuse Unpacker objects
var unpackerPool = sync.Pool{
	New: func() interface{} {
		return &Unpacker{}
	},
}

// AcquirePacker 从对象池获取一个空的可变大小 Packer
// AcquirePacker gets an empty variable-size Packer from the pool
func AcquirePacker() *Packer {
	return packerPool.Get().(*Packer)
}

// ReleasePacker 将 Packer 放回对象池
// 缓冲区被清空，目标大小被重置；容量超限的实例直接丢弃
//
// ReleasePacker puts the Packer back to the pool
// The buffer is emptied and the target size reset; instances over the
// capacity limit are simply dropped
func ReleasePacker(p *Packer) {
	if p == nil || cap(p.buf) > MaxCapSize {
		return
	}
	p.Reset()
	p.targetSize = 0
	packerPool.Put(p)
}

// AcquireUnpacker 从对象池获取一个包装 data 的 Unpacker
// 与 NewUnpacker 一样，data 仅被借用
//
// AcquireUnpacker gets an Unpacker wrapping data from the pool
// As with NewUnpacker, data is only borrowed
func AcquireUnpacker(data []byte) *Unpacker {
	u := unpackerPool.Get().(*Unpacker)
	u.data = data
	u.next = 0
	u.err = nil
	return u
}

// ReleaseUnpacker 将 Unpacker 放回对象池
// 借用的字节区域引用被清除，避免对象池钉住调用方的内存
//
// ReleaseUnpacker puts the Unpacker back to the pool
// The borrowed region reference is cleared so the pool does not pin
// the caller's memory
func ReleaseUnpacker(u *Unpacker) {
	if u == nil {
		return
	}
	u.data = nil
	u.next = 0
	u.err = nil
	unpackerPool.Put(u)
}
