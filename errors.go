package netpack

import "errors"

// 包级哨兵错误，调用方可通过 errors.Is 进行判别
// Package-level sentinel errors, distinguishable by callers via errors.Is
var (
	// ErrSizeMismatch 表示固定大小的 Packer 在读出数据时，
	// 累积的字节数与目标大小不完全一致
	//
	// ErrSizeMismatch indicates that a fixed-size Packer's accumulated
	// byte count does not exactly match its target size at read-out
	ErrSizeMismatch = errors.New("netpack: packet size mismatch")

	// ErrOverrun 表示 Unpacker 的一次提取操作将会越过
	// 所包装字节区域的末尾
	//
	// ErrOverrun indicates that an Unpacker extraction would read
	// past the end of the wrapped byte region
	ErrOverrun = errors.New("netpack: unpacker overrun")
)
