package netpack

import (
	"bytes"
	"errors"
	"testing"
)

// 字节序参考向量
// Byte order reference vectors
func TestPackerByteOrder(t *testing.T) {
	cases := []struct {
		name     string
		pack     func(p *Packer)
		expected []byte
	}{
		{"uint16", func(p *Packer) { p.PutUint16(0x3344) }, []byte{0x33, 0x44}},
		{"int16", func(p *Packer) { p.PutInt16(-2) }, []byte{0xFF, 0xFE}},
		{"uint32", func(p *Packer) { p.PutUint32(0x11223344) }, []byte{0x11, 0x22, 0x33, 0x44}},
		{"int32", func(p *Packer) { p.PutInt32(-2) }, []byte{0xFF, 0xFF, 0xFF, 0xFE}},
		{"int8", func(p *Packer) { p.PutInt8(-1) }, []byte{0xFF}},
		{"uint8", func(p *Packer) { p.PutUint8(0x7F) }, []byte{0x7F}},
		{"byte", func(p *Packer) { p.PutByte(0xAB) }, []byte{0xAB}},
		{"bool true", func(p *Packer) { p.PutBool(true) }, []byte{0x01}},
		{"bool false", func(p *Packer) { p.PutBool(false) }, []byte{0x00}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPacker()
			tc.pack(p)
			if !bytes.Equal(p.Bytes(), tc.expected) {
				t.Errorf("expected % X, got % X", tc.expected, p.Bytes())
			}
		})
	}
}

// 字节序列必须严格按照插入顺序出现，无重排、无填充、无对齐
// Bytes must appear in strict insertion order, no reordering, no padding
func TestPackerOrderPreservation(t *testing.T) {
	p := NewPacker()
	p.PutUint8(0x01).PutUint16(0x2233).PutUint32(0x44556677).PutByte(0x88)

	expected := []byte{0x01, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	if !bytes.Equal(p.Bytes(), expected) {
		t.Fatalf("expected % X, got % X", expected, p.Bytes())
	}
	if p.Size() != len(expected) {
		t.Errorf("expected size %d, got %d", len(expected), p.Size())
	}
}

func TestPackerTargetSize(t *testing.T) {
	t.Run("exact size succeeds", func(t *testing.T) {
		p := NewPackerSize(6)
		p.PutUint32(1).PutUint16(2)
		data, err := p.Data()
		if err != nil {
			t.Fatalf("Data failed on exact size: %v", err)
		}
		if len(data) != 6 {
			t.Errorf("expected 6 bytes, got %d", len(data))
		}
	})

	t.Run("undersized fails", func(t *testing.T) {
		p := NewPackerSize(6)
		p.PutUint32(1)
		if _, err := p.Data(); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("expected ErrSizeMismatch, got %v", err)
		}
	})

	t.Run("oversized fails", func(t *testing.T) {
		p := NewPackerSize(6)
		p.PutUint32(1).PutUint16(2).PutByte(3)
		if _, err := p.Data(); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("expected ErrSizeMismatch, got %v", err)
		}
	})

	// 大小校验在每次读出时重新进行，失败后补足数据即可重试
	// Size is re-validated per read-out; topping up after a failure works
	t.Run("retry after append", func(t *testing.T) {
		p := NewPackerSize(6)
		p.PutUint32(1)
		if _, err := p.Data(); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("expected ErrSizeMismatch, got %v", err)
		}
		p.PutUint16(2)
		if _, err := p.Data(); err != nil {
			t.Fatalf("Data failed after topping up: %v", err)
		}
	})

	t.Run("variable size never checks", func(t *testing.T) {
		p := NewPacker()
		p.PutByte(1)
		if _, err := p.Data(); err != nil {
			t.Fatalf("variable-size Data failed: %v", err)
		}
	})
}

// PutCString 的写入大小为 len(s)+1，结尾字节计入目标大小
// PutCString writes len(s)+1 bytes; the terminator counts toward the target
func TestPackerCString(t *testing.T) {
	p := NewPackerSize(6)
	p.PutCString("hello")
	data, err := p.Data()
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}
	expected := []byte{'h', 'e', 'l', 'l', 'o', 0}
	if !bytes.Equal(data, expected) {
		t.Errorf("expected % X, got % X", expected, data)
	}
}

func TestPackerString(t *testing.T) {
	p := NewPacker()
	p.PutString("hi")
	if !bytes.Equal(p.Bytes(), []byte{'h', 'i'}) {
		t.Errorf("expected raw bytes without terminator, got % X", p.Bytes())
	}
}

func TestPackerBytes(t *testing.T) {
	p := NewPacker()
	p.PutBytes([]byte{1, 2, 3}).PutBytes(nil).PutBytes([]byte{4})
	if !bytes.Equal(p.Bytes(), []byte{1, 2, 3, 4}) {
		t.Errorf("unexpected buffer: % X", p.Bytes())
	}
}

func TestPackerReserve(t *testing.T) {
	t.Run("grows variable packer", func(t *testing.T) {
		p := NewPacker()
		p.Reserve(128)
		if p.Cap() < 128 {
			t.Errorf("expected capacity >= 128, got %d", p.Cap())
		}
	})

	// 固定大小的 Packer 容量已在构造时确定
	// A fixed-size Packer's capacity was set at construction
	t.Run("no-op on targeted packer", func(t *testing.T) {
		p := NewPackerSize(8)
		p.Reserve(1024)
		if p.Cap() >= 1024 {
			t.Errorf("Reserve must be a no-op on a targeted packer, capacity grew to %d", p.Cap())
		}
		if p.TargetSize() != 8 {
			t.Errorf("expected target size 8, got %d", p.TargetSize())
		}
	})

	t.Run("existing data survives", func(t *testing.T) {
		p := NewPacker()
		p.PutUint16(0x0102)
		p.Reserve(256)
		if !bytes.Equal(p.Bytes(), []byte{0x01, 0x02}) {
			t.Errorf("data lost across Reserve: % X", p.Bytes())
		}
	})
}

// Reset 清空缓冲区，但目标大小约定保留
// Reset empties the buffer; the target size contract is kept
func TestPackerReset(t *testing.T) {
	p := NewPackerSize(2)
	p.PutUint32(1)
	p.Reset()

	if p.Size() != 0 {
		t.Fatalf("expected size 0 after Reset, got %d", p.Size())
	}
	if p.TargetSize() != 2 {
		t.Fatalf("expected target size 2 after Reset, got %d", p.TargetSize())
	}

	p.PutUint16(0x3344)
	data, err := p.Data()
	if err != nil {
		t.Fatalf("Data failed after Reset: %v", err)
	}
	if !bytes.Equal(data, []byte{0x33, 0x44}) {
		t.Errorf("unexpected buffer after Reset: % X", data)
	}
}

func TestPackerWriteTo(t *testing.T) {
	t.Run("writes validated buffer", func(t *testing.T) {
		p := NewPackerSize(2)
		p.PutUint16(0x3344)

		var sink bytes.Buffer
		n, err := p.WriteTo(&sink)
		if err != nil {
			t.Fatalf("WriteTo failed: %v", err)
		}
		if n != 2 || !bytes.Equal(sink.Bytes(), []byte{0x33, 0x44}) {
			t.Errorf("unexpected sink contents: n=%d, % X", n, sink.Bytes())
		}
	})

	t.Run("refuses mismatched size", func(t *testing.T) {
		p := NewPackerSize(4)
		p.PutUint16(1)

		var sink bytes.Buffer
		if _, err := p.WriteTo(&sink); !errors.Is(err, ErrSizeMismatch) {
			t.Fatalf("expected ErrSizeMismatch, got %v", err)
		}
		if sink.Len() != 0 {
			t.Errorf("nothing should reach the sink on mismatch, got %d bytes", sink.Len())
		}
	})
}

func TestPackerPool(t *testing.T) {
	p := AcquirePacker()
	p.PutUint32(42)
	ReleasePacker(p)

	q := AcquirePacker()
	defer ReleasePacker(q)
	if q.Size() != 0 {
		t.Errorf("pooled packer not empty: size %d", q.Size())
	}
	if q.TargetSize() != 0 {
		t.Errorf("pooled packer kept a target size: %d", q.TargetSize())
	}
}
