// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package memory

import "testing"

func TestAlignUp(t *testing.T) {
	tests := []struct {
		v, align, want uint64
	}{
		{0, 256, 0},
		{1, 256, 256},
		{256, 256, 256},
		{257, 256, 512},
		{100, 0, 100},
	}
	for _, tt := range tests {
		if got := alignUp(tt.v, tt.align); got != tt.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", tt.v, tt.align, got, tt.want)
		}
	}
}

func TestPoolBlockAllocFitsInFreeSpace(t *testing.T) {
	blk := newPoolBlock(1, 1024)

	off, ok := blk.alloc(256, 64)
	if !ok || off != 0 {
		t.Fatalf("alloc(256, 64) = (%d, %v), want (0, true)", off, ok)
	}
	if blk.used != 256 {
		t.Errorf("used = %d, want 256", blk.used)
	}

	off2, ok := blk.alloc(256, 64)
	if !ok || off2 != 256 {
		t.Fatalf("second alloc = (%d, %v), want (256, true)", off2, ok)
	}
}

func TestPoolBlockAllocRespectsAlignment(t *testing.T) {
	blk := newPoolBlock(1, 1024)
	blk.alloc(10, 1) // consume [0, 10)

	off, ok := blk.alloc(16, 64)
	if !ok {
		t.Fatal("expected aligned allocation to succeed in the remaining space")
	}
	if off%64 != 0 {
		t.Errorf("offset %d not aligned to 64", off)
	}
}

func TestPoolBlockAllocFailsWhenFull(t *testing.T) {
	blk := newPoolBlock(1, 128)
	if _, ok := blk.alloc(128, 1); !ok {
		t.Fatal("expected first allocation consuming the whole block to succeed")
	}
	if _, ok := blk.alloc(1, 1); ok {
		t.Fatal("expected allocation against a full block to fail")
	}
}

func TestPoolBlockReleaseCoalescesAdjacentRegions(t *testing.T) {
	blk := newPoolBlock(1, 300)
	a, _ := blk.alloc(100, 1)
	b, _ := blk.alloc(100, 1)
	c, _ := blk.alloc(100, 1)

	blk.release(a, 100)
	blk.release(c, 100)
	blk.release(b, 100)

	if len(blk.free) != 1 {
		t.Fatalf("free list has %d regions after releasing all, want 1 coalesced region", len(blk.free))
	}
	if blk.free[0].offset != 0 || blk.free[0].size != 300 {
		t.Errorf("coalesced region = %+v, want {offset:0 size:300}", blk.free[0])
	}
	if blk.used != 0 {
		t.Errorf("used = %d, want 0", blk.used)
	}

	// The fully-coalesced block should accept a fresh allocation of its
	// whole size again.
	if _, ok := blk.alloc(300, 1); !ok {
		t.Error("expected allocation of the full block size to succeed after coalescing")
	}
}
