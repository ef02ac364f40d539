// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"testing"

	"github.com/solstice-engine/gpucore/vk"
)

func testProperties() DeviceMemoryProperties {
	return DeviceMemoryProperties{
		MemoryTypes: []MemoryType{
			{PropertyFlags: vk.MemoryPropertyDeviceLocal, HeapIndex: 0},
			{PropertyFlags: vk.MemoryPropertyHostVisible | vk.MemoryPropertyHostCoherent, HeapIndex: 1},
			{PropertyFlags: vk.MemoryPropertyHostVisible | vk.MemoryPropertyHostCoherent | vk.MemoryPropertyHostCached, HeapIndex: 1},
		},
		MemoryHeaps: []MemoryHeap{
			{Size: 8 << 30},
			{Size: 256 << 20},
		},
	}
}

func TestTypeSelectorSelect(t *testing.T) {
	sel := NewTypeSelector(testProperties())

	tests := []struct {
		name   string
		req    AllocationRequest
		want   uint32
		wantOK bool
	}{
		{
			name:   "device local prefers type 0",
			req:    AllocationRequest{MemoryTypeBits: 0b111, Usage: UsageFastDeviceAccess},
			want:   0,
			wantOK: true,
		},
		{
			name:   "upload prefers coherent host-visible",
			req:    AllocationRequest{MemoryTypeBits: 0b111, Usage: UsageUpload},
			want:   1,
			wantOK: true,
		},
		{
			name:   "download prefers cached host-visible",
			req:    AllocationRequest{MemoryTypeBits: 0b111, Usage: UsageDownload},
			want:   2,
			wantOK: true,
		},
		{
			name:   "type bits exclude every candidate",
			req:    AllocationRequest{MemoryTypeBits: 0b000, Usage: UsageFastDeviceAccess},
			wantOK: false,
		},
		{
			name:   "host access falls back without a coherent preference",
			req:    AllocationRequest{MemoryTypeBits: 0b010, Usage: UsageHostAccess},
			want:   1,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sel.Select(tt.req)
			if ok != tt.wantOK {
				t.Fatalf("Select() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("Select() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTypeSelectorHeapSize(t *testing.T) {
	sel := NewTypeSelector(testProperties())
	if got := sel.HeapSize(0); got != 8<<30 {
		t.Errorf("HeapSize(0) = %d, want %d", got, 8<<30)
	}
	if got := sel.HeapSize(99); got != 0 {
		t.Errorf("HeapSize(out of range) = %d, want 0", got)
	}
}

func TestTypeSelectorIsDeviceLocalAndHostVisible(t *testing.T) {
	sel := NewTypeSelector(testProperties())
	if !sel.IsDeviceLocal(0) {
		t.Error("type 0 expected device-local")
	}
	if sel.IsDeviceLocal(1) {
		t.Error("type 1 not expected device-local")
	}
	if !sel.IsHostVisible(1) {
		t.Error("type 1 expected host-visible")
	}
}
