// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/memory"
	"github.com/solstice-engine/gpucore/vk"
)

func TestUsageBitsForVertexBuffer(t *testing.T) {
	d := &Device{capabilities: gfxtypes.NewCapabilitySet()}
	bits := d.usageBitsFor(gfxtypes.BufferUsageVertex, false)
	if bits&vk.BufferUsageVertexBuffer == 0 {
		t.Error("expected the vertex-buffer usage bit to be set")
	}
}

func TestUsageBitsForAddsStorageWhenUsableAsStorage(t *testing.T) {
	d := &Device{capabilities: gfxtypes.NewCapabilitySet()}
	withoutStorage := d.usageBitsFor(gfxtypes.BufferUsageUniform, false)
	withStorage := d.usageBitsFor(gfxtypes.BufferUsageUniform, true)
	if withoutStorage == withStorage {
		t.Error("expected usableAsStorage=true to add bits beyond the base uniform usage")
	}
}

func TestUsageBitsForDebugModeAddsTransferBits(t *testing.T) {
	plain := (&Device{capabilities: gfxtypes.NewCapabilitySet(), debugMode: false}).usageBitsFor(gfxtypes.BufferUsageStorage, false)
	debug := (&Device{capabilities: gfxtypes.NewCapabilitySet(), debugMode: true}).usageBitsFor(gfxtypes.BufferUsageStorage, false)
	if plain == debug {
		t.Error("expected debug mode to add transfer src/dst bits")
	}
}

func TestMemoryUsageFor(t *testing.T) {
	tests := []struct {
		residence gfxtypes.MemoryResidence
		want      memory.UsageFlags
	}{
		{gfxtypes.ResidenceHostVisibleMapped, memory.UsageUpload | memory.UsageHostAccess},
		{gfxtypes.ResidenceDeviceLocalHostVisible, memory.UsageFastDeviceAccess | memory.UsageHostAccess},
		{gfxtypes.ResidenceReadback, memory.UsageDownload | memory.UsageHostAccess},
		{gfxtypes.ResidenceDeviceLocal, memory.UsageFastDeviceAccess},
	}
	for _, tt := range tests {
		if got := memoryUsageFor(tt.residence); got != tt.want {
			t.Errorf("memoryUsageFor(%v) = %v, want %v", tt.residence, got, tt.want)
		}
	}
}
