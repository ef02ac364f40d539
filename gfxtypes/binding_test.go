// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import (
	"testing"

	"github.com/solstice-engine/gpucore/vk"
)

func TestDescriptorType(t *testing.T) {
	tests := []struct {
		kind BindingKind
		want vk.DescriptorType
	}{
		{BindingUniformBuffer, vk.DescriptorTypeUniformBuffer},
		{BindingStorageBuffer, vk.DescriptorTypeStorageBuffer},
		{BindingStorageBufferArray, vk.DescriptorTypeStorageBuffer},
		{BindingSampledTexture, vk.DescriptorTypeCombinedImageSampler},
		{BindingSampledTextureArray, vk.DescriptorTypeCombinedImageSampler},
		{BindingStorageTexture, vk.DescriptorTypeStorageImage},
		{BindingAccelerationStructure, vk.DescriptorTypeAccelerationStructureKHR},
	}
	for _, tt := range tests {
		b := ShaderBinding{Kind: tt.kind}
		if got := b.DescriptorType(); got != tt.want {
			t.Errorf("DescriptorType(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestIsUpdateAfterBind(t *testing.T) {
	if !(ShaderBinding{Kind: BindingSampledTextureArray}).IsUpdateAfterBind() {
		t.Error("expected a sampled-texture array to require update-after-bind")
	}
	if (ShaderBinding{Kind: BindingUniformBuffer}).IsUpdateAfterBind() {
		t.Error("did not expect a uniform buffer to require update-after-bind")
	}
}

func TestPoolSizesAccumulatesByType(t *testing.T) {
	bindings := []ShaderBinding{
		{Kind: BindingUniformBuffer},
		{Kind: BindingUniformBuffer},
		{Kind: BindingStorageBuffer},
		{Kind: BindingSampledTextureArray, Count: 16},
	}

	sizes := PoolSizes(bindings)
	got := make(map[vk.DescriptorType]uint32, len(sizes))
	for _, s := range sizes {
		got[s.Type] = s.DescriptorCount
	}

	if got[vk.DescriptorTypeUniformBuffer] != 2 {
		t.Errorf("uniform buffer count = %d, want 2", got[vk.DescriptorTypeUniformBuffer])
	}
	if got[vk.DescriptorTypeStorageBuffer] != 1 {
		t.Errorf("storage buffer count = %d, want 1", got[vk.DescriptorTypeStorageBuffer])
	}
	if got[vk.DescriptorTypeCombinedImageSampler] != 16 {
		t.Errorf("combined image sampler count = %d, want 16 (array Count, not 1 per binding)", got[vk.DescriptorTypeCombinedImageSampler])
	}
}

func TestPoolSizesDefaultsZeroCountToOne(t *testing.T) {
	sizes := PoolSizes([]ShaderBinding{{Kind: BindingStorageTexture, Count: 0}})
	if len(sizes) != 1 || sizes[0].DescriptorCount != 1 {
		t.Fatalf("PoolSizes with Count=0 = %+v, want one entry with DescriptorCount=1", sizes)
	}
}
