// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import (
	"testing"

	"github.com/solstice-engine/gpucore/vk"
)

func TestDerivedUsageSampledOnly(t *testing.T) {
	usage, storageCapable := DerivedUsage(vk.FormatR8G8B8A8Unorm, 1, false, false)
	want := vk.ImageUsageSampled | vk.ImageUsageTransferDst | vk.ImageUsageStorage
	if usage != want {
		t.Errorf("usage = %v, want %v", usage, want)
	}
	if !storageCapable {
		t.Error("expected an uncompressed, non-sRGB format to be storage-capable")
	}
}

func TestDerivedUsageMipmappedAddsTransferSrc(t *testing.T) {
	usage, _ := DerivedUsage(vk.FormatR8G8B8A8Unorm, 4, false, false)
	if usage&vk.ImageUsageTransferSrc == 0 {
		t.Error("expected TransferSrc for a mip-mapped texture (mip-chain blits read from higher levels)")
	}
}

func TestDerivedUsageColorAttachment(t *testing.T) {
	usage, _ := DerivedUsage(vk.FormatR8G8B8A8Unorm, 1, true, false)
	if usage&vk.ImageUsageColorAttachment == 0 {
		t.Error("expected ColorAttachment for attachment=true, depth=false")
	}
	if usage&vk.ImageUsageDepthStencilAttachment != 0 {
		t.Error("did not expect DepthStencilAttachment for a color attachment")
	}
}

func TestDerivedUsageDepthAttachment(t *testing.T) {
	usage, _ := DerivedUsage(vk.FormatD32Sfloat, 1, true, true)
	if usage&vk.ImageUsageDepthStencilAttachment == 0 {
		t.Error("expected DepthStencilAttachment for attachment=true, depth=true")
	}
}

func TestDerivedUsageSRGBIsNotStorageCapable(t *testing.T) {
	usage, storageCapable := DerivedUsage(vk.FormatR8G8B8A8Srgb, 1, false, false)
	if storageCapable {
		t.Error("expected an sRGB format to be reported as not storage-capable")
	}
	if usage&vk.ImageUsageStorage != 0 {
		t.Error("did not expect the Storage usage bit on a format that is not storage-capable")
	}
}

func TestAspectFor(t *testing.T) {
	tests := []struct {
		format vk.Format
		want   Aspect
	}{
		{vk.FormatD32Sfloat, AspectDepth},
		{vk.FormatD24UnormS8Uint, AspectDepthStencil},
		{vk.FormatD32SfloatS8Uint, AspectDepthStencil},
		{vk.FormatR8G8B8A8Unorm, AspectColor},
	}
	for _, tt := range tests {
		if got := AspectFor(tt.format); got != tt.want {
			t.Errorf("AspectFor(%v) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestAspectVkMask(t *testing.T) {
	if AspectColor.VkMask() != vk.ImageAspectColor {
		t.Error("AspectColor mask mismatch")
	}
	if AspectDepth.VkMask() != vk.ImageAspectDepth {
		t.Error("AspectDepth mask mismatch")
	}
	want := vk.ImageAspectDepth | vk.ImageAspectStencil
	if AspectDepthStencil.VkMask() != want {
		t.Errorf("AspectDepthStencil mask = %v, want %v", AspectDepthStencil.VkMask(), want)
	}
}
