// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import (
	"github.com/solstice-engine/gpucore/memory"
	"github.com/solstice-engine/gpucore/vk"
)

type TextureDimension uint8

const (
	TextureDimension2D TextureDimension = iota
	TextureDimension3D
	TextureDimensionCube
)

// Aspect is derived from Format at creation time.
type Aspect uint8

const (
	AspectColor Aspect = iota
	AspectDepth
	AspectDepthStencil
)

// SamplerFilters bundles the filter/wrap state a texture carries for the
// convenience factory path (createTexture with inline sampler state);
// standalone Sampler objects (§3) are still first-class and reusable.
type SamplerFilters struct {
	MagFilter, MinFilter vk.Filter
	MipmapMode           vk.SamplerMipmapMode
	WrapU, WrapV, WrapW  vk.SamplerAddressMode
}

// TextureDescriptor is the factory input for CreateTexture.
type TextureDescriptor struct {
	Dimension   TextureDimension
	Array       bool
	ArrayLayers uint32
	Extent      vk.Extent3D
	Format      vk.Format
	MipLevels   uint32
	Samples     vk.SampleCountFlagBits
	Filters     SamplerFilters
	DebugName   string
}

// Texture owns an image, its primary view, and the single mutable
// current-layout field every other layer reads (§3 invariant I1: all mips
// and layers always share one layout).
type Texture struct {
	Image       vk.Image
	View        vk.ImageView
	Descriptor  TextureDescriptor
	Aspect      Aspect
	Usage       vk.ImageUsageFlags
	StorageCapable bool

	// CurrentLayout is mutated exclusively by the command list recording
	// against this texture (§5: "concurrent rendering of the same texture
	// from two command lists is disallowed").
	CurrentLayout vk.ImageLayout

	Block *memory.Block

	// IsSwapchainPlaceholder marks the distinguished texture whose
	// image/view are patched every frame by the scheduler instead of being
	// owned (§3).
	IsSwapchainPlaceholder bool

	Destroyed bool
}

// DerivedUsage computes the image usage flags implied by Format capability
// and mip count, per §4.B.
func DerivedUsage(format vk.Format, mipLevels uint32, attachment bool, depth bool) (vk.ImageUsageFlags, bool) {
	usage := vk.ImageUsageSampled | vk.ImageUsageTransferDst
	storageCapable := !isCompressedOrSRGB(format)

	if mipLevels > 1 {
		// I4: mip generation via blit needs both transfer directions on
		// every level.
		usage |= vk.ImageUsageTransferSrc | vk.ImageUsageTransferDst
	}
	if attachment {
		if depth {
			usage |= vk.ImageUsageDepthStencilAttachment
		} else {
			usage |= vk.ImageUsageColorAttachment
		}
	}
	if storageCapable {
		usage |= vk.ImageUsageStorage
	}
	return usage, storageCapable
}

func isCompressedOrSRGB(f vk.Format) bool {
	switch f {
	case vk.FormatR8G8B8A8Srgb, vk.FormatB8G8R8A8Srgb, vk.FormatBC7UnormBlock, vk.FormatBC7SrgbBlock:
		return true
	default:
		return false
	}
}

func AspectFor(format vk.Format) Aspect {
	switch format {
	case vk.FormatD32Sfloat:
		return AspectDepth
	case vk.FormatD24UnormS8Uint, vk.FormatD32SfloatS8Uint:
		return AspectDepthStencil
	default:
		return AspectColor
	}
}

func (a Aspect) VkMask() vk.ImageAspectFlags {
	switch a {
	case AspectDepth:
		return vk.ImageAspectDepth
	case AspectDepthStencil:
		return vk.ImageAspectDepth | vk.ImageAspectStencil
	default:
		return vk.ImageAspectColor
	}
}
