// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/memory"
	"github.com/solstice-engine/gpucore/vk"
)

// imageTilingOptimal has no named constant in the wrapped enum surface
// since Tiling is a raw uint32 field; VK_IMAGE_TILING_OPTIMAL is 0.
const imageTilingOptimal uint32 = 0

func imageTypeFor(dim gfxtypes.TextureDimension) (vk.ImageType, vk.ImageViewType) {
	switch dim {
	case gfxtypes.TextureDimension3D:
		return vk.ImageType3D, vk.ImageViewType3D
	case gfxtypes.TextureDimensionCube:
		return vk.ImageType2D, vk.ImageViewTypeCube
	default:
		return vk.ImageType2D, vk.ImageViewType2D
	}
}

// CreateTexture implements §4.B's texture factory: usage flags are
// derived from format capability and mip count rather than taken from the
// caller, per gfxtypes.DerivedUsage.
func (d *Device) CreateTexture(desc gfxtypes.TextureDescriptor, attachment, depth bool) (*gfxtypes.Texture, error) {
	usage, storageCapable := gfxtypes.DerivedUsage(desc.Format, desc.MipLevels, attachment, depth)
	imgType, viewType := imageTypeFor(desc.Dimension)
	arrayLayers := desc.ArrayLayers
	if arrayLayers == 0 {
		arrayLayers = 1
	}
	if desc.Dimension == gfxtypes.TextureDimensionCube {
		arrayLayers = 6 * max1(arrayLayers/6, 1)
		if arrayLayers == 0 {
			arrayLayers = 6
		}
	}
	samples := desc.Samples
	if samples == 0 {
		samples = vk.SampleCount1
	}
	mipLevels := desc.MipLevels
	if mipLevels == 0 {
		mipLevels = 1
	}

	image, res := d.cmds.CreateImage(d.handle, &vk.ImageCreateInfo{
		SType:       vk.StructureTypeImageCreateInfo,
		ImageType:   imgType,
		Format:      desc.Format,
		Extent:      desc.Extent,
		MipLevels:   mipLevels,
		ArrayLayers: arrayLayers,
		Samples:     samples,
		Tiling:      imageTilingOptimal,
		Usage:       usage,
		SharingMode: vk.SharingModeExclusive,
	})
	if res != vk.Success {
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateImage: %s", res))
	}

	reqs := d.cmds.GetImageMemoryRequirements(d.handle, image)
	block, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           reqs.Size,
		Alignment:      reqs.Alignment,
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: reqs.MemoryTypeBits,
	})
	if err != nil {
		d.cmds.DestroyImage(d.handle, image)
		return nil, errs.Create(desc.DebugName, err)
	}
	if res := d.cmds.BindImageMemory(d.handle, image, block.Memory, block.Offset); res != vk.Success {
		d.allocator.Free(block)
		d.cmds.DestroyImage(d.handle, image)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkBindImageMemory: %s", res))
	}

	aspect := gfxtypes.AspectFor(desc.Format)
	view, res := d.cmds.CreateImageView(d.handle, &vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    image,
		ViewType: viewType,
		Format:   desc.Format,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     aspect.VkMask(),
			LevelCount:     mipLevels,
			LayerCount:     arrayLayers,
		},
	})
	if res != vk.Success {
		d.allocator.Free(block)
		d.cmds.DestroyImage(d.handle, image)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateImageView: %s", res))
	}

	tex := &gfxtypes.Texture{
		Image:          image,
		View:           view,
		Descriptor:     desc,
		Aspect:         aspect,
		Usage:          usage,
		StorageCapable: storageCapable,
		CurrentLayout:  vk.ImageLayoutUndefined,
		Block:          block,
	}
	d.setDebugName(uint64(image), objectTypeImage, desc.DebugName)
	d.setDebugName(uint64(view), objectTypeImageView, desc.DebugName)
	return tex, nil
}

func max1(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// CreateMipView creates an owned, single-mip image view for storage-image
// binding of a non-zero base mip (§4.E); the caller is responsible for
// destroying it via DestroyMipView once the binding set that captured it
// is destroyed.
func (d *Device) CreateMipView(tex *gfxtypes.Texture, mip uint32) (vk.ImageView, error) {
	view, res := d.cmds.CreateImageView(d.handle, &vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    tex.Image,
		ViewType: vk.ImageViewType2D,
		Format:   tex.Descriptor.Format,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:   tex.Aspect.VkMask(),
			BaseMipLevel: mip,
			LevelCount:   1,
			LayerCount:   1,
		},
	})
	if res != vk.Success {
		return 0, errs.Create("mip-view", fmt.Errorf("vkCreateImageView: %s", res))
	}
	return view, nil
}

func (d *Device) DestroyMipView(view vk.ImageView) {
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindImageView, handle: uint64(view)})
}

// DestroyTexture enqueues deferred deletes for the view, image, and memory
// block (§4.B, §3 P2). The swapchain placeholder texture is never passed
// here; its image/view are owned by the swapchain.
func (d *Device) DestroyTexture(tex *gfxtypes.Texture) {
	if tex.Destroyed || tex.IsSwapchainPlaceholder {
		return
	}
	tex.Destroyed = true
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindImageView, handle: uint64(tex.View)})
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindImage, handle: uint64(tex.Image), block: tex.Block})
}
