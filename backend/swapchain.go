// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

// swapchainImage is one presentable image plus the view the render target
// rebinds against it every frame.
type swapchainImage struct {
	image vk.Image
	view  vk.ImageView
}

// swapchainState owns the live VkSwapchainKHR and its per-image views
// (§4.G). The placeholder texture referenced by render targets is patched
// to point at the acquired image each frame rather than recreated.
type swapchainState struct {
	surface      vk.SurfaceKHR
	handle       vk.SwapchainKHR
	format       vk.Format
	colorSpace   vk.ColorSpaceKHR
	extent       vk.Extent2D
	images       []swapchainImage
	placeholder  *gfxtypes.Texture
	currentIndex uint32
}

// pickSwapchainFormat prefers an HDR10 PQ 10-bit format, then an 8-bit
// sRGB format, falling back to whatever the surface reports first (§4.G).
func pickSwapchainFormat(formats []vk.SurfaceFormatKHR) vk.SurfaceFormatKHR {
	for _, f := range formats {
		if f.Format == vk.FormatA2B10G10R10UnormPack32 && f.ColorSpace == vk.ColorSpaceHdr10St2084EXT {
			return f
		}
	}
	for _, f := range formats {
		if (f.Format == vk.FormatB8G8R8A8Srgb || f.Format == vk.FormatR8G8B8A8Srgb) && f.ColorSpace == vk.ColorSpaceSrgbNonlinearKHR {
			return f
		}
	}
	return formats[0]
}

// pickPresentMode prefers mailbox (low-latency triple buffering) and falls
// back to FIFO, which every conformant implementation supports.
func pickPresentMode(modes []vk.PresentModeKHR) vk.PresentModeKHR {
	for _, m := range modes {
		if m == vk.PresentModeMailboxKHR {
			return m
		}
	}
	return vk.PresentModeFifoKHR
}

// pickBestSwapchainExtent resolves the surface's reported extent against
// the window's actual framebuffer size (§9 S1): when the surface leaves
// the extent undefined (reported as the uint32 max sentinel on both axes),
// the window size is used instead, clamped to the surface's bounds.
func pickBestSwapchainExtent(caps *vk.SurfaceCapabilitiesKHR, windowWidth, windowHeight uint32) vk.Extent2D {
	const undefined = 0xFFFFFFFF
	if caps.CurrentExtent.Width != undefined || caps.CurrentExtent.Height != undefined {
		return caps.CurrentExtent
	}
	clamp := func(v, lo, hi uint32) uint32 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return vk.Extent2D{
		Width:  clamp(windowWidth, caps.MinImageExtent.Width, caps.MaxImageExtent.Width),
		Height: clamp(windowHeight, caps.MinImageExtent.Height, caps.MaxImageExtent.Height),
	}
}

// CreateSwapchain builds the swapchain for surface, selecting format,
// present mode, and extent per §4.G, and wires the placeholder texture
// every swapchain-referencing render target attaches to.
func (d *Device) CreateSwapchain(surface vk.SurfaceKHR, windowWidth, windowHeight uint32) error {
	caps, res := d.cmds.GetPhysicalDeviceSurfaceCapabilitiesKHR(d.physicalDevice, surface)
	if res != vk.Success {
		return errs.Create("swapchain", fmt.Errorf("vkGetPhysicalDeviceSurfaceCapabilitiesKHR: %s", res))
	}
	formats, res := d.cmds.GetPhysicalDeviceSurfaceFormatsKHR(d.physicalDevice, surface)
	if res != vk.Success || len(formats) == 0 {
		return errs.Create("swapchain", fmt.Errorf("vkGetPhysicalDeviceSurfaceFormatsKHR: %s", res))
	}
	modes, res := d.cmds.GetPhysicalDeviceSurfacePresentModesKHR(d.physicalDevice, surface)
	if res != vk.Success || len(modes) == 0 {
		return errs.Create("swapchain", fmt.Errorf("vkGetPhysicalDeviceSurfacePresentModesKHR: %s", res))
	}

	chosenFormat := pickSwapchainFormat(formats)
	extent := pickBestSwapchainExtent(caps, windowWidth, windowHeight)
	if extent.Width == 0 || extent.Height == 0 {
		// Minimized window: caller must retry CreateSwapchain once the
		// framebuffer has a non-zero area again (§9 S1).
		return errs.OutOfDate("swapchain: zero-area framebuffer")
	}

	imageCount := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && imageCount > caps.MaxImageCount {
		imageCount = caps.MaxImageCount
	}

	handle, res := d.cmds.CreateSwapchainKHR(d.handle, &vk.SwapchainCreateInfoKHR{
		SType:            vk.StructureTypeSwapchainCreateInfoKHR,
		Surface:          surface,
		MinImageCount:    imageCount,
		ImageFormat:      chosenFormat.Format,
		ImageColorSpace:  chosenFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageColorAttachment | vk.ImageUsageTransferDst,
		CompositeAlpha:   vk.CompositeAlphaOpaqueKHR,
		PresentMode:      pickPresentMode(modes),
		Clipped:          true,
	})
	if res != vk.Success {
		return errs.Create("swapchain", fmt.Errorf("vkCreateSwapchainKHR: %s", res))
	}

	images, res := d.cmds.GetSwapchainImagesKHR(d.handle, handle)
	if res != vk.Success {
		d.cmds.DestroySwapchainKHR(d.handle, handle)
		return errs.Create("swapchain", fmt.Errorf("vkGetSwapchainImagesKHR: %s", res))
	}

	state := &swapchainState{
		surface:    surface,
		handle:     handle,
		format:     chosenFormat.Format,
		colorSpace: chosenFormat.ColorSpace,
		extent:     extent,
	}
	for _, img := range images {
		view, res := d.cmds.CreateImageView(d.handle, &vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    img,
			ViewType: vk.ImageViewType2D,
			Format:   chosenFormat.Format,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask: vk.ImageAspectColor,
				LevelCount: 1,
				LayerCount: 1,
			},
		})
		if res != vk.Success {
			state.destroy(d)
			return errs.Create("swapchain", fmt.Errorf("vkCreateImageView: %s", res))
		}
		state.images = append(state.images, swapchainImage{image: img, view: view})
	}

	state.placeholder = &gfxtypes.Texture{
		Descriptor:             gfxtypes.TextureDescriptor{Extent: vk.Extent3D{Width: extent.Width, Height: extent.Height, Depth: 1}, Format: chosenFormat.Format, MipLevels: 1},
		Aspect:                 gfxtypes.AspectColor,
		CurrentLayout:          vk.ImageLayoutUndefined,
		IsSwapchainPlaceholder: true,
	}
	d.scheduler.swapchain = state
	return nil
}

func (s *swapchainState) destroy(d *Device) {
	if s == nil {
		return
	}
	for _, img := range s.images {
		d.cmds.DestroyImageView(d.handle, img.view)
	}
	if s.handle != 0 {
		d.cmds.DestroySwapchainKHR(d.handle, s.handle)
	}
}

// AcquireFrame waits on the frame-in-flight fence, acquires the next
// swapchain image, and patches the placeholder texture to reference it
// (§4.G steps 1-3). ErrSwapchainOutOfDate propagates so callers can
// recreate the swapchain. A suboptimal acquire is not reported: the frame
// proceeds with the acquired image, and ErrSwapchainSuboptimal comes only
// from SubmitAndPresent when present reports it.
func (d *Device) AcquireFrame() (*frameContext, error) {
	s := d.scheduler
	slot := s.frames[s.frameIndex]

	if res := d.cmds.WaitForFences(d.handle, []vk.Fence{slot.fence}, true, ^uint64(0)); res != vk.Success {
		return nil, errs.DeviceLost("vkWaitForFences", fmt.Errorf("result %s", res))
	}
	d.drainDeletes(slot)
	if res := d.cmds.ResetFences(d.handle, []vk.Fence{slot.fence}); res != vk.Success {
		return nil, errs.DeviceLost("vkResetFences", fmt.Errorf("result %s", res))
	}

	index, res := d.cmds.AcquireNextImageKHR(d.handle, s.swapchain.handle, ^uint64(0), slot.imageAvailable, 0)
	switch res {
	case vk.Success:
	case vk.SuboptimalKHR:
		// fall through: still presentable this frame, caller decides when
		// to rebuild (§7 Recoverable).
	case vk.ErrorOutOfDateKHR:
		return nil, errs.OutOfDate("vkAcquireNextImageKHR")
	default:
		return nil, errs.Create("vkAcquireNextImageKHR", fmt.Errorf("result %s", res))
	}

	s.swapchain.currentIndex = index
	s.swapchain.placeholder.Image = s.swapchain.images[index].image
	s.swapchain.placeholder.View = s.swapchain.images[index].view
	s.swapchain.placeholder.CurrentLayout = vk.ImageLayoutUndefined
	return slot, nil
}

// SubmitAndPresent implements the remaining §4.G steps: submit the
// frame's command buffer signaling its fence, then present, advancing the
// frame-ring index regardless of present result so progress never stalls
// on a single bad frame.
func (d *Device) SubmitAndPresent(slot *frameContext, renderFinished vk.Semaphore) error {
	s := d.scheduler
	defer func() {
		s.frameIndex = (s.frameIndex + 1) % framesInFlight
		s.frameCount++
	}()

	waitStage := vk.PipelineStageColorAttachmentOutput
	res := d.cmds.QueueSubmit(d.graphicsQueue, []vk.SubmitInfo{{
		SType:             vk.StructureTypeSubmitInfo,
		WaitSemaphores:    []vk.Semaphore{slot.imageAvailable},
		WaitDstStageMask:  []vk.PipelineStageFlags{waitStage},
		CommandBuffers:    []vk.CommandBuffer{slot.commandBuffer},
		SignalSemaphores:  []vk.Semaphore{renderFinished},
	}}, slot.fence)
	if res != vk.Success {
		return errs.DeviceLost("vkQueueSubmit", fmt.Errorf("result %s", res))
	}

	presentRes := d.cmds.QueuePresentKHR(d.presentQueue, &vk.PresentInfoKHR{
		SType:          vk.StructureTypePresentInfoKHR,
		WaitSemaphores: []vk.Semaphore{renderFinished},
		Swapchains:     []vk.SwapchainKHR{s.swapchain.handle},
		ImageIndices:   []uint32{s.swapchain.currentIndex},
	})
	switch presentRes {
	case vk.Success:
		return nil
	case vk.SuboptimalKHR:
		return errs.Suboptimal("vkQueuePresentKHR")
	case vk.ErrorOutOfDateKHR:
		return errs.OutOfDate("vkQueuePresentKHR")
	default:
		return errs.Create("vkQueuePresentKHR", fmt.Errorf("result %s", presentRes))
	}
}
