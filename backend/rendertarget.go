// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"unsafe"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

func attachmentFormat(a gfxtypes.AttachmentDescriptor) vk.Format {
	if a.Texture == nil {
		return vk.FormatUndefined
	}
	return a.Texture.Descriptor.Format
}

func attachmentSamples(a gfxtypes.AttachmentDescriptor) vk.SampleCountFlagBits {
	if a.Texture == nil || a.Texture.Descriptor.Samples == 0 {
		return vk.SampleCount1
	}
	return a.Texture.Descriptor.Samples
}

// CreateRenderTarget implements §4.B's render-target factory: one render
// pass with a single subpass covering every color attachment plus an
// optional depth/stencil attachment, and one framebuffer. When the
// descriptor references the swapchain placeholder the framebuffer is built
// imageless (VK_KHR_imageless_framebuffer) so AcquireFrame can rebind the
// live swapchain image view each frame without rebuilding the framebuffer.
func (d *Device) CreateRenderTarget(desc gfxtypes.RenderTargetDescriptor) (*gfxtypes.RenderTarget, error) {
	imageless := desc.ReferencesSwapchain()

	attachments := make([]vk.AttachmentDescription, 0, len(desc.Colors)+1)
	colorRefs := make([]vk.AttachmentReference, 0, len(desc.Colors))
	var depthRef *vk.AttachmentReference

	for _, c := range desc.Colors {
		idx := uint32(len(attachments))
		finalLayout := vk.ImageLayoutColorAttachmentOptimal
		if c.Texture != nil && c.Texture.IsSwapchainPlaceholder {
			finalLayout = vk.ImageLayoutPresentSrcKHR
		}
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         attachmentFormat(c),
			Samples:        attachmentSamples(c),
			LoadOp:         c.LoadOp,
			StoreOp:        c.StoreOp,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  vk.ImageLayoutUndefined,
			FinalLayout:    finalLayout,
		})
		colorRefs = append(colorRefs, vk.AttachmentReference{Attachment: idx, Layout: vk.ImageLayoutColorAttachmentOptimal})
	}
	if desc.DepthStencil != nil {
		idx := uint32(len(attachments))
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         attachmentFormat(*desc.DepthStencil),
			Samples:        attachmentSamples(*desc.DepthStencil),
			LoadOp:         desc.DepthStencil.LoadOp,
			StoreOp:        desc.DepthStencil.StoreOp,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  vk.ImageLayoutUndefined,
			FinalLayout:    vk.ImageLayoutDepthStencilAttachmentOptimal,
		})
		depthRef = &vk.AttachmentReference{Attachment: idx, Layout: vk.ImageLayoutDepthStencilAttachmentOptimal}
	}

	subpass := vk.SubpassDescription{
		PipelineBindPoint:      vk.PipelineBindPointGraphics,
		ColorAttachments:       colorRefs,
		DepthStencilAttachment: depthRef,
	}
	dependency := vk.SubpassDependency{
		SrcSubpass:    vk.SubpassExternal,
		DstSubpass:    0,
		SrcStageMask:  vk.PipelineStageColorAttachmentOutput | vk.PipelineStageEarlyFragmentTests,
		DstStageMask:  vk.PipelineStageColorAttachmentOutput | vk.PipelineStageEarlyFragmentTests,
		SrcAccessMask: 0,
		DstAccessMask: vk.AccessColorAttachmentWrite | vk.AccessDepthStencilAttachmentWrite,
	}

	renderPass, res := d.cmds.CreateRenderPass(d.handle, &vk.RenderPassCreateInfo{
		SType:        vk.StructureTypeRenderPassCreateInfo,
		Attachments:  attachments,
		Subpasses:    []vk.SubpassDescription{subpass},
		Dependencies: []vk.SubpassDependency{dependency},
	})
	if res != vk.Success {
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateRenderPass: %s", res))
	}

	fbInfo := &vk.FramebufferCreateInfo{
		SType:      vk.StructureTypeFramebufferCreateInfo,
		RenderPass: renderPass,
		Width:      desc.Width,
		Height:     desc.Height,
		Layers:     1,
	}

	var attachInfos []vk.FramebufferAttachmentImageInfo
	if imageless {
		for i, a := range attachments {
			usage := vk.ImageUsageColorAttachment
			if desc.DepthStencil != nil && i == len(attachments)-1 {
				usage = vk.ImageUsageDepthStencilAttachment
			}
			attachInfos = append(attachInfos, vk.FramebufferAttachmentImageInfo{
				SType:       vk.StructureTypeFramebufferAttachmentImageInfo,
				Usage:       usage,
				Width:       desc.Width,
				Height:      desc.Height,
				LayerCount:  1,
				ViewFormats: []vk.Format{a.Format},
			})
		}
		chain := vk.FramebufferAttachmentsCreateInfo{
			SType:       vk.StructureTypeFramebufferAttachmentsCreateInfo,
			Attachments: attachInfos,
		}
		fbInfo.Flags = vk.FramebufferCreateImageless
		fbInfo.PNext = uintptr(unsafe.Pointer(&chain))
	} else {
		views := make([]vk.ImageView, 0, len(desc.Colors)+1)
		for _, c := range desc.Colors {
			views = append(views, c.Texture.View)
		}
		if desc.DepthStencil != nil {
			views = append(views, desc.DepthStencil.Texture.View)
		}
		fbInfo.Attachments = views
	}

	framebuffer, res := d.cmds.CreateFramebuffer(d.handle, fbInfo)
	if res != vk.Success {
		d.cmds.DestroyRenderPass(d.handle, renderPass)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateFramebuffer: %s", res))
	}

	rt := &gfxtypes.RenderTarget{
		RenderPass:  renderPass,
		Framebuffer: framebuffer,
		Descriptor:  desc,
		Imageless:   imageless,
	}
	d.setDebugName(uint64(renderPass), objectTypeRenderPass, desc.DebugName)
	d.setDebugName(uint64(framebuffer), objectTypeFramebuffer, desc.DebugName)
	return rt, nil
}

// DestroyRenderTarget enqueues deferred deletes for the framebuffer and
// render pass (§3 P2: teardown waits for in-flight frames).
func (d *Device) DestroyRenderTarget(rt *gfxtypes.RenderTarget) {
	if rt.Destroyed {
		return
	}
	rt.Destroyed = true
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindFramebuffer, handle: uint64(rt.Framebuffer)})
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindRenderPass, handle: uint64(rt.RenderPass)})
}
