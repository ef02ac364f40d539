// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import "github.com/solstice-engine/gpucore/vk"

// AttachmentDescriptor names one color or depth/stencil slot of a render
// target and its load/store behavior for the frame.
type AttachmentDescriptor struct {
	Texture  *Texture
	LoadOp   vk.AttachmentLoadOp
	StoreOp  vk.AttachmentStoreOp
	ClearColor [4]float32
	ClearDepth float32
	ClearStencil uint32
}

// RenderTargetDescriptor is the factory input for CreateRenderTarget: up to
// eight color attachments plus an optional depth/stencil attachment.
type RenderTargetDescriptor struct {
	Colors       []AttachmentDescriptor
	DepthStencil *AttachmentDescriptor
	Width, Height uint32
	DebugName    string
}

// RenderTarget owns a VkRenderPass/VkFramebuffer pair. When any attachment is
// the swapchain placeholder texture the framebuffer is created with
// VK_KHR_imageless_framebuffer so the scheduler can rebind the live
// swapchain image each frame without recreating the framebuffer object.
type RenderTarget struct {
	RenderPass  vk.RenderPass
	Framebuffer vk.Framebuffer
	Descriptor  RenderTargetDescriptor
	Imageless   bool
	Destroyed   bool
}

// ReferencesSwapchain reports whether any attachment is the swapchain
// placeholder, which forces Imageless framebuffers and per-frame rebuild of
// the attachment image-view list.
func (d *RenderTargetDescriptor) ReferencesSwapchain() bool {
	for _, c := range d.Colors {
		if c.Texture != nil && c.Texture.IsSwapchainPlaceholder {
			return true
		}
	}
	if d.DepthStencil != nil && d.DepthStencil.Texture != nil && d.DepthStencil.Texture.IsSwapchainPlaceholder {
		return true
	}
	return false
}
