// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import "testing"

func TestCapabilitySetEnableAndQuery(t *testing.T) {
	c := NewCapabilitySet()
	if c.Enabled(CapabilityRayTracing) {
		t.Error("expected a fresh CapabilitySet to report no capabilities enabled")
	}
	c.Enable(CapabilityRayTracing)
	if !c.Enabled(CapabilityRayTracing) {
		t.Error("expected CapabilityRayTracing to be enabled after Enable")
	}
	if c.Enabled(CapabilityMeshShading) {
		t.Error("enabling one capability should not enable another")
	}
}

func TestReferencesSwapchain(t *testing.T) {
	plain := &RenderTargetDescriptor{Colors: []AttachmentDescriptor{{Texture: &Texture{}}}}
	if plain.ReferencesSwapchain() {
		t.Error("expected a non-placeholder color target to not reference the swapchain")
	}

	withSwapchainColor := &RenderTargetDescriptor{
		Colors: []AttachmentDescriptor{{Texture: &Texture{IsSwapchainPlaceholder: true}}},
	}
	if !withSwapchainColor.ReferencesSwapchain() {
		t.Error("expected a swapchain-placeholder color attachment to be detected")
	}

	withSwapchainDepth := &RenderTargetDescriptor{
		DepthStencil: &AttachmentDescriptor{Texture: &Texture{IsSwapchainPlaceholder: true}},
	}
	if !withSwapchainDepth.ReferencesSwapchain() {
		t.Error("expected a swapchain-placeholder depth attachment to be detected")
	}
}
