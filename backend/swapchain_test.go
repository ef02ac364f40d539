// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/vk"
)

func TestPickSwapchainFormatPrefersHDR10(t *testing.T) {
	formats := []vk.SurfaceFormatKHR{
		{Format: vk.FormatB8G8R8A8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinearKHR},
		{Format: vk.FormatA2B10G10R10UnormPack32, ColorSpace: vk.ColorSpaceHdr10St2084EXT},
	}
	got := pickSwapchainFormat(formats)
	if got.Format != vk.FormatA2B10G10R10UnormPack32 || got.ColorSpace != vk.ColorSpaceHdr10St2084EXT {
		t.Errorf("pickSwapchainFormat() = %+v, want the HDR10 PQ format", got)
	}
}

func TestPickSwapchainFormatFallsBackToSRGB(t *testing.T) {
	formats := []vk.SurfaceFormatKHR{
		{Format: vk.FormatR8G8B8A8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinearKHR},
		{Format: vk.FormatB8G8R8A8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinearKHR},
	}
	got := pickSwapchainFormat(formats)
	if got.Format != vk.FormatB8G8R8A8Srgb {
		t.Errorf("pickSwapchainFormat() = %+v, want sRGB BGRA8", got)
	}
}

func TestPickSwapchainFormatFallsBackToFirst(t *testing.T) {
	only := vk.SurfaceFormatKHR{Format: vk.FormatR8G8B8A8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinearKHR}
	got := pickSwapchainFormat([]vk.SurfaceFormatKHR{only})
	if got != only {
		t.Errorf("pickSwapchainFormat() = %+v, want the sole reported format %+v", got, only)
	}
}

func TestPickPresentModePrefersMailbox(t *testing.T) {
	modes := []vk.PresentModeKHR{vk.PresentModeFifoKHR, vk.PresentModeMailboxKHR}
	if got := pickPresentMode(modes); got != vk.PresentModeMailboxKHR {
		t.Errorf("pickPresentMode() = %v, want mailbox", got)
	}
}

func TestPickPresentModeFallsBackToFIFO(t *testing.T) {
	modes := []vk.PresentModeKHR{vk.PresentModeImmediateKHR}
	if got := pickPresentMode(modes); got != vk.PresentModeFifoKHR {
		t.Errorf("pickPresentMode() = %v, want FIFO fallback", got)
	}
}

func TestPickBestSwapchainExtentUsesCurrentExtentWhenDefined(t *testing.T) {
	caps := &vk.SurfaceCapabilitiesKHR{CurrentExtent: vk.Extent2D{Width: 1920, Height: 1080}}
	got := pickBestSwapchainExtent(caps, 800, 600)
	if got.Width != 1920 || got.Height != 1080 {
		t.Errorf("pickBestSwapchainExtent() = %+v, want the surface's reported current extent", got)
	}
}

func TestPickBestSwapchainExtentClampsWindowSizeWhenUndefined(t *testing.T) {
	caps := &vk.SurfaceCapabilitiesKHR{
		CurrentExtent:  vk.Extent2D{Width: 0xFFFFFFFF, Height: 0xFFFFFFFF},
		MinImageExtent: vk.Extent2D{Width: 64, Height: 64},
		MaxImageExtent: vk.Extent2D{Width: 4096, Height: 4096},
	}

	got := pickBestSwapchainExtent(caps, 800, 600)
	if got.Width != 800 || got.Height != 600 {
		t.Errorf("pickBestSwapchainExtent() = %+v, want the window size within bounds", got)
	}

	got = pickBestSwapchainExtent(caps, 8192, 10)
	if got.Width != 4096 || got.Height != 64 {
		t.Errorf("pickBestSwapchainExtent() = %+v, want clamping to [min,max]", got)
	}
}
