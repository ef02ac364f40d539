// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

func TestImageTypeFor(t *testing.T) {
	tests := []struct {
		dim      gfxtypes.TextureDimension
		wantImg  vk.ImageType
		wantView vk.ImageViewType
	}{
		{gfxtypes.TextureDimension2D, vk.ImageType2D, vk.ImageViewType2D},
		{gfxtypes.TextureDimension3D, vk.ImageType3D, vk.ImageViewType3D},
		{gfxtypes.TextureDimensionCube, vk.ImageType2D, vk.ImageViewTypeCube},
	}
	for _, tt := range tests {
		img, view := imageTypeFor(tt.dim)
		if img != tt.wantImg || view != tt.wantView {
			t.Errorf("imageTypeFor(%v) = (%v, %v), want (%v, %v)", tt.dim, img, view, tt.wantImg, tt.wantView)
		}
	}
}

func TestMax1(t *testing.T) {
	if got := max1(1, 2); got != 2 {
		t.Errorf("max1(1, 2) = %d, want 2", got)
	}
	if got := max1(5, 3); got != 5 {
		t.Errorf("max1(5, 3) = %d, want 5", got)
	}
	if got := max1(0, 0); got != 0 {
		t.Errorf("max1(0, 0) = %d, want 0", got)
	}
}
