// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

func TestPlanForSampledTexture(t *testing.T) {
	p := planFor(gfxtypes.BindingSampledTexture)
	if p.layout != vk.ImageLayoutShaderReadOnlyOptimal {
		t.Errorf("layout = %v, want ShaderReadOnlyOptimal", p.layout)
	}
	if p.access != vk.AccessShaderRead {
		t.Errorf("access = %v, want AccessShaderRead", p.access)
	}
}

func TestPlanForStorageTextureAllowsReadAndWrite(t *testing.T) {
	p := planFor(gfxtypes.BindingStorageTexture)
	if p.layout != vk.ImageLayoutGeneral {
		t.Errorf("layout = %v, want General", p.layout)
	}
	if p.access&vk.AccessShaderWrite == 0 {
		t.Error("expected storage-texture barrier plan to include AccessShaderWrite")
	}
}

func TestPlanForSampledTextureArrayMatchesSingle(t *testing.T) {
	if planFor(gfxtypes.BindingSampledTextureArray) != planFor(gfxtypes.BindingSampledTexture) {
		t.Error("expected a sampled-texture array binding to use the same barrier plan as a single sampled texture")
	}
}

func TestTransitionTextureSkipsWhenLayoutUnchanged(t *testing.T) {
	tex := &gfxtypes.Texture{CurrentLayout: vk.ImageLayoutShaderReadOnlyOptimal}
	cl := &CommandList{}
	// No device/command buffer is wired; transitionTexture must return
	// before touching either when the layout already matches the target.
	cl.transitionTexture(tex, barrierPlan{layout: vk.ImageLayoutShaderReadOnlyOptimal})
	if tex.CurrentLayout != vk.ImageLayoutShaderReadOnlyOptimal {
		t.Error("layout should be untouched when already at the target")
	}
}

func TestTransitionTextureNilIsNoop(t *testing.T) {
	cl := &CommandList{}
	cl.transitionTexture(nil, barrierPlan{})
}
