// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import "github.com/solstice-engine/gpucore/vk"

// SamplerDescriptor is the factory input for CreateSampler. Standalone
// samplers let multiple textures share one VkSampler object, distinct from
// the inline SamplerFilters a texture carries for its default view.
type SamplerDescriptor struct {
	Filters     SamplerFilters
	MaxAnisotropy float32
	CompareEnable bool
	CompareOp   vk.CompareOp
	MinLod, MaxLod float32
	DebugName   string
}

type Sampler struct {
	Handle     vk.Sampler
	Descriptor SamplerDescriptor
	Destroyed  bool
}
