// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import "github.com/solstice-engine/gpucore/vk"

// BindingKind discriminates the ShaderBinding tagged union, mirroring the
// descriptor types a binding set can hold.
type BindingKind uint8

const (
	BindingUniformBuffer BindingKind = iota
	BindingStorageBuffer
	BindingStorageBufferArray
	BindingSampledTexture
	BindingSampledTextureArray
	BindingStorageTexture // storage image for compute write, bound through the texture's own view
	BindingAccelerationStructure
)

// ShaderBinding is a tagged union over the resource kinds a binding set slot
// can hold, keyed by (set, binding) as derived by shader reflection.
type ShaderBinding struct {
	Kind    BindingKind
	Set     uint32
	Binding uint32
	Stages  vk.ShaderStageFlags

	// Exactly one of the following is populated, matching Kind.
	Buffer        *Buffer
	BufferArray   []*Buffer
	Texture       *Texture
	TextureArray  []*Texture
	StorageMip    uint32 // mip level for BindingStorageTexture; not applied by CreateBindingSet, which binds Texture.View
	AccelStruct   *AccelerationStructure

	// Count supports the update-after-bind variable-count arrays (sampled
	// texture arrays sized for bindless-style indexing).
	Count uint32
}

// DescriptorType maps this binding's Kind to its VkDescriptorType.
func (b ShaderBinding) DescriptorType() vk.DescriptorType {
	return b.descriptorType()
}

func (b ShaderBinding) descriptorType() vk.DescriptorType {
	switch b.Kind {
	case BindingUniformBuffer:
		return vk.DescriptorTypeUniformBuffer
	case BindingStorageBuffer, BindingStorageBufferArray:
		return vk.DescriptorTypeStorageBuffer
	case BindingSampledTexture, BindingSampledTextureArray:
		return vk.DescriptorTypeCombinedImageSampler
	case BindingStorageTexture:
		return vk.DescriptorTypeStorageImage
	case BindingAccelerationStructure:
		return vk.DescriptorTypeAccelerationStructureKHR
	default:
		return vk.DescriptorTypeUniformBuffer
	}
}

// IsUpdateAfterBind reports whether this binding needs the
// VK_DESCRIPTOR_BINDING_UPDATE_AFTER_BIND_BIT/VARIABLE_DESCRIPTOR_COUNT_BIT
// flags, required for sampled-texture arrays whose population changes after
// the set is allocated.
func (b ShaderBinding) IsUpdateAfterBind() bool {
	return b.Kind == BindingSampledTextureArray
}

// BindingSetDescriptor is the factory input for CreateBindingSet.
type BindingSetDescriptor struct {
	Bindings  []ShaderBinding
	DebugName string
}

// BindingSet owns a single VkDescriptorPool sized exactly for its own
// bindings (§4.E: one pool per binding set, not a shared pool), the derived
// VkDescriptorSetLayout, and the allocated VkDescriptorSet.
type BindingSet struct {
	Pool      vk.DescriptorPool
	Layout    vk.DescriptorSetLayout
	Set       vk.DescriptorSet
	Descriptor BindingSetDescriptor
	Destroyed bool
}

// PoolSizes accumulates the VkDescriptorPoolSize list this set's pool must
// be created with, one entry per distinct descriptor type, counting array
// bindings by their Count rather than as a single descriptor.
func PoolSizes(bindings []ShaderBinding) []vk.DescriptorPoolSize {
	counts := make(map[vk.DescriptorType]uint32)
	for _, b := range bindings {
		n := b.Count
		if n == 0 {
			n = 1
		}
		counts[b.descriptorType()] += n
	}
	sizes := make([]vk.DescriptorPoolSize, 0, len(counts))
	for t, n := range counts {
		sizes = append(sizes, vk.DescriptorPoolSize{Type: t, DescriptorCount: n})
	}
	return sizes
}
