// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import "github.com/solstice-engine/gpucore/vk"

// PushConstantRange names a push-constant byte range and the stages that
// read it, one range per reflected stage that declares push constants
// (§4.C: reflection fails fast if two stages give a same-named member
// different offsets; ranges are not merged and their sizes not compared).
type PushConstantRange struct {
	Offset uint32
	Size   uint32
	Stages vk.ShaderStageFlags
}

// NamedUniform maps a shader's named uniform/push-constant field to its byte
// offset, derived by reflection so render-graph code can write by name
// instead of tracking raw offsets.
type NamedUniform struct {
	Name   string
	Offset uint32
	Size   uint32
}

// ShaderStage is one compiled shader module plus its entry point.
type ShaderStage struct {
	Module     vk.ShaderModule
	Stage      vk.ShaderStageFlags
	EntryPoint string
}

// RenderState bundles a complete graphics pipeline: shader stages, the
// binding-set layouts it was built against (gap-filled with empty stub
// layouts for any unused set index below the highest used one, since Vulkan
// requires a contiguous set index range), and the render pass it is
// compatible with.
type RenderState struct {
	Pipeline         vk.Pipeline
	Layout           vk.PipelineLayout
	Stages           []ShaderStage
	SetLayouts       []vk.DescriptorSetLayout
	PushConstants    []PushConstantRange
	NamedUniforms    []NamedUniform
	CompatibleRenderPass vk.RenderPass
	DebugName        string
	Destroyed        bool
}

// ComputeState bundles a complete compute pipeline.
type ComputeState struct {
	Pipeline      vk.Pipeline
	Layout        vk.PipelineLayout
	Stage         ShaderStage
	SetLayouts    []vk.DescriptorSetLayout
	PushConstants []PushConstantRange
	NamedUniforms []NamedUniform
	DebugName     string
	Destroyed     bool
}

// ShaderBindingTableRegion is one strided address range of an SBT buffer
// (raygen/miss/hit/callable), placed by buildShaderBindingTable at an
// offset aligned to shaderGroupBaseAlignment per the testable property on
// SBT alignment.
type ShaderBindingTableRegion struct {
	Buffer *Buffer
	Offset uint64
	Stride uint64
	Size   uint64
}

// RayTracingState bundles a ray-tracing pipeline and its shader binding
// table, built from the same reflected binding-set layouts as RenderState
// and ComputeState.
type RayTracingState struct {
	Pipeline      vk.Pipeline
	Layout        vk.PipelineLayout
	Stages        []ShaderStage
	SetLayouts    []vk.DescriptorSetLayout
	PushConstants []PushConstantRange
	NamedUniforms []NamedUniform

	RaygenTable   ShaderBindingTableRegion
	MissTable     ShaderBindingTableRegion
	HitTable      ShaderBindingTableRegion
	CallableTable ShaderBindingTableRegion

	MaxRecursionDepth uint32
	DebugName         string
	Destroyed         bool
}
