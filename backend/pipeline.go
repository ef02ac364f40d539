// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/reflect"
	"github.com/solstice-engine/gpucore/vk"
)

// Vertex-input-rate and dynamic-state values have no named constants in
// the wrapped enum surface; their values are fixed by the Vulkan spec.
const (
	vertexInputRateVertex   uint32 = 0
	vertexInputRateInstance uint32 = 1
	dynamicStateViewport    uint32 = 0
	dynamicStateScissor     uint32 = 1
)

// ShaderSource is one compiled-SPIR-V stage feeding a pipeline-state
// factory, paired with its reflection-derived stage flag.
type ShaderSource struct {
	Stage      vk.ShaderStageFlags
	SPIRV      []byte
	EntryPoint string
}

// VertexLayout describes one vertex buffer binding and its attributes for
// CreateRenderState's fixed-function vertex input stage.
type VertexLayout struct {
	Binding    uint32
	Stride     uint32
	Instanced  bool
	Attributes []vk.VertexInputAttributeDescription
}

// RenderStateDescriptor is the factory input for CreateRenderState.
type RenderStateDescriptor struct {
	Shaders       []ShaderSource
	VertexLayouts []VertexLayout
	Topology      vk.PrimitiveTopology
	CullMode      vk.CullModeFlags
	FrontFace     vk.FrontFace
	DepthTest     bool
	DepthWrite    bool
	DepthCompare  vk.CompareOp
	Blend         bool
	Samples       vk.SampleCountFlagBits
	Target        *gfxtypes.RenderTarget
	DebugName     string
}

// buildSetLayouts derives descriptor-set layouts from the unioned bindings
// across every stage, gap-filling unused positions below the highest used
// index with the device's empty stub layout (§4.D step 1).
func (d *Device) buildSetLayouts(bindings []gfxtypes.ShaderBinding) ([]vk.DescriptorSetLayout, error) {
	bySet := make(map[uint32][]gfxtypes.ShaderBinding)
	maxSet := uint32(0)
	for _, b := range bindings {
		bySet[b.Set] = append(bySet[b.Set], b)
		if b.Set > maxSet {
			maxSet = b.Set
		}
	}

	layouts := make([]vk.DescriptorSetLayout, maxSet+1)
	for i := range layouts {
		set := uint32(i)
		members, ok := bySet[set]
		if !ok {
			layouts[i] = d.emptySetLayout
			continue
		}
		vkBindings := make([]vk.DescriptorSetLayoutBinding, len(members))
		for j, m := range members {
			count := m.Count
			if count == 0 {
				count = 1
			}
			vkBindings[j] = vk.DescriptorSetLayoutBinding{
				Binding:         m.Binding,
				DescriptorType:  m.DescriptorType(),
				DescriptorCount: count,
				StageFlags:      m.Stages,
			}
		}
		layout, res := d.cmds.CreateDescriptorSetLayout(d.handle, &vk.DescriptorSetLayoutCreateInfo{
			SType:    vk.StructureTypeDescriptorSetLayoutCreateInfo,
			Bindings: vkBindings,
		})
		if res != vk.Success {
			return nil, errs.Create("descriptor-set-layout", fmt.Errorf("vkCreateDescriptorSetLayout: %s", res))
		}
		layouts[i] = layout
	}
	return layouts, nil
}

// compileStages reflects and compiles every shader source, returning the
// parsed reflection modules (used for the binding/push-constant union) and
// the created VkShaderModule handles (destroyed by the caller once the
// pipeline is built, per §4.D step 3).
func (d *Device) compileStages(sources []ShaderSource) ([]*reflect.Module, []vk.PipelineShaderStageCreateInfo, []vk.ShaderModule, error) {
	var modules []*reflect.Module
	var stages []vk.PipelineShaderStageCreateInfo
	var vkModules []vk.ShaderModule

	for _, s := range sources {
		m, err := reflect.Parse(s.Stage, s.SPIRV)
		if err != nil {
			return nil, nil, vkModules, errs.Shader(s.EntryPoint, err)
		}
		if err := reflect.RejectMultiDimArrays(m); err != nil {
			return nil, nil, vkModules, errs.Shader(s.EntryPoint, err)
		}
		modules = append(modules, m)

		handle, res := d.cmds.CreateShaderModule(d.handle, s.SPIRV)
		if res != vk.Success {
			return nil, nil, vkModules, errs.Shader(s.EntryPoint, fmt.Errorf("vkCreateShaderModule: %s", res))
		}
		vkModules = append(vkModules, handle)
		entry := s.EntryPoint
		if entry == "" {
			entry = "main"
		}
		stages = append(stages, vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  s.Stage,
			Module: handle,
			PName:  entry,
		})
	}
	return modules, stages, vkModules, nil
}

func (d *Device) destroyShaderModules(modules []vk.ShaderModule) {
	for _, m := range modules {
		d.cmds.DestroyShaderModule(d.handle, m)
	}
}

func toVkPushConstantRanges(ranges []gfxtypes.PushConstantRange) []vk.PushConstantRange {
	out := make([]vk.PushConstantRange, len(ranges))
	for i, r := range ranges {
		out[i] = vk.PushConstantRange{StageFlags: r.Stages, Offset: r.Offset, Size: r.Size}
	}
	return out
}

// CreateRenderState builds a graphics pipeline per §4.D.
func (d *Device) CreateRenderState(desc RenderStateDescriptor) (*gfxtypes.RenderState, error) {
	modules, stages, vkModules, err := d.compileStages(desc.Shaders)
	if err != nil {
		d.destroyShaderModules(vkModules)
		return nil, err
	}
	defer d.destroyShaderModules(vkModules)

	bindings, err := reflect.UnionBindings(modules)
	if err != nil {
		return nil, err
	}
	pushRanges, namedUniforms, err := reflect.UnionPushConstants(modules)
	if err != nil {
		return nil, err
	}
	setLayouts, err := d.buildSetLayouts(bindings)
	if err != nil {
		return nil, err
	}

	layout, res := d.cmds.CreatePipelineLayout(d.handle, &vk.PipelineLayoutCreateInfo{
		SType:              vk.StructureTypePipelineLayoutCreateInfo,
		SetLayouts:         setLayouts,
		PushConstantRanges: toVkPushConstantRanges(pushRanges),
	})
	if res != vk.Success {
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreatePipelineLayout: %s", res))
	}

	var vertexBindings []vk.VertexInputBindingDescription
	var vertexAttrs []vk.VertexInputAttributeDescription
	for _, vl := range desc.VertexLayouts {
		rate := vertexInputRateVertex
		if vl.Instanced {
			rate = vertexInputRateInstance
		}
		vertexBindings = append(vertexBindings, vk.VertexInputBindingDescription{Binding: vl.Binding, Stride: vl.Stride, InputRate: rate})
		vertexAttrs = append(vertexAttrs, vl.Attributes...)
	}

	samples := desc.Samples
	if samples == 0 {
		samples = vk.SampleCount1
	}
	colorBlendAttachments := make([]vk.PipelineColorBlendAttachmentState, len(desc.Target.Descriptor.Colors))
	for i := range colorBlendAttachments {
		mask := vk.ColorComponentRGBA
		if !desc.Blend {
			colorBlendAttachments[i] = vk.PipelineColorBlendAttachmentState{ColorWriteMask: mask}
			continue
		}
		colorBlendAttachments[i] = vk.PipelineColorBlendAttachmentState{
			BlendEnable:         true,
			SrcColorBlendFactor: vk.BlendFactorSrcAlpha,
			DstColorBlendFactor: vk.BlendFactorOneMinusSrcAlpha,
			ColorBlendOp:        vk.BlendOpAdd,
			SrcAlphaBlendFactor: vk.BlendFactorOne,
			DstAlphaBlendFactor: vk.BlendFactorZero,
			AlphaBlendOp:        vk.BlendOpAdd,
			ColorWriteMask:      mask,
		}
	}

	pipelines, res := d.cmds.CreateGraphicsPipelines(d.handle, d.pipelineCache, []vk.GraphicsPipelineCreateInfo{{
		SType:              vk.StructureTypeGraphicsPipelineCreateInfo,
		Stages:             stages,
		VertexInputState:   &vk.PipelineVertexInputStateCreateInfo{VertexBindingDescriptions: vertexBindings, VertexAttributeDescriptions: vertexAttrs},
		InputAssemblyState: &vk.PipelineInputAssemblyStateCreateInfo{Topology: desc.Topology},
		ViewportState:      &vk.PipelineViewportStateCreateInfo{Viewports: []vk.Viewport{{}}, Scissors: []vk.Rect2D{{}}},
		RasterizationState: &vk.PipelineRasterizationStateCreateInfo{PolygonMode: vk.PolygonModeFill, CullMode: desc.CullMode, FrontFace: desc.FrontFace, LineWidth: 1},
		MultisampleState:   &vk.PipelineMultisampleStateCreateInfo{RasterizationSamples: samples},
		DepthStencilState:  &vk.PipelineDepthStencilStateCreateInfo{DepthTestEnable: desc.DepthTest, DepthWriteEnable: desc.DepthWrite, DepthCompareOp: desc.DepthCompare},
		ColorBlendState:    &vk.PipelineColorBlendStateCreateInfo{Attachments: colorBlendAttachments},
		DynamicState:       &vk.PipelineDynamicStateCreateInfo{DynamicStates: []uint32{dynamicStateViewport, dynamicStateScissor}},
		Layout:             layout,
		RenderPass:         desc.Target.RenderPass,
	}})
	if res != vk.Success || len(pipelines) == 0 {
		d.cmds.DestroyPipelineLayout(d.handle, layout)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateGraphicsPipelines: %s", res))
	}

	rs := &gfxtypes.RenderState{
		Pipeline:             pipelines[0],
		Layout:               layout,
		SetLayouts:           setLayouts,
		PushConstants:        pushRanges,
		NamedUniforms:        namedUniforms,
		CompatibleRenderPass: desc.Target.RenderPass,
		DebugName:            desc.DebugName,
	}
	d.setDebugName(uint64(rs.Pipeline), objectTypePipeline, desc.DebugName)
	return rs, nil
}

// ComputeStateDescriptor is the factory input for CreateComputeState.
type ComputeStateDescriptor struct {
	Shader    ShaderSource
	DebugName string
}

// CreateComputeState builds a compute pipeline per §4.D.
func (d *Device) CreateComputeState(desc ComputeStateDescriptor) (*gfxtypes.ComputeState, error) {
	modules, stages, vkModules, err := d.compileStages([]ShaderSource{desc.Shader})
	if err != nil {
		d.destroyShaderModules(vkModules)
		return nil, err
	}
	defer d.destroyShaderModules(vkModules)

	bindings, err := reflect.UnionBindings(modules)
	if err != nil {
		return nil, err
	}
	pushRanges, namedUniforms, err := reflect.UnionPushConstants(modules)
	if err != nil {
		return nil, err
	}
	setLayouts, err := d.buildSetLayouts(bindings)
	if err != nil {
		return nil, err
	}

	layout, res := d.cmds.CreatePipelineLayout(d.handle, &vk.PipelineLayoutCreateInfo{
		SType:              vk.StructureTypePipelineLayoutCreateInfo,
		SetLayouts:         setLayouts,
		PushConstantRanges: toVkPushConstantRanges(pushRanges),
	})
	if res != vk.Success {
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreatePipelineLayout: %s", res))
	}

	pipelines, res := d.cmds.CreateComputePipelines(d.handle, d.pipelineCache, []vk.ComputePipelineCreateInfo{{
		SType:  vk.StructureTypeComputePipelineCreateInfo,
		Stage:  stages[0],
		Layout: layout,
	}})
	if res != vk.Success || len(pipelines) == 0 {
		d.cmds.DestroyPipelineLayout(d.handle, layout)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateComputePipelines: %s", res))
	}

	cs := &gfxtypes.ComputeState{
		Pipeline:      pipelines[0],
		Layout:        layout,
		Stage:         gfxtypes.ShaderStage{Module: stages[0].Module, Stage: desc.Shader.Stage, EntryPoint: desc.Shader.EntryPoint},
		SetLayouts:    setLayouts,
		PushConstants: pushRanges,
		NamedUniforms: namedUniforms,
		DebugName:     desc.DebugName,
	}
	d.setDebugName(uint64(cs.Pipeline), objectTypePipeline, desc.DebugName)
	return cs, nil
}

// DestroyRenderState / DestroyComputeState enqueue deferred deletes for
// the pipeline and its layout, mirroring the other resource destructors.
func (d *Device) DestroyRenderState(rs *gfxtypes.RenderState) {
	if rs.Destroyed {
		return
	}
	rs.Destroyed = true
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindPipeline, handle: uint64(rs.Pipeline)})
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindPipelineLayout, handle: uint64(rs.Layout)})
}

func (d *Device) DestroyComputeState(cs *gfxtypes.ComputeState) {
	if cs.Destroyed {
		return
	}
	cs.Destroyed = true
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindPipeline, handle: uint64(cs.Pipeline)})
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindPipelineLayout, handle: uint64(cs.Layout)})
}
