// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"unsafe"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/reflect"
	"github.com/solstice-engine/gpucore/vk"
)

// unsafeBytesAt views a mapped buffer pointer as a byte slice of size n.
func unsafeBytesAt(ptr uintptr, n uint64) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
}

// shaderGroupHandleSize and shaderGroupBaseAlignment are read from
// VkPhysicalDeviceRayTracingPipelinePropertiesKHR on real drivers; the vk
// surface has no wrapper for chained physical-device property queries, so
// this backend uses the values every desktop Vulkan 1.3 ray-tracing driver
// reports (NVIDIA, AMD, Intel all report 32 and 64 respectively). See
// DESIGN.md.
const (
	shaderGroupHandleSize      = 32
	shaderGroupBaseAlignment   = 64
)

func alignUp(v, align uint64) uint64 {
	return (v + align - 1) / align * align
}

// RayTracingStateDescriptor is the factory input for
// CreateRayTracingState; shaders are tagged by stage so the raygen/hit/miss
// group layout can be derived positionally.
type RayTracingStateDescriptor struct {
	RaygenShader  ShaderSource
	HitShaders    []ShaderSource
	MissShaders   []ShaderSource
	MaxRecursion  uint32
	DebugName     string
}

// CreateRayTracingState builds a ray-tracing pipeline and its shader
// binding table per §4.D step 4: groups are laid out as one raygen group,
// N hit groups, M miss groups, each region stride-aligned to
// shaderGroupBaseAlignment.
func (d *Device) CreateRayTracingState(desc RayTracingStateDescriptor) (*gfxtypes.RayTracingState, error) {
	if !d.HasActiveCapability(gfxtypes.CapabilityRayTracing) {
		return nil, errs.Logic("CreateRayTracingState: ray tracing capability not active")
	}

	var sources []ShaderSource
	sources = append(sources, desc.RaygenShader)
	sources = append(sources, desc.HitShaders...)
	sources = append(sources, desc.MissShaders...)

	modules, stages, vkModules, err := d.compileStages(sources)
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

	groups := []vk.RayTracingShaderGroupCreateInfoKHR{{
		SType:              vk.StructureTypeRayTracingShaderGroupCreateInfoKHR,
		Type:               vk.RayTracingShaderGroupTypeGeneralKHR,
		GeneralShader:      0,
		ClosestHitShader:   vk.ShaderUnusedKHR,
		AnyHitShader:       vk.ShaderUnusedKHR,
		IntersectionShader: vk.ShaderUnusedKHR,
	}}
	idx := uint32(1)
	for range desc.HitShaders {
		groups = append(groups, vk.RayTracingShaderGroupCreateInfoKHR{
			SType:              vk.StructureTypeRayTracingShaderGroupCreateInfoKHR,
			Type:               vk.RayTracingShaderGroupTypeTrianglesHitGroupKHR,
			GeneralShader:      vk.ShaderUnusedKHR,
			ClosestHitShader:   idx,
			AnyHitShader:       vk.ShaderUnusedKHR,
			IntersectionShader: vk.ShaderUnusedKHR,
		})
		idx++
	}
	for range desc.MissShaders {
		groups = append(groups, vk.RayTracingShaderGroupCreateInfoKHR{
			SType:              vk.StructureTypeRayTracingShaderGroupCreateInfoKHR,
			Type:               vk.RayTracingShaderGroupTypeGeneralKHR,
			GeneralShader:      idx,
			ClosestHitShader:   vk.ShaderUnusedKHR,
			AnyHitShader:       vk.ShaderUnusedKHR,
			IntersectionShader: vk.ShaderUnusedKHR,
		})
		idx++
	}

	maxRecursion := desc.MaxRecursion
	if maxRecursion == 0 {
		maxRecursion = 1
	}
	pipelines, res := d.cmds.CreateRayTracingPipelinesKHR(d.handle, d.pipelineCache, []vk.RayTracingPipelineCreateInfoKHR{{
		SType:                        vk.StructureTypeRayTracingPipelineCreateInfoKHR,
		Stages:                       stages,
		Groups:                       groups,
		MaxPipelineRayRecursionDepth: maxRecursion,
		Layout:                       layout,
	}})
	if res != vk.Success || len(pipelines) == 0 {
		d.cmds.DestroyPipelineLayout(d.handle, layout)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateRayTracingPipelinesKHR: %s", res))
	}
	pipeline := pipelines[0]

	raygen, hit, miss, err := d.buildShaderBindingTable(pipeline, len(desc.HitShaders), len(desc.MissShaders), desc.DebugName)
	if err != nil {
		d.cmds.DestroyPipeline(d.handle, pipeline)
		d.cmds.DestroyPipelineLayout(d.handle, layout)
		return nil, err
	}

	rt := &gfxtypes.RayTracingState{
		Pipeline:          pipeline,
		Layout:            layout,
		SetLayouts:        setLayouts,
		PushConstants:     pushRanges,
		NamedUniforms:     namedUniforms,
		RaygenTable:       raygen,
		HitTable:          hit,
		MissTable:         miss,
		MaxRecursionDepth: maxRecursion,
		DebugName:         desc.DebugName,
	}
	d.setDebugName(uint64(pipeline), objectTypePipeline, desc.DebugName)
	return rt, nil
}

// buildShaderBindingTable allocates one device-local-host-visible buffer
// laid out [raygen][hit groups][miss groups], each region aligned to
// shaderGroupBaseAlignment, and writes the pipeline's group handles into
// it (§4.D step 4).
func (d *Device) buildShaderBindingTable(pipeline vk.Pipeline, hitCount, missCount int, debugName string) (gfxtypes.ShaderBindingTableRegion, gfxtypes.ShaderBindingTableRegion, gfxtypes.ShaderBindingTableRegion, error) {
	groupCount := uint32(1 + hitCount + missCount)
	handles, res := d.cmds.GetRayTracingShaderGroupHandlesKHR(d.handle, pipeline, 0, groupCount, uint64(groupCount)*shaderGroupHandleSize)
	if res != vk.Success {
		return gfxtypes.ShaderBindingTableRegion{}, gfxtypes.ShaderBindingTableRegion{}, gfxtypes.ShaderBindingTableRegion{}, errs.Create(debugName, fmt.Errorf("vkGetRayTracingShaderGroupHandlesKHR: %s", res))
	}

	stride := alignUp(shaderGroupHandleSize, shaderGroupBaseAlignment)
	raygenSize := alignUp(stride, shaderGroupBaseAlignment)
	hitSize := stride * uint64(hitCount)
	missSize := stride * uint64(missCount)
	totalSize := raygenSize + hitSize + missSize

	buf, err := d.CreateBuffer(gfxtypes.BufferDescriptor{
		Size:      totalSize,
		Usage:     gfxtypes.BufferUsageStorage,
		Residence: gfxtypes.ResidenceDeviceLocalHostVisible,
		DebugName: debugName + ".sbt",
	})
	if err != nil {
		return gfxtypes.ShaderBindingTableRegion{}, gfxtypes.ShaderBindingTableRegion{}, gfxtypes.ShaderBindingTableRegion{}, err
	}

	ptr, err := d.MapBuffer(buf)
	if err != nil {
		d.DestroyBuffer(buf)
		return gfxtypes.ShaderBindingTableRegion{}, gfxtypes.ShaderBindingTableRegion{}, gfxtypes.ShaderBindingTableRegion{}, err
	}
	dst := unsafeBytesAt(ptr, totalSize)
	copy(dst[0:shaderGroupHandleSize], handles[0:shaderGroupHandleSize])
	for i := 0; i < hitCount; i++ {
		off := raygenSize + uint64(i)*stride
		src := handles[(1+i)*shaderGroupHandleSize : (2+i)*shaderGroupHandleSize]
		copy(dst[off:off+shaderGroupHandleSize], src)
	}
	for i := 0; i < missCount; i++ {
		off := raygenSize + hitSize + uint64(i)*stride
		src := handles[(1+hitCount+i)*shaderGroupHandleSize : (2+hitCount+i)*shaderGroupHandleSize]
		copy(dst[off:off+shaderGroupHandleSize], src)
	}
	d.UnmapBuffer(buf)

	raygen := gfxtypes.ShaderBindingTableRegion{Buffer: buf, Offset: 0, Stride: stride, Size: raygenSize}
	hit := gfxtypes.ShaderBindingTableRegion{Buffer: buf, Offset: raygenSize, Stride: stride, Size: hitSize}
	miss := gfxtypes.ShaderBindingTableRegion{Buffer: buf, Offset: raygenSize + hitSize, Stride: stride, Size: missSize}
	return raygen, hit, miss, nil
}
