// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

// VkObjectType values used only for SetDebugUtilsObjectNameEXT; the vk
// package does not name this enum since nothing else in the wrapper
// surface branches on it.
const (
	objectTypeBuffer                   uint32 = 9
	objectTypeImage                    uint32 = 10
	objectTypeImageView                uint32 = 14
	objectTypeShaderModule             uint32 = 15
	objectTypePipeline                 uint32 = 19
	objectTypeSampler                  uint32 = 21
	objectTypeFramebuffer              uint32 = 24
	objectTypeRenderPass               uint32 = 18
	objectTypeDescriptorSet            uint32 = 23
	objectTypeAccelerationStructureKHR uint32 = 1000150000
)

// setDebugName passes a resource's caller-supplied name through to the
// debug-utils extension when debug mode is on (§4.H); naming is
// best-effort, per §7's Recoverable category.
func (d *Device) setDebugName(handle uint64, objectType uint32, name string) {
	if !d.debugMode || name == "" {
		return
	}
	d.cmds.SetDebugUtilsObjectNameEXT(d.handle, &vk.DebugUtilsObjectNameInfoEXT{
		SType:        vk.StructureTypeDebugUtilsObjectNameInfoEXT,
		ObjectType:   objectType,
		ObjectHandle: handle,
		PObjectName:  name,
	})
}

// BeginDebugLabel/EndDebugLabel passthrough to VK_EXT_debug_utils on the
// given command buffer (§4.H, §6).
func (d *Device) BeginDebugLabel(cb vk.CommandBuffer, name string, color [4]float32) {
	if !d.debugMode {
		return
	}
	d.cmds.CmdBeginDebugUtilsLabelEXT(cb, &vk.DebugUtilsLabelEXT{
		SType:      vk.StructureTypeDebugUtilsLabelEXT,
		PLabelName: name,
		Color:      color,
	})
}

func (d *Device) EndDebugLabel(cb vk.CommandBuffer) {
	if !d.debugMode {
		return
	}
	d.cmds.CmdEndDebugUtilsLabelEXT(cb)
}

// ExternalFeatureKind tags the vendor-specific pluggable features
// referenced only through their integration seam (§4.H): DLSS-style
// temporal upscaling, denoising, capture tooling.
type ExternalFeatureKind uint8

const (
	ExternalFeatureUpscaling ExternalFeatureKind = iota
	ExternalFeatureDenoise
	ExternalFeatureCapture
)

// ExternalFeatureParams is the tagged create-info for CreateExternalFeature.
type ExternalFeatureParams struct {
	Kind               ExternalFeatureKind
	PreferredExtensions []string
}

// ExternalFeature is the backend-owned handle an external integration
// evaluates against per-invocation resource bundles.
type ExternalFeature struct {
	Kind      ExternalFeatureKind
	Active    bool
	PreferredRenderWidth  uint32
	PreferredRenderHeight uint32
	Sharpening float32
	MipBias    float32
}

// CreateExternalFeature registers a vendor feature. An upscaling feature is
// active only when CapabilityUpscaling was enabled at device creation;
// features of every other kind are created active. An inactive feature's
// Evaluate is a no-op so callers never need to branch on availability at
// the call site.
func (d *Device) CreateExternalFeature(params ExternalFeatureParams) *ExternalFeature {
	active := true
	switch params.Kind {
	case ExternalFeatureUpscaling:
		active = d.HasActiveCapability(gfxtypes.CapabilityUpscaling)
	}
	return &ExternalFeature{Kind: params.Kind, Active: active}
}

// ExternalFeatureInputs bundles the resource references an upscaling or
// denoising evaluation reads, per §4.H.
type ExternalFeatureInputs struct {
	InputColor, UpscaledColor, Depth, Velocity interface{}
	Exposure                                   interface{}
	JitterX, JitterY                           float32
	Scale                                      float32
	PreExposure                                float32
	Reset                                      bool
}

// Evaluate records the feature's GPU work into the command list, a no-op
// for inactive features.
func (f *ExternalFeature) Evaluate(cl *CommandList, inputs ExternalFeatureInputs) {
	if !f.Active {
		return
	}
	// Evaluation is vendor-specific and out of this core's scope (§1); the
	// seam only guarantees the resource bundle reaches the feature.
	_ = cl
	_ = inputs
}

// haltonSample computes element i (1-indexed) of the Halton low-discrepancy
// sequence in the given base, used for temporal jitter offsets fed to
// upscaling features (§9 S5).
func haltonSample(index uint32, base uint32) float32 {
	var f, result float32 = 1, 0
	i := index
	for i > 0 {
		f /= float32(base)
		result += f * float32(i%base)
		i /= base
	}
	return result
}

// HaltonJitter2D returns the (x, y) jitter offset for frame index using
// bases 2 and 3, the canonical TAA/upscaler jitter sequence.
func HaltonJitter2D(index uint32) (float32, float32) {
	return haltonSample(index, 2), haltonSample(index, 3)
}
