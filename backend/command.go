// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"unsafe"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

// bytesPointer exposes a byte slice's backing array to the FFI layer.
// Callers must keep data alive across the call (they do: it is a
// parameter of the same call).
func bytesPointer(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

// pipelineKind discriminates the command list's single active pipeline
// state (§3 P3).
type pipelineKind uint8

const (
	pipelineKindNone pipelineKind = iota
	pipelineKindRender
	pipelineKindCompute
	pipelineKindRayTracing
)

// CommandList wraps a primary or transient command buffer plus the
// tracking state §4.F names: the active pipeline kind, the bound
// vertex/index buffer handles (to suppress redundant binds), and the open
// debug-label stack.
type CommandList struct {
	device *Device
	cb     vk.CommandBuffer

	activeKind    pipelineKind
	activeRender  *gfxtypes.RenderState
	activeCompute *gfxtypes.ComputeState
	activeRT      *gfxtypes.RayTracingState
	activeLayout  vk.PipelineLayout
	activeUniforms []gfxtypes.NamedUniform

	boundVertexBuffer vk.Buffer
	boundIndexBuffer  vk.Buffer
	boundIndexType    vk.IndexType

	inRenderPass bool
	labelStack   []string
}

func newCommandList(d *Device, cb vk.CommandBuffer) *CommandList {
	return &CommandList{device: d, cb: cb}
}

// barrierPlan is the (layout, access, stage) triple §4.F's table derives
// for a binding kind.
type barrierPlan struct {
	layout vk.ImageLayout
	access vk.AccessFlags
	stage  vk.PipelineStageFlags
}

func planFor(kind gfxtypes.BindingKind) barrierPlan {
	switch kind {
	case gfxtypes.BindingSampledTexture, gfxtypes.BindingSampledTextureArray:
		return barrierPlan{vk.ImageLayoutShaderReadOnlyOptimal, vk.AccessShaderRead, vk.PipelineStageFragmentShader}
	case gfxtypes.BindingStorageTexture:
		return barrierPlan{vk.ImageLayoutGeneral, vk.AccessShaderRead | vk.AccessShaderWrite, vk.PipelineStageComputeShader}
	default:
		return barrierPlan{vk.ImageLayoutGeneral, vk.AccessShaderRead, vk.PipelineStageAllCommands}
	}
}

// transitionTexture batches one image-memory-barrier covering every mip
// and layer (I1) if tex's current layout differs from target.
func (cl *CommandList) transitionTexture(tex *gfxtypes.Texture, target barrierPlan) {
	if tex == nil || tex.CurrentLayout == target.layout {
		return
	}
	srcStage := vk.PipelineStageTopOfPipe
	if tex.CurrentLayout != vk.ImageLayoutUndefined {
		srcStage = vk.PipelineStageAllCommands
	}
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		OldLayout:           tex.CurrentLayout,
		NewLayout:           target.layout,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               tex.Image,
		DstAccessMask:       target.access,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     tex.Aspect.VkMask(),
			BaseMipLevel:   0,
			LevelCount:     vk.RemainingMipLevels,
			BaseArrayLayer: 0,
			LayerCount:     vk.RemainingArrayLayers,
		},
	}
	cl.device.cmds.CmdPipelineBarrier(cl.cb, srcStage, target.stage, nil, nil, []vk.ImageMemoryBarrier{barrier})
	tex.CurrentLayout = target.layout
}

// applyBindingBarriers walks every texture-referencing binding in set and
// transitions it to the layout its kind requires (§4.F), called when the
// set is bound against an active pipeline.
func (cl *CommandList) applyBindingBarriers(set *gfxtypes.BindingSet) {
	for _, b := range set.Descriptor.Bindings {
		plan := planFor(b.Kind)
		switch b.Kind {
		case gfxtypes.BindingSampledTexture, gfxtypes.BindingStorageTexture:
			cl.transitionTexture(b.Texture, plan)
		case gfxtypes.BindingSampledTextureArray:
			for _, t := range b.TextureArray {
				cl.transitionTexture(t, plan)
			}
		}
	}
}

// BeginRendering activates a RenderState and begins its render pass,
// transitioning every color/depth attachment texture first (§4.F). If a
// compute or ray-tracing state is active, it is implicitly ended first
// with a logged warning (P3).
func (cl *CommandList) BeginRendering(target *gfxtypes.RenderTarget, state *gfxtypes.RenderState, clears []vk.ClearValue, extent vk.Extent2D, autoViewport bool) error {
	if cl.activeKind != pipelineKindNone && cl.activeKind != pipelineKindRender {
		fmt.Println("backend: beginRendering called with another pipeline state active; ending it first")
		cl.endActivePipeline()
	}
	for _, a := range target.Descriptor.Colors {
		if a.LoadOp == vk.AttachmentLoadOpClear && a.Texture == nil {
			return errs.Logic("beginRendering: clear load-op with no attachment texture")
		}
		layout := barrierPlan{vk.ImageLayoutColorAttachmentOptimal, vk.AccessColorAttachmentWrite, vk.PipelineStageColorAttachmentOutput}
		cl.transitionTexture(a.Texture, layout)
	}
	if target.Descriptor.DepthStencil != nil {
		layout := barrierPlan{vk.ImageLayoutDepthStencilAttachmentOptimal, vk.AccessDepthStencilAttachmentWrite, vk.PipelineStageLateFragmentTests}
		cl.transitionTexture(target.Descriptor.DepthStencil.Texture, layout)
	}

	beginInfo := &vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,

		RenderPass:  target.RenderPass,
		Framebuffer: target.Framebuffer,
		RenderArea:  vk.Rect2D{Extent: extent},
		ClearValues: clears,
	}
	if target.Imageless {
		views := make([]vk.ImageView, 0, len(target.Descriptor.Colors)+1)
		for _, a := range target.Descriptor.Colors {
			views = append(views, a.Texture.View)
		}
		if target.Descriptor.DepthStencil != nil {
			views = append(views, target.Descriptor.DepthStencil.Texture.View)
		}
		attachBegin := vk.RenderPassAttachmentBeginInfo{SType: vk.StructureTypeRenderPassAttachmentBeginInfo, Attachments: views}
		beginInfo.PNext = uintptr(unsafe.Pointer(&attachBegin))
	}
	cl.device.cmds.CmdBeginRenderPass(cl.cb, beginInfo, 0)
	cl.device.cmds.CmdBindPipeline(cl.cb, vk.PipelineBindPointGraphics, state.Pipeline)
	if autoViewport {
		cl.SetViewport(0, 0, float32(extent.Width), float32(extent.Height))
	}

	cl.activeKind = pipelineKindRender
	cl.activeRender = state
	cl.activeLayout = state.Layout
	cl.activeUniforms = state.NamedUniforms
	cl.inRenderPass = true
	return nil
}

func (cl *CommandList) EndRendering() {
	if !cl.inRenderPass {
		return
	}
	cl.device.cmds.CmdEndRenderPass(cl.cb)
	cl.inRenderPass = false
	cl.activeKind = pipelineKindNone
	cl.activeRender = nil
}

func (cl *CommandList) endActivePipeline() {
	switch cl.activeKind {
	case pipelineKindRender:
		cl.EndRendering()
	default:
		cl.activeKind = pipelineKindNone
		cl.activeCompute = nil
		cl.activeRT = nil
	}
}

// SetComputeState activates a compute pipeline (§4.F).
func (cl *CommandList) SetComputeState(state *gfxtypes.ComputeState) {
	if cl.activeKind == pipelineKindRender {
		fmt.Println("backend: setComputeState called while a render pass is active; ending it first")
		cl.EndRendering()
	}
	cl.device.cmds.CmdBindPipeline(cl.cb, vk.PipelineBindPointCompute, state.Pipeline)
	cl.activeKind = pipelineKindCompute
	cl.activeCompute = state
	cl.activeLayout = state.Layout
	cl.activeUniforms = state.NamedUniforms
}

// SetRayTracingState activates a ray-tracing pipeline; fails as a logic
// violation if the device has no active ray-tracing capability.
func (cl *CommandList) SetRayTracingState(state *gfxtypes.RayTracingState) error {
	if !cl.device.HasActiveCapability(gfxtypes.CapabilityRayTracing) {
		return errs.Logic("setRayTracingState: ray tracing capability not active")
	}
	if cl.activeKind == pipelineKindRender {
		cl.EndRendering()
	}
	cl.device.cmds.CmdBindPipeline(cl.cb, vk.PipelineBindPointRayTracingKHR, state.Pipeline)
	cl.activeKind = pipelineKindRayTracing
	cl.activeRT = state
	cl.activeLayout = state.Layout
	cl.activeUniforms = state.NamedUniforms
	return nil
}

// BindSet binds a descriptor set to the given slot against the currently
// active pipeline's layout, after transitioning every texture its
// bindings reference (§4.F, §4.E).
func (cl *CommandList) BindSet(set *gfxtypes.BindingSet, slot uint32) error {
	if cl.activeKind == pipelineKindNone {
		return errs.Logic("bindSet: no active pipeline state")
	}
	cl.applyBindingBarriers(set)
	bindPoint := vk.PipelineBindPointGraphics
	switch cl.activeKind {
	case pipelineKindCompute:
		bindPoint = vk.PipelineBindPointCompute
	case pipelineKindRayTracing:
		bindPoint = vk.PipelineBindPointRayTracingKHR
	}
	cl.device.cmds.CmdBindDescriptorSets(cl.cb, bindPoint, cl.activeLayout, slot, []vk.DescriptorSet{set.Set}, nil)
	return nil
}

// SetNamedUniform pushes a push-constant value located by name through
// the active pipeline's reflection table (§4.F, §9).
func (cl *CommandList) SetNamedUniform(name string, data []byte) error {
	for _, u := range cl.activeUniforms {
		if u.Name != name {
			continue
		}
		stages := vk.ShaderStageAllGraphics
		if cl.activeKind == pipelineKindCompute {
			stages = vk.ShaderStageCompute
		}
		cl.device.cmds.CmdPushConstants(cl.cb, cl.activeLayout, stages, u.Offset, uint32(len(data)), bytesPointer(data))
		return nil
	}
	return errs.Logic(fmt.Sprintf("setNamedUniform: no uniform named %q in active pipeline", name))
}

func (cl *CommandList) BindVertexBuffer(buf *gfxtypes.Buffer, offset uint64) {
	if cl.boundVertexBuffer == buf.Handle {
		return
	}
	cl.device.cmds.CmdBindVertexBuffers(cl.cb, 0, []vk.Buffer{buf.Handle}, []uint64{offset})
	cl.boundVertexBuffer = buf.Handle
}

func (cl *CommandList) BindIndexBuffer(buf *gfxtypes.Buffer, offset uint64, indexType vk.IndexType) {
	if cl.boundIndexBuffer == buf.Handle && cl.boundIndexType == indexType {
		return
	}
	cl.device.cmds.CmdBindIndexBuffer(cl.cb, buf.Handle, offset, indexType)
	cl.boundIndexBuffer = buf.Handle
	cl.boundIndexType = indexType
}

func (cl *CommandList) SetViewport(x, y, width, height float32) {
	cl.device.cmds.CmdSetViewport(cl.cb, []vk.Viewport{{X: x, Y: y, Width: width, Height: height, MinDepth: 0, MaxDepth: 1}})
	cl.device.cmds.CmdSetScissor(cl.cb, []vk.Rect2D{{Extent: vk.Extent2D{Width: uint32(width), Height: uint32(height)}}})
}

// Draw / DrawIndexed validate a matching active pipeline kind and, for
// the indexed variant, a bound index buffer (S4).
func (cl *CommandList) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) error {
	if cl.activeKind != pipelineKindRender {
		return errs.Logic("draw: no active render state")
	}
	cl.device.cmds.CmdDraw(cl.cb, vertexCount, instanceCount, firstVertex, firstInstance)
	return nil
}

func (cl *CommandList) DrawIndexed(indexCount, instanceCount uint32) error {
	if cl.activeKind != pipelineKindRender {
		return errs.Logic("drawIndexed: no active render state")
	}
	if cl.boundIndexBuffer == 0 {
		return errs.Logic("drawIndexed: no bound index buffer")
	}
	cl.device.cmds.CmdDrawIndexed(cl.cb, indexCount, instanceCount, 0, 0, 0)
	return nil
}

// indexedDrawCmdSize is sizeof(VkDrawIndexedIndirectCommand): 5 uint32s.
const indexedDrawCmdSize = 20

// DrawIndirect computes maxDrawCount from the indirect buffer's size and
// requires that buffer to carry the indirect usage tag (P6). It takes a
// single indirect buffer and issues vkCmdDrawIndexedIndirect with
// maxDrawCount draws; no count buffer is read.
func (cl *CommandList) DrawIndirect(indirect *gfxtypes.Buffer, offset uint64) error {
	if cl.activeKind != pipelineKindRender {
		return errs.Logic("drawIndirect: no active render state")
	}
	if indirect.Usage != gfxtypes.BufferUsageIndirect {
		return errs.Logic("drawIndirect: buffer not tagged indirect")
	}
	maxDrawCount := uint32((indirect.Size - offset) / indexedDrawCmdSize)
	cl.device.cmds.CmdDrawIndexedIndirect(cl.cb, indirect.Handle, offset, maxDrawCount, indexedDrawCmdSize)
	return nil
}

func (cl *CommandList) Dispatch(x, y, z uint32) error {
	if cl.activeKind != pipelineKindCompute {
		return errs.Logic("dispatch: no active compute state")
	}
	cl.device.cmds.CmdDispatch(cl.cb, x, y, z)
	return nil
}

func (cl *CommandList) DispatchIndirect(buf *gfxtypes.Buffer, offset uint64) error {
	if cl.activeKind != pipelineKindCompute {
		return errs.Logic("dispatchIndirect: no active compute state")
	}
	cl.device.cmds.CmdDispatchIndirect(cl.cb, buf.Handle, offset)
	return nil
}

// TraceRays gates on the ray-tracing capability and the active pipeline
// kind (§4.F).
func (cl *CommandList) TraceRays(width, height, depth uint32) error {
	if cl.activeKind != pipelineKindRayTracing {
		return errs.Logic("traceRays: no active ray-tracing state")
	}
	s := cl.activeRT
	raygen := sbtRegion(s.RaygenTable)
	miss := sbtRegion(s.MissTable)
	hit := sbtRegion(s.HitTable)
	callable := sbtRegion(s.CallableTable)
	cl.device.cmds.CmdTraceRaysKHR(cl.cb, &raygen, &miss, &hit, &callable, width, height, depth)
	return nil
}

func sbtRegion(r gfxtypes.ShaderBindingTableRegion) vk.StridedDeviceAddressRegionKHR {
	if r.Buffer == nil {
		return vk.StridedDeviceAddressRegionKHR{}
	}
	return vk.StridedDeviceAddressRegionKHR{DeviceAddress: r.Buffer.DeviceAddress + r.Offset, Stride: r.Stride, Size: r.Size}
}

// ClearTexture transitions tex to general layout (the one layout both the
// color and depth/stencil clear commands accept, skipping the barrier
// entirely if tex is already there or already transfer-dst), issues the
// matching vkCmdClear{Color,DepthStencil}Image covering every mip and
// layer (I1), then restores the prior layout, following the §4.F
// transfer-barrier policy.
func (cl *CommandList) ClearTexture(tex *gfxtypes.Texture, value vk.ClearValue) {
	prior := tex.CurrentLayout
	if prior != vk.ImageLayoutGeneral && prior != vk.ImageLayoutTransferDstOptimal {
		cl.transitionTexture(tex, barrierPlan{vk.ImageLayoutGeneral, vk.AccessMemoryRead | vk.AccessMemoryWrite, vk.PipelineStageAllCommands})
	}
	ranges := []vk.ImageSubresourceRange{{
		AspectMask:     tex.Aspect.VkMask(),
		BaseMipLevel:   0,
		LevelCount:     tex.Descriptor.MipLevels,
		BaseArrayLayer: 0,
		LayerCount:     tex.Descriptor.ArrayLayers,
	}}
	switch tex.Aspect {
	case gfxtypes.AspectDepth, gfxtypes.AspectDepthStencil:
		cl.device.cmds.CmdClearDepthStencilImage(cl.cb, tex.Image, tex.CurrentLayout, &value.DepthStencil, ranges)
	default:
		cl.device.cmds.CmdClearColorImage(cl.cb, tex.Image, tex.CurrentLayout, &value.Color, ranges)
	}
	cl.restoreLayout(tex, prior)
}

// restoreLayout implements the "transition back to the pre-existing
// layout, except when it was undefined/preinitialized, which leaves the
// texture in general" rule shared by clearTexture/copyTexture/
// generateMipmaps/executeBufferCopyOperations.
func (cl *CommandList) restoreLayout(tex *gfxtypes.Texture, prior vk.ImageLayout) {
	if prior == vk.ImageLayoutUndefined || prior == vk.ImageLayoutPreinitialized {
		cl.transitionTexture(tex, barrierPlan{vk.ImageLayoutGeneral, vk.AccessMemoryRead | vk.AccessMemoryWrite, vk.PipelineStageAllCommands})
		return
	}
	cl.transitionTexture(tex, barrierPlan{prior, vk.AccessMemoryRead, vk.PipelineStageAllCommands})
}

// CopyTexture blits src mip srcMip into dst mip dstMip. When dst's prior
// layout was undefined, every mip/layer is transitioned to the final
// layout to uphold I1, not just the copied subresource.
func (cl *CommandList) CopyTexture(src *gfxtypes.Texture, dst *gfxtypes.Texture, srcMip, dstMip uint32) {
	srcPrior, dstPrior := src.CurrentLayout, dst.CurrentLayout
	cl.transitionTexture(src, barrierPlan{vk.ImageLayoutTransferSrcOptimal, vk.AccessTransferRead, vk.PipelineStageTransfer})
	cl.transitionTexture(dst, barrierPlan{vk.ImageLayoutTransferDstOptimal, vk.AccessTransferWrite, vk.PipelineStageTransfer})

	region := vk.ImageBlit{
		SrcSubresource: vk.ImageSubresourceLayers{AspectMask: src.Aspect.VkMask(), MipLevel: srcMip, LayerCount: 1},
		DstSubresource: vk.ImageSubresourceLayers{AspectMask: dst.Aspect.VkMask(), MipLevel: dstMip, LayerCount: 1},
	}
	cl.device.cmds.CmdBlitImage(cl.cb, src.Image, vk.ImageLayoutTransferSrcOptimal, dst.Image, vk.ImageLayoutTransferDstOptimal, []vk.ImageBlit{region}, vk.FilterLinear)

	cl.restoreLayout(src, srcPrior)
	if dstPrior == vk.ImageLayoutUndefined {
		cl.transitionTexture(dst, barrierPlan{vk.ImageLayoutGeneral, vk.AccessMemoryRead | vk.AccessMemoryWrite, vk.PipelineStageAllCommands})
	} else {
		cl.restoreLayout(dst, dstPrior)
	}
}

// GenerateMipmaps implements §4.F's mip chain: mip 0 -> transfer-src,
// mips 1..M-1 -> transfer-dst; blit each pair with linear filtering,
// restoring each source mip to L as it finishes; finally mip M-1 -> L.
func (cl *CommandList) GenerateMipmaps(tex *gfxtypes.Texture) error {
	m := tex.Descriptor.MipLevels
	if m < 2 {
		return nil
	}
	finalLayout := tex.CurrentLayout
	if finalLayout == vk.ImageLayoutUndefined || finalLayout == vk.ImageLayoutPreinitialized {
		finalLayout = vk.ImageLayoutGeneral
	}
	cl.transitionMip(tex, 0, vk.ImageLayoutTransferSrcOptimal)
	for i := uint32(1); i < m; i++ {
		cl.transitionMip(tex, i, vk.ImageLayoutTransferDstOptimal)
		region := vk.ImageBlit{
			SrcSubresource: vk.ImageSubresourceLayers{AspectMask: tex.Aspect.VkMask(), MipLevel: i - 1, LayerCount: 1},
			DstSubresource: vk.ImageSubresourceLayers{AspectMask: tex.Aspect.VkMask(), MipLevel: i, LayerCount: 1},
		}
		cl.device.cmds.CmdBlitImage(cl.cb, tex.Image, vk.ImageLayoutTransferSrcOptimal, tex.Image, vk.ImageLayoutTransferDstOptimal, []vk.ImageBlit{region}, vk.FilterLinear)
		cl.transitionMip(tex, i-1, finalLayout)
		cl.transitionMip(tex, i, vk.ImageLayoutTransferSrcOptimal)
	}
	cl.transitionMip(tex, m-1, finalLayout)
	tex.CurrentLayout = finalLayout
	return nil
}

// transitionMip issues a single-mip image barrier; unlike transitionTexture
// this does not update tex.CurrentLayout, since mip generation's
// intermediate states are per-mip and only the final call restores I1.
func (cl *CommandList) transitionMip(tex *gfxtypes.Texture, mip uint32, layout vk.ImageLayout) {
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		OldLayout:           vk.ImageLayoutUndefined,
		NewLayout:           layout,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               tex.Image,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: tex.Aspect.VkMask(), BaseMipLevel: mip, LevelCount: 1,
			BaseArrayLayer: 0, LayerCount: vk.RemainingArrayLayers,
		},
	}
	cl.device.cmds.CmdPipelineBarrier(cl.cb, vk.PipelineStageTransfer, vk.PipelineStageTransfer, nil, nil, []vk.ImageMemoryBarrier{barrier})
}

// BufferCopyOp is one entry of executeBufferCopyOperations: either a
// buffer-to-buffer or a buffer-to-texture copy.
type BufferCopyOp struct {
	SrcBuffer  *gfxtypes.Buffer
	DstBuffer  *gfxtypes.Buffer
	DstTexture *gfxtypes.Texture
	SrcOffset, DstOffset, Size uint64
	MipLevel   uint32
	Extent     vk.Extent3D
}

func (cl *CommandList) ExecuteBufferCopyOperations(ops []BufferCopyOp) {
	for _, op := range ops {
		if op.DstTexture != nil {
			prior := op.DstTexture.CurrentLayout
			cl.transitionTexture(op.DstTexture, barrierPlan{vk.ImageLayoutTransferDstOptimal, vk.AccessTransferWrite, vk.PipelineStageTransfer})
			cl.device.cmds.CmdCopyBufferToImage(cl.cb, op.SrcBuffer.Handle, op.DstTexture.Image, vk.ImageLayoutTransferDstOptimal, []vk.BufferImageCopy{{
				BufferOffset:     op.SrcOffset,
				ImageSubresource: vk.ImageSubresourceLayers{AspectMask: op.DstTexture.Aspect.VkMask(), MipLevel: op.MipLevel, LayerCount: 1},
				ImageExtent:      op.Extent,
			}})
			if prior == vk.ImageLayoutUndefined {
				cl.transitionTexture(op.DstTexture, barrierPlan{vk.ImageLayoutGeneral, vk.AccessMemoryRead | vk.AccessMemoryWrite, vk.PipelineStageAllCommands})
			} else {
				cl.restoreLayout(op.DstTexture, prior)
			}
			continue
		}
		cl.device.cmds.CmdCopyBuffer(cl.cb, op.SrcBuffer.Handle, op.DstBuffer.Handle, []vk.BufferCopy{{SrcOffset: op.SrcOffset, DstOffset: op.DstOffset, Size: op.Size}})
	}
}

// BufferWriteBarrier / TextureWriteBarrier issue a write->read+write
// barrier across all commands, with no layout change (§4.F).
func (cl *CommandList) BufferWriteBarrier(buf *gfxtypes.Buffer) {
	cl.device.cmds.CmdPipelineBarrier(cl.cb, vk.PipelineStageAllCommands, vk.PipelineStageAllCommands,
		[]vk.MemoryBarrier{{SType: vk.StructureTypeMemoryBarrier, SrcAccessMask: vk.AccessShaderWrite, DstAccessMask: vk.AccessShaderRead | vk.AccessShaderWrite}}, nil, nil)
}

func (cl *CommandList) TextureWriteBarrier(tex *gfxtypes.Texture) {
	cl.device.cmds.CmdPipelineBarrier(cl.cb, vk.PipelineStageAllCommands, vk.PipelineStageAllCommands,
		[]vk.MemoryBarrier{{SType: vk.StructureTypeMemoryBarrier, SrcAccessMask: vk.AccessShaderWrite, DstAccessMask: vk.AccessShaderRead | vk.AccessShaderWrite}}, nil, nil)
}

// DebugBarrier is the conservative all-commands->all-commands barrier §9
// keeps as the correctness baseline.
func (cl *CommandList) DebugBarrier() {
	cl.device.cmds.CmdPipelineBarrier(cl.cb, vk.PipelineStageAllCommands, vk.PipelineStageAllCommands,
		[]vk.MemoryBarrier{{SType: vk.StructureTypeMemoryBarrier, SrcAccessMask: vk.AccessMemoryWrite, DstAccessMask: vk.AccessMemoryRead | vk.AccessMemoryWrite}}, nil, nil)
}

func (cl *CommandList) BeginDebugLabel(name string, color [4]float32) {
	cl.device.BeginDebugLabel(cl.cb, name, color)
	cl.labelStack = append(cl.labelStack, name)
}

func (cl *CommandList) EndDebugLabel() {
	if len(cl.labelStack) == 0 {
		return
	}
	cl.labelStack = cl.labelStack[:len(cl.labelStack)-1]
	cl.device.EndDebugLabel(cl.cb)
}

// endOfList finalises any open render pass and issues the conservative
// all->all hand-off barrier (§4.F).
func (cl *CommandList) endOfList() {
	cl.endActivePipeline()
	cl.DebugBarrier()
}
