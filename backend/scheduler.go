// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/memory"
	"github.com/solstice-engine/gpucore/vk"
)

// framesInFlight is N from §3/§4.G: the ring depth of overlapping frames.
const framesInFlight = 2

type deleteKind uint8

const (
	deleteKindBuffer deleteKind = iota
	deleteKindImage
	deleteKindImageView
	deleteKindSampler
	deleteKindPipeline
	deleteKindPipelineLayout
	deleteKindRenderPass
	deleteKindFramebuffer
	deleteKindDescriptorPool
	deleteKindDescriptorSetLayout
	deleteKindAccelerationStructure
)

// deleteRequest is the §3 "tagged (object-kind, raw-handle, allocation)
// triple" queued into the frame ring.
type deleteRequest struct {
	kind   deleteKind
	handle uint64
	second uint64 // secondary handle, e.g. a layout paired with a pipeline
	block  *memory.Block
}

// uploadArena is a per-frame host-visible staging buffer reset on reuse
// (§3 FrameContext), handed to external callers alongside the command
// list during frame recording.
type uploadArena struct {
	handle   vk.Buffer
	block    *memory.Block
	mapped   uintptr
	size     uint64
	cursor   uint64
}

// frameContext is one ring slot (§3 FrameContext).
type frameContext struct {
	fence               vk.Fence
	imageAvailable      vk.Semaphore
	commandBuffer       vk.CommandBuffer
	upload              *uploadArena
	timestampPool       vk.QueryPool
	timestampCount      uint32
	lastTimestampsNanos []uint64
	pendingDeletes      []deleteRequest
}

// submitStatus is the opaque token submitRenderPipeline hands back; it
// owns the fence until polled/waited to completion (§4.G).
type submitStatus struct {
	fence vk.Fence
	done  bool
}

func (s *submitStatus) Poll(d *Device) bool {
	if s.done {
		return true
	}
	res := d.cmds.GetFenceStatus(d.handle, s.fence)
	if res == vk.Success {
		d.cmds.DestroyFence(d.handle, s.fence)
		s.done = true
	}
	return s.done
}

func (s *submitStatus) Wait(d *Device, timeoutNanos uint64) bool {
	if s.done {
		return true
	}
	res := d.cmds.WaitForFences(d.handle, []vk.Fence{s.fence}, true, timeoutNanos)
	if res == vk.Success {
		d.cmds.DestroyFence(d.handle, s.fence)
		s.done = true
	}
	return s.done
}

// scheduler owns the frame ring and swapchain state.
type scheduler struct {
	frames      [framesInFlight]*frameContext
	frameIndex  uint32
	frameCount  uint64
	swapchain   *swapchainState
	telemetryEveryKFrames uint64
}

func (d *Device) initScheduler() {
	d.scheduler = &scheduler{telemetryEveryKFrames: 10}
	for i := range d.scheduler.frames {
		d.scheduler.frames[i] = d.newFrameContext()
	}
}

func (d *Device) newFrameContext() *frameContext {
	fence, _ := d.cmds.CreateFence(d.handle, true)
	sem, _ := d.cmds.CreateSemaphore(d.handle)
	bufs, _ := d.cmds.AllocateCommandBuffers(d.handle, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.framePool,
		Level:              0,
		CommandBufferCount: 1,
	})
	pool, _ := d.cmds.CreateQueryPool(d.handle, vk.QueryTypeTimestamp, 64)
	var cb vk.CommandBuffer
	if len(bufs) > 0 {
		cb = bufs[0]
	}
	arena, _ := d.newUploadArena(uploadArenaSize)
	return &frameContext{fence: fence, imageAvailable: sem, commandBuffer: cb, timestampPool: pool, upload: arena}
}

// uploadArenaSize is the per-frame staging buffer size; large enough for
// typical per-frame texture/buffer streaming without forcing a
// SingleTimeCommands stall.
const uploadArenaSize uint64 = 16 << 20

func (d *Device) newUploadArena(size uint64) (*uploadArena, error) {
	info := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        size,
		Usage:       vk.BufferUsageTransferSrc,
		SharingMode: vk.SharingModeExclusive,
	}
	handle, res := d.cmds.CreateBuffer(d.handle, &info)
	if res != vk.Success {
		return nil, errs.Create("upload arena", fmt.Errorf("vkCreateBuffer: %s", res))
	}
	reqs := d.cmds.GetBufferMemoryRequirements(d.handle, handle)
	block, err := d.allocator.Alloc(memory.AllocationRequest{
		Size: reqs.Size, Alignment: reqs.Alignment,
		Usage: memory.UsageUpload | memory.UsageHostAccess, MemoryTypeBits: reqs.MemoryTypeBits,
	})
	if err != nil {
		d.cmds.DestroyBuffer(d.handle, handle)
		return nil, err
	}
	if res := d.cmds.BindBufferMemory(d.handle, handle, block.Memory, block.Offset); res != vk.Success {
		d.allocator.Free(block)
		d.cmds.DestroyBuffer(d.handle, handle)
		return nil, errs.Create("upload arena", fmt.Errorf("vkBindBufferMemory: %s", res))
	}
	mapped, err := d.allocator.Map(block)
	if err != nil {
		d.allocator.Free(block)
		d.cmds.DestroyBuffer(d.handle, handle)
		return nil, err
	}
	return &uploadArena{handle: handle, block: block, mapped: mapped, size: size}, nil
}

// reset rewinds the arena's write cursor at the start of each reuse (§5:
// "there is no cross-thread synchronisation on it").
func (a *uploadArena) reset() { a.cursor = 0 }

// enqueueDelete queues a delete request against the current ring slot
// (§4.B, §3 P2).
func (s *scheduler) enqueueDelete(req deleteRequest) {
	slot := s.frames[s.frameIndex]
	slot.pendingDeletes = append(slot.pendingDeletes, req)
}

// drainDeletes frees everything queued against this slot on a prior pass,
// called at the start of frame recording once the slot's fence has
// already been waited (§4.G step 2).
func (d *Device) drainDeletes(slot *frameContext) {
	for _, req := range slot.pendingDeletes {
		d.destroyDeleted(req)
	}
	slot.pendingDeletes = slot.pendingDeletes[:0]
}

func (d *Device) destroyDeleted(req deleteRequest) {
	switch req.kind {
	case deleteKindBuffer:
		d.cmds.DestroyBuffer(d.handle, vk.Buffer(req.handle))
	case deleteKindImage:
		d.cmds.DestroyImage(d.handle, vk.Image(req.handle))
	case deleteKindImageView:
		d.cmds.DestroyImageView(d.handle, vk.ImageView(req.handle))
	case deleteKindSampler:
		d.cmds.DestroySampler(d.handle, vk.Sampler(req.handle))
	case deleteKindPipeline:
		d.cmds.DestroyPipeline(d.handle, vk.Pipeline(req.handle))
	case deleteKindPipelineLayout:
		d.cmds.DestroyPipelineLayout(d.handle, vk.PipelineLayout(req.handle))
	case deleteKindRenderPass:
		d.cmds.DestroyRenderPass(d.handle, vk.RenderPass(req.handle))
	case deleteKindFramebuffer:
		d.cmds.DestroyFramebuffer(d.handle, vk.Framebuffer(req.handle))
	case deleteKindDescriptorPool:
		d.cmds.DestroyDescriptorPool(d.handle, vk.DescriptorPool(req.handle))
	case deleteKindDescriptorSetLayout:
		d.cmds.DestroyDescriptorSetLayout(d.handle, vk.DescriptorSetLayout(req.handle))
	case deleteKindAccelerationStructure:
		d.cmds.DestroyAccelerationStructureKHR(d.handle, vk.AccelerationStructure(req.handle))
	}
	if req.block != nil {
		_ = d.allocator.Free(req.block)
	}
}

// SingleTimeCommands allocates a transient command buffer, records under
// fn, submits, and waits for the queue to idle before freeing the buffer
// (§4.G). It emits a debug warning if invoked while a main frame's
// primary command buffer is being recorded, since it forces a pipeline
// stall mid-frame.
func (d *Device) SingleTimeCommands(fn func(cb vk.CommandBuffer)) error {
	if d.recordingFrame {
		// Recoverable per §7: logged, not fatal.
		fmt.Println("backend: single-time command issued while a frame is being recorded; this stalls the pipeline")
	}
	bufs, res := d.cmds.AllocateCommandBuffers(d.handle, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.transientPool,
		Level:              0,
		CommandBufferCount: 1,
	})
	if res != vk.Success || len(bufs) == 0 {
		return errs.Create("SingleTimeCommands: AllocateCommandBuffers", fmt.Errorf("result %s", res))
	}
	cb := bufs[0]
	defer d.cmds.FreeCommandBuffers(d.handle, d.transientPool, []vk.CommandBuffer{cb})

	if res := d.cmds.BeginCommandBuffer(cb, &vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo, Flags: commandBufferOneTimeSubmit}); res != vk.Success {
		return errs.Create("SingleTimeCommands: BeginCommandBuffer", fmt.Errorf("result %s", res))
	}
	fn(cb)
	if res := d.cmds.EndCommandBuffer(cb); res != vk.Success {
		return errs.Create("SingleTimeCommands: EndCommandBuffer", fmt.Errorf("result %s", res))
	}

	if res := d.cmds.QueueSubmit(d.graphicsQueue, []vk.SubmitInfo{{SType: vk.StructureTypeSubmitInfo, CommandBuffers: []vk.CommandBuffer{cb}}}, 0); res != vk.Success {
		return errs.Create("SingleTimeCommands: QueueSubmit", fmt.Errorf("result %s", res))
	}
	if res := d.cmds.QueueWaitIdle(d.graphicsQueue); res != vk.Success {
		return errs.DeviceLost("SingleTimeCommands: QueueWaitIdle", fmt.Errorf("result %s", res))
	}
	return nil
}

const commandBufferOneTimeSubmit uint32 = 1 << 0

// SubmitRenderPipeline records fn and submits it to the graphics queue
// without touching the swapchain, returning a token the caller can poll
// or wait on (§4.G, §6).
func (d *Device) SubmitRenderPipeline(fn func(cl *CommandList)) (*submitStatus, error) {
	bufs, res := d.cmds.AllocateCommandBuffers(d.handle, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.transientPool,
		Level:              0,
		CommandBufferCount: 1,
	})
	if res != vk.Success || len(bufs) == 0 {
		return nil, errs.Create("SubmitRenderPipeline: AllocateCommandBuffers", fmt.Errorf("result %s", res))
	}
	cb := bufs[0]
	if res := d.cmds.BeginCommandBuffer(cb, &vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo}); res != vk.Success {
		return nil, errs.Create("SubmitRenderPipeline: BeginCommandBuffer", fmt.Errorf("result %s", res))
	}
	cl := newCommandList(d, cb)
	fn(cl)
	cl.endOfList()
	if res := d.cmds.EndCommandBuffer(cb); res != vk.Success {
		return nil, errs.Create("SubmitRenderPipeline: EndCommandBuffer", fmt.Errorf("result %s", res))
	}

	fence, res := d.cmds.CreateFence(d.handle, false)
	if res != vk.Success {
		return nil, errs.Create("SubmitRenderPipeline: CreateFence", fmt.Errorf("result %s", res))
	}
	if res := d.cmds.QueueSubmit(d.graphicsQueue, []vk.SubmitInfo{{SType: vk.StructureTypeSubmitInfo, CommandBuffers: []vk.CommandBuffer{cb}}}, fence); res != vk.Success {
		return nil, errs.Create("SubmitRenderPipeline: QueueSubmit", fmt.Errorf("result %s", res))
	}
	return &submitStatus{fence: fence}, nil
}

func (s *scheduler) close(d *Device) {
	for _, f := range s.frames {
		if f == nil {
			continue
		}
		d.drainDeletes(f)
		d.cmds.DestroyFence(d.handle, f.fence)
		d.cmds.DestroySemaphore(d.handle, f.imageAvailable)
		d.cmds.DestroyQueryPool(d.handle, f.timestampPool)
		if f.upload != nil {
			d.allocator.Unmap(f.upload.block)
			d.cmds.DestroyBuffer(d.handle, f.upload.handle)
			_ = d.allocator.Free(f.upload.block)
		}
	}
	if s.swapchain != nil {
		s.swapchain.destroy(d)
	}
}
