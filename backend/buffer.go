// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/memory"
	"github.com/solstice-engine/gpucore/vk"
)

// usageBitsFor maps a BufferUsage tag to the VkBufferUsageFlags the buffer
// is created with, always folding in storage-buffer access for the usages
// §3 names as "additionally usable as storage" and always adding
// transfer-src/dst in debug mode (§4.B).
func (d *Device) usageBitsFor(usage gfxtypes.BufferUsage, usableAsStorage bool) vk.BufferUsageFlags {
	var bits vk.BufferUsageFlags
	switch usage {
	case gfxtypes.BufferUsageVertex:
		bits = vk.BufferUsageVertexBuffer
	case gfxtypes.BufferUsageIndex:
		bits = vk.BufferUsageIndexBuffer
	case gfxtypes.BufferUsageUniform:
		bits = vk.BufferUsageUniformBuffer
	case gfxtypes.BufferUsageStorage:
		bits = vk.BufferUsageStorageBuffer
	case gfxtypes.BufferUsageIndirect:
		bits = vk.BufferUsageIndirectBuffer
	case gfxtypes.BufferUsageUploadStaging:
		bits = vk.BufferUsageTransferSrc
	case gfxtypes.BufferUsageReadback:
		bits = vk.BufferUsageTransferDst
	}
	if usableAsStorage {
		bits |= vk.BufferUsageStorageBuffer
	}
	if d.HasActiveCapability(gfxtypes.CapabilityBufferDeviceAddress) {
		bits |= vk.BufferUsageShaderDeviceAddress
	}
	if d.debugMode {
		bits |= vk.BufferUsageTransferSrc | vk.BufferUsageTransferDst
	}
	return bits
}

func memoryUsageFor(residence gfxtypes.MemoryResidence) memory.UsageFlags {
	switch residence {
	case gfxtypes.ResidenceHostVisibleMapped:
		return memory.UsageUpload | memory.UsageHostAccess
	case gfxtypes.ResidenceDeviceLocalHostVisible:
		return memory.UsageFastDeviceAccess | memory.UsageHostAccess
	case gfxtypes.ResidenceReadback:
		return memory.UsageDownload | memory.UsageHostAccess
	default:
		return memory.UsageFastDeviceAccess
	}
}

// CreateBuffer implements the §6 createBuffer factory entry point.
func (d *Device) CreateBuffer(desc gfxtypes.BufferDescriptor) (*gfxtypes.Buffer, error) {
	b := &gfxtypes.Buffer{Size: desc.Size, Usage: desc.Usage, Residence: desc.Residence, DebugName: desc.DebugName}
	usableAsStorage := b.UsableAsStorage()
	usage := d.usageBitsFor(desc.Usage, usableAsStorage)

	info := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        desc.Size,
		Usage:       usage,
		SharingMode: vk.SharingModeExclusive,
	}
	handle, res := d.cmds.CreateBuffer(d.handle, &info)
	if res != vk.Success {
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateBuffer: %s", res))
	}

	reqs := d.cmds.GetBufferMemoryRequirements(d.handle, handle)
	block, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           reqs.Size,
		Alignment:      reqs.Alignment,
		Usage:          memoryUsageFor(desc.Residence),
		MemoryTypeBits: reqs.MemoryTypeBits,
	})
	if err != nil {
		d.cmds.DestroyBuffer(d.handle, handle)
		return nil, errs.Create(desc.DebugName, err)
	}
	if res := d.cmds.BindBufferMemory(d.handle, handle, block.Memory, block.Offset); res != vk.Success {
		d.allocator.Free(block)
		d.cmds.DestroyBuffer(d.handle, handle)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkBindBufferMemory: %s", res))
	}

	b.Handle = handle
	b.Block = block
	if usage&vk.BufferUsageShaderDeviceAddress != 0 {
		b.DeviceAddress = d.cmds.GetBufferDeviceAddress(d.handle, &vk.BufferDeviceAddressInfo{
			SType:  vk.StructureTypeBufferDeviceAddressInfo,
			Buffer: handle,
		})
	}
	d.setDebugName(uint64(handle), objectTypeBuffer, desc.DebugName)
	return b, nil
}

// ReallocateBuffer implements §4.B's copy-existing-data reallocation
// strategy: the new size must be at least the old size, and the old
// contents are blit-copied under a one-shot command before the original
// buffer is retired.
func (d *Device) ReallocateBuffer(old *gfxtypes.Buffer, newSize uint64) (*gfxtypes.Buffer, error) {
	if newSize < old.Size {
		return nil, errs.Logic(fmt.Sprintf("ReallocateBuffer(%s): new size %d smaller than old size %d", old.DebugName, newSize, old.Size))
	}
	next, err := d.CreateBuffer(gfxtypes.BufferDescriptor{Size: newSize, Usage: old.Usage, Residence: old.Residence, DebugName: old.DebugName})
	if err != nil {
		return nil, err
	}
	err = d.SingleTimeCommands(func(cb vk.CommandBuffer) {
		d.cmds.CmdCopyBuffer(cb, old.Handle, next.Handle, []vk.BufferCopy{{SrcOffset: 0, DstOffset: 0, Size: old.Size}})
	})
	if err != nil {
		return nil, err
	}
	d.DestroyBuffer(old)
	return next, nil
}

// DestroyBuffer enqueues a delete request into the current frame slot
// (§4.B); the underlying buffer and its memory block are not released
// until the scheduler drains the matching slot (§3, P2).
func (d *Device) DestroyBuffer(b *gfxtypes.Buffer) {
	if b.Destroyed {
		return
	}
	b.Destroyed = true
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindBuffer, handle: uint64(b.Handle), block: b.Block})
}

// MapBuffer maps a host-visible buffer's memory for CPU writes.
func (d *Device) MapBuffer(b *gfxtypes.Buffer) (uintptr, error) {
	return d.allocator.Map(b.Block)
}

func (d *Device) UnmapBuffer(b *gfxtypes.Buffer) {
	d.allocator.Unmap(b.Block)
}
