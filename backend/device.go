// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"os"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/memory"
	"github.com/solstice-engine/gpucore/vk"
)

// Device is the opened backend: the logical device, its queues, the
// memory allocator, the pipeline cache, and the frame scheduler. It is
// the receiver for every public factory method in §6.
type Device struct {
	cmds           *vk.Commands
	instance       vk.Instance
	physicalDevice vk.PhysicalDevice
	handle         vk.Device

	graphicsFamily, computeFamily, presentFamily uint32
	graphicsQueue, computeQueue, presentQueue    vk.Queue

	allocator *memory.Allocator
	selector  *memory.TypeSelector

	pipelineCache            vk.PipelineCache
	pipelineCachePath        string
	pipelineCacheLoadedBytes int

	framePool      vk.CommandPool
	transientPool  vk.CommandPool
	emptySetLayout vk.DescriptorSetLayout

	capabilities *gfxtypes.CapabilitySet
	debugMode    bool
	resizableBAR bool

	scheduler *scheduler

	recordingFrame bool
}

// HasActiveCapability answers the §6 capability-query entry point.
func (d *Device) HasActiveCapability(c gfxtypes.Capability) bool {
	return d.capabilities.Enabled(c)
}

// ResizableBAR reports whether the allocator can place upload-style
// buffers directly in VRAM (§4.A).
func (d *Device) ResizableBAR() bool { return d.resizableBAR }

// CompletePendingOperations blocks until the device is idle, per §5's
// deviceWaitIdle blocking point during shutdown and pipeline-rebuild
// hand-off.
func (d *Device) CompletePendingOperations() error {
	if res := d.cmds.DeviceWaitIdle(d.handle); res != vk.Success {
		return errs.DeviceLost("vkDeviceWaitIdle", fmt.Errorf("result %s", res))
	}
	return nil
}

// VramHeapStats is one heap's usage snapshot for the §4.H telemetry seam.
type VramHeapStats struct {
	Used         uint64
	Available    uint64
	DeviceLocal  bool
	HostVisible  bool
	HostCoherent bool
}

// VramStats reports the allocator's own bookkeeping (§4.H) as a single
// aggregate entry marked DeviceLocal: Used is the bytes handed out to
// resources and Available is the bytes held in VkDeviceMemory allocations.
// Usage is not broken down per heap, and neither the heap sizes from
// VkPhysicalDeviceMemoryProperties nor a live VK_EXT_memory_budget query
// (no wrapper exists in the vk surface) are consulted. See DESIGN.md.
func (d *Device) VramStats() (heaps []VramHeapStats, totalUsed uint64) {
	stats := d.allocator.Stats()
	totalUsed = stats.TotalUsed
	heaps = append(heaps, VramHeapStats{
		Used:        stats.TotalUsed,
		Available:   stats.TotalAllocated,
		DeviceLocal: true,
	})
	return heaps, totalUsed
}

// Close tears down the device and everything it owns; callers must have
// already drained in-flight frames via CompletePendingOperations.
func (d *Device) Close() {
	d.savePipelineCacheBlob()
	if d.scheduler != nil {
		d.scheduler.close(d)
	}
	d.cmds.DestroyDescriptorSetLayout(d.handle, d.emptySetLayout)
	d.cmds.DestroyCommandPool(d.handle, d.transientPool)
	d.cmds.DestroyCommandPool(d.handle, d.framePool)
	d.cmds.DestroyPipelineCache(d.handle, d.pipelineCache)
	d.cmds.DestroyDevice(d.handle)
	d.cmds.DestroyInstance(d.instance)
}

// PipelineCacheStats reports what happened to a persisted pipeline-cache
// blob at open time, beyond "load or silently discard": how many bytes were
// read from disk and from which path. Whether the driver accepted the
// blob's header is not reported: loadPipelineCacheBlob never parses the
// header, and the driver checks it at vkCreatePipelineCache time.
type PipelineCacheStats struct {
	LoadedBytes int
	Path        string
}

// PipelineCacheStats reports the cache blob state this device opened with.
func (d *Device) PipelineCacheStats() PipelineCacheStats {
	return PipelineCacheStats{LoadedBytes: d.pipelineCacheLoadedBytes, Path: d.pipelineCachePath}
}

// loadPipelineCacheBlob reads a persisted cache from disk; a missing or
// unreadable file yields an empty cache rather than an error, matching
// §3's "may be silently discarded if the device/driver signature does not
// match" — the driver itself rejects a mismatched blob's header at
// vkCreatePipelineCache time, so no signature check happens here.
func loadPipelineCacheBlob(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return data
}

// savePipelineCacheBlob persists the cache at shutdown (§3, §6).
func (d *Device) savePipelineCacheBlob() {
	if d.pipelineCachePath == "" {
		return
	}
	data := d.cmds.GetPipelineCacheData(d.handle, d.pipelineCache)
	if data == nil {
		return
	}
	_ = os.WriteFile(d.pipelineCachePath, data, 0o644)
}
