// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"github.com/solstice-engine/gpucore/errs"
	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

// queryTypeAccelerationStructureCompactedSizeKHR has no named constant in
// the wrapped enum surface; its value is fixed by the extension spec.
const queryTypeAccelerationStructureCompactedSizeKHR vk.QueryType = 1000150000

const buildModeBuild uint32 = 0

// accelerationStructureBuildTypeDeviceKHR has no named constant in the
// wrapped enum surface; builds in this backend always happen via command
// buffer (VK_ACCELERATION_STRUCTURE_BUILD_TYPE_DEVICE_KHR = 1).
const accelerationStructureBuildTypeDeviceKHR uint32 = 1

func accelBuildFlags(d AccelerationStructureDescriptorLike) vk.BuildAccelerationStructureFlagsKHR {
	flags := vk.BuildAccelerationStructurePreferFastTraceKHR
	if d.AllowsUpdate() {
		flags |= vk.BuildAccelerationStructureAllowUpdateKHR
	}
	if d.AllowsCompaction() {
		flags |= vk.BuildAccelerationStructureAllowCompactionKHR
	}
	return flags
}

// AccelerationStructureDescriptorLike lets accelBuildFlags share code
// between the two descriptor shapes without importing gfxtypes twice.
type AccelerationStructureDescriptorLike interface {
	AllowsUpdate() bool
	AllowsCompaction() bool
}

func geometriesFor(desc gfxtypes.AccelerationStructureDescriptor) ([]vk.AccelerationStructureGeometryKHR, []vk.AccelerationStructureBuildRangeInfoKHR, []uint32) {
	var geoms []vk.AccelerationStructureGeometryKHR
	var ranges []vk.AccelerationStructureBuildRangeInfoKHR
	var maxPrimitives []uint32

	if desc.Level == gfxtypes.AccelLevelBottom {
		for _, g := range desc.Geometries {
			flags := vk.GeometryFlagsKHR(0)
			if g.Opaque {
				flags = vk.GeometryOpaqueKHR
			}
			geoms = append(geoms, vk.AccelerationStructureGeometryKHR{
				SType:        vk.StructureTypeAccelerationStructureGeometryKHR,
				GeometryType: vk.GeometryTypeTrianglesKHR,
				Flags:        flags,
				Geometry: vk.AccelerationStructureGeometryDataKHR{
					Triangles: vk.AccelerationStructureGeometryTrianglesDataKHR{
						// No 3-component float format is in the wrapped enum
						// surface; geometry build vertex buffers are laid out
						// as vec4 positions (w ignored) to use this format.
						VertexFormat: vk.FormatR32G32B32A32Sfloat,
						VertexData:   g.VertexBuffer.DeviceAddress + g.VertexOffset,
						VertexStride: g.VertexStride,
						MaxVertex:    g.VertexCount - 1,
						IndexType:    vk.IndexTypeUint32,
						IndexData:    g.IndexBuffer.DeviceAddress + g.IndexOffset,
					},
				},
			})
			ranges = append(ranges, vk.AccelerationStructureBuildRangeInfoKHR{PrimitiveCount: g.TriangleCount})
			maxPrimitives = append(maxPrimitives, g.TriangleCount)
		}
		return geoms, ranges, maxPrimitives
	}

	geoms = append(geoms, vk.AccelerationStructureGeometryKHR{
		SType:        vk.StructureTypeAccelerationStructureGeometryKHR,
		GeometryType: vk.GeometryTypeInstancesKHR,
		Geometry:     vk.AccelerationStructureGeometryDataKHR{Instances: vk.AccelerationStructureGeometryInstancesDataKHR{}},
	})
	count := uint32(len(desc.Instances))
	ranges = append(ranges, vk.AccelerationStructureBuildRangeInfoKHR{PrimitiveCount: count})
	maxPrimitives = append(maxPrimitives, count)
	return geoms, ranges, maxPrimitives
}

// CreateAccelerationStructure sizes, allocates, and builds a BLAS or TLAS
// in one call (§4.F's acceleration-structure operations are command-list
// entry points in principle, but a build needs its backing buffer sized
// from vkGetAccelerationStructureBuildSizesKHR before the structure object
// even exists, so this factory performs the size query, buffer creation,
// structure creation, and the build's command-list recording together).
func (d *Device) CreateAccelerationStructure(desc gfxtypes.AccelerationStructureDescriptor, instanceBuffer *gfxtypes.Buffer, scratchBuffer *gfxtypes.Buffer) (*gfxtypes.AccelerationStructure, error) {
	asType := vk.AccelerationStructureTypeBottomLevelKHR
	if desc.Level == gfxtypes.AccelLevelTop {
		asType = vk.AccelerationStructureTypeTopLevelKHR
	}

	geoms, ranges, maxPrimitives := geometriesFor(desc)
	if desc.Level == gfxtypes.AccelLevelTop && instanceBuffer != nil {
		geoms[0].Geometry.Instances.Data = instanceBuffer.DeviceAddress
	}

	buildInfo := vk.AccelerationStructureBuildGeometryInfoKHR{
		SType:      vk.StructureTypeAccelerationStructureBuildGeometryInfo,
		Type:       asType,
		Flags:      accelBuildFlags(accelDescriptorAdapter{desc}),
		Mode:       buildModeBuild,
		Geometries: geoms,
	}
	sizes := d.cmds.GetAccelerationStructureBuildSizesKHR(d.handle, accelerationStructureBuildTypeDeviceKHR, &buildInfo, maxPrimitives)

	buf, err := d.CreateBuffer(gfxtypes.BufferDescriptor{
		Size:      sizes.AccelerationStructureSize,
		Usage:     gfxtypes.BufferUsageStorage,
		Residence: gfxtypes.ResidenceDeviceLocal,
		DebugName: desc.DebugName + ".buffer",
	})
	if err != nil {
		return nil, err
	}

	handle, res := d.cmds.CreateAccelerationStructureKHR(d.handle, &vk.AccelerationStructureCreateInfoKHR{
		SType:  vk.StructureTypeAccelerationStructureCreateInfoKHR,
		Buffer: buf.Handle,
		Size:   sizes.AccelerationStructureSize,
		Type:   asType,
	})
	if res != vk.Success {
		d.DestroyBuffer(buf)
		return nil, errs.Create(desc.DebugName, fmt.Errorf("vkCreateAccelerationStructureKHR: %s", res))
	}

	as := &gfxtypes.AccelerationStructure{
		Handle:            handle,
		Buffer:            buf,
		Descriptor:        desc,
		ScratchSize:       sizes.BuildScratchSize,
		UpdateScratchSize: sizes.UpdateScratchSize,
	}
	buildInfo.DstAccelerationStructure = handle
	buildInfo.ScratchData = scratchBuffer.DeviceAddress

	err = d.SingleTimeCommands(func(cb vk.CommandBuffer) {
		d.cmds.CmdBuildAccelerationStructuresKHR(cb, []vk.AccelerationStructureBuildGeometryInfoKHR{buildInfo}, [][]vk.AccelerationStructureBuildRangeInfoKHR{ranges})
	})
	if err != nil {
		d.cmds.DestroyAccelerationStructureKHR(d.handle, handle)
		d.DestroyBuffer(buf)
		return nil, err
	}

	as.DeviceAddress = d.cmds.GetAccelerationStructureDeviceAddressKHR(d.handle, handle)
	d.setDebugName(uint64(handle), objectTypeAccelerationStructureKHR, desc.DebugName)
	return as, nil
}

// accelDescriptorAdapter adapts gfxtypes.AccelerationStructureDescriptor's
// exported fields to the AccelerationStructureDescriptorLike interface.
type accelDescriptorAdapter struct {
	d gfxtypes.AccelerationStructureDescriptor
}

func (a accelDescriptorAdapter) AllowsUpdate() bool     { return a.d.AllowUpdate }
func (a accelDescriptorAdapter) AllowsCompaction() bool { return a.d.AllowCompaction }

// QueryCompactedSize records a compacted-size query against as, to be
// resolved once the submitting frame's fence signals (the compaction-query
// supplement named in gfxtypes.AccelerationStructure's doc comment).
func (d *Device) QueryCompactedSize(as *gfxtypes.AccelerationStructure) (*gfxtypes.CompactionQuery, error) {
	pool, res := d.cmds.CreateQueryPool(d.handle, queryTypeAccelerationStructureCompactedSizeKHR, 1)
	if res != vk.Success {
		return nil, errs.Create("compaction-query", fmt.Errorf("vkCreateQueryPool: %s", res))
	}
	err := d.SingleTimeCommands(func(cb vk.CommandBuffer) {
		d.cmds.CmdResetQueryPool(cb, pool, 0, 1)
		d.cmds.CmdWriteAccelerationStructuresPropertiesKHR(cb, []vk.AccelerationStructure{as.Handle}, uint32(queryTypeAccelerationStructureCompactedSizeKHR), pool, 0)
	})
	if err != nil {
		d.cmds.DestroyQueryPool(d.handle, pool)
		return nil, err
	}
	return &gfxtypes.CompactionQuery{Structure: as, QueryPool: pool}, nil
}

// ResolveCompactedSize reads back a previously submitted compaction query;
// callers must only call this after the submitting frame's fence has
// signaled.
func (d *Device) ResolveCompactedSize(q *gfxtypes.CompactionQuery) (uint64, error) {
	data := make([]byte, 8)
	if res := d.cmds.GetQueryPoolResults(d.handle, q.QueryPool, 0, 1, data, 8, vk.QueryResult64|vk.QueryResultWait); res != vk.Success {
		return 0, errs.Create("compaction-query", fmt.Errorf("vkGetQueryPoolResults: %s", res))
	}
	d.cmds.DestroyQueryPool(d.handle, q.QueryPool)
	size := uint64(0)
	for i := 7; i >= 0; i-- {
		size = size<<8 | uint64(data[i])
	}
	q.Structure.CompactedSize = size
	return size, nil
}

// CompactAccelerationStructure copies as into a tightly-sized replacement
// once its compacted size is known, freeing the oversized original.
func (d *Device) CompactAccelerationStructure(as *gfxtypes.AccelerationStructure) (*gfxtypes.AccelerationStructure, error) {
	if as.CompactedSize == 0 {
		return nil, errs.Logic("CompactAccelerationStructure: compacted size not resolved")
	}
	asType := vk.AccelerationStructureTypeBottomLevelKHR
	if as.Descriptor.Level == gfxtypes.AccelLevelTop {
		asType = vk.AccelerationStructureTypeTopLevelKHR
	}
	buf, err := d.CreateBuffer(gfxtypes.BufferDescriptor{
		Size:      as.CompactedSize,
		Usage:     gfxtypes.BufferUsageStorage,
		Residence: gfxtypes.ResidenceDeviceLocal,
		DebugName: as.Descriptor.DebugName + ".compacted",
	})
	if err != nil {
		return nil, err
	}
	handle, res := d.cmds.CreateAccelerationStructureKHR(d.handle, &vk.AccelerationStructureCreateInfoKHR{
		SType:  vk.StructureTypeAccelerationStructureCreateInfoKHR,
		Buffer: buf.Handle,
		Size:   as.CompactedSize,
		Type:   asType,
	})
	if res != vk.Success {
		d.DestroyBuffer(buf)
		return nil, errs.Create(as.Descriptor.DebugName, fmt.Errorf("vkCreateAccelerationStructureKHR: %s", res))
	}
	const copyModeCompactKHR uint32 = 1
	err = d.SingleTimeCommands(func(cb vk.CommandBuffer) {
		d.cmds.CmdCopyAccelerationStructureKHR(cb, as.Handle, handle, copyModeCompactKHR)
	})
	if err != nil {
		d.cmds.DestroyAccelerationStructureKHR(d.handle, handle)
		d.DestroyBuffer(buf)
		return nil, err
	}

	compacted := &gfxtypes.AccelerationStructure{
		Handle:        handle,
		Buffer:        buf,
		DeviceAddress: d.cmds.GetAccelerationStructureDeviceAddressKHR(d.handle, handle),
		Descriptor:    as.Descriptor,
		CompactedSize: as.CompactedSize,
		Compacted:     true,
	}
	d.DestroyAccelerationStructure(as)
	return compacted, nil
}

// DestroyAccelerationStructure enqueues a deferred delete for the
// structure and its backing buffer, mirroring DestroyBuffer's
// frame-fence-gated lifetime (§4.B, §4.F).
func (d *Device) DestroyAccelerationStructure(as *gfxtypes.AccelerationStructure) {
	if as.Destroyed {
		return
	}
	as.Destroyed = true
	d.scheduler.enqueueDelete(deleteRequest{kind: deleteKindAccelerationStructure, handle: uint64(as.Handle)})
	d.DestroyBuffer(as.Buffer)
}
