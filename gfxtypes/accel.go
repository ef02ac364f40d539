// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import "github.com/solstice-engine/gpucore/vk"

// AccelerationStructureLevel distinguishes bottom-level (geometry) from
// top-level (instance) acceleration structures.
type AccelerationStructureLevel uint8

const (
	AccelLevelBottom AccelerationStructureLevel = iota
	AccelLevelTop
)

// GeometryDescriptor describes one triangle-mesh geometry feeding a
// bottom-level build, addressed by device address per
// VkAccelerationStructureGeometryTrianglesDataKHR.
type GeometryDescriptor struct {
	VertexBuffer  *Buffer
	VertexOffset  uint64
	VertexStride  uint64
	VertexCount   uint32
	IndexBuffer   *Buffer
	IndexOffset   uint64
	TriangleCount uint32
	Opaque        bool
}

// InstanceDescriptor is one entry of a top-level build's instance buffer,
// referencing a bottom-level structure's device address.
type InstanceDescriptor struct {
	Blas           *AccelerationStructure
	Transform      [12]float32 // row-major 3x4
	InstanceID     uint32
	Mask           uint8
	HitGroupIndex  uint32
}

// AccelerationStructureDescriptor is the factory input for
// CreateAccelerationStructure.
type AccelerationStructureDescriptor struct {
	Level      AccelerationStructureLevel
	Geometries []GeometryDescriptor
	Instances  []InstanceDescriptor
	AllowUpdate   bool
	AllowCompaction bool
	DebugName  string
}

// AccelerationStructure owns the backing buffer and VkAccelerationStructureKHR
// handle for one BLAS or TLAS.
type AccelerationStructure struct {
	Handle        vk.AccelerationStructure
	Buffer        *Buffer
	DeviceAddress uint64
	Descriptor    AccelerationStructureDescriptor

	// ScratchSize/UpdateScratchSize are read back from
	// vkGetAccelerationStructureBuildSizesKHR so the caller can size a
	// shared scratch buffer for the build batch.
	ScratchSize       uint64
	UpdateScratchSize uint64

	// CompactedSize is populated only after a compaction query has been
	// read back; zero means compaction was either not requested or has not
	// completed yet. This is the compaction-query supplement: building a
	// BLAS at full size, then querying and copying it into a tighter
	// buffer once the device reports the compacted size, which the
	// distilled surface omitted but the original engine always performs
	// for static-geometry BLAS.
	CompactedSize uint64
	Compacted     bool

	Destroyed bool
}

// CompactionQuery tracks an in-flight
// VK_QUERY_TYPE_ACCELERATION_STRUCTURE_COMPACTED_SIZE_KHR query for one
// acceleration structure, resolved once the submitting frame's fence signals.
type CompactionQuery struct {
	Structure   *AccelerationStructure
	QueryPool   vk.QueryPool
	QueryIndex  uint32
	FrameFence  uint64
}
