// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

// Package gfxtypes is the uniform resource vocabulary the backend exposes
// to render-graph code: buffers, textures, samplers, render targets,
// binding sets, pipeline state bundles, and acceleration structures.
package gfxtypes

import (
	"github.com/solstice-engine/gpucore/memory"
	"github.com/solstice-engine/gpucore/vk"
)

// BufferUsage tags the intended role of a buffer; the backend factory maps
// this to concrete VkBufferUsageFlags plus an allocator memory hint.
type BufferUsage uint8

const (
	BufferUsageVertex BufferUsage = iota
	BufferUsageIndex
	BufferUsageUniform
	BufferUsageStorage
	BufferUsageIndirect
	BufferUsageUploadStaging
	BufferUsageReadback
)

// MemoryResidence selects where the allocator places a buffer's backing
// memory.
type MemoryResidence uint8

const (
	ResidenceDeviceLocal MemoryResidence = iota
	ResidenceHostVisibleMapped
	ResidenceDeviceLocalHostVisible // ReBAR
	ResidenceReadback
)

// BufferDescriptor is the factory input for CreateBuffer.
type BufferDescriptor struct {
	Size     uint64
	Usage    BufferUsage
	Residence MemoryResidence
	DebugName string
}

// Buffer is an owned GPU buffer. Size is fixed after creation; a resize
// request always produces a new Buffer (§3 invariant).
type Buffer struct {
	Handle    vk.Buffer
	Size      uint64
	Usage     BufferUsage
	Residence MemoryResidence
	DebugName string

	// DeviceAddress is populated when BufferUsageShaderDeviceAddress was
	// set (acceleration-structure inputs, indirect SBT regions).
	DeviceAddress uint64

	Block     *memory.Block
	Destroyed bool
}

// UsableAsStorage reports whether this buffer's usage tag additionally
// grants storage-buffer access, per §3: "indirect and vertex/index buffers
// are additionally usable as storage buffers so shaders can index them."
func (b *Buffer) UsableAsStorage() bool {
	switch b.Usage {
	case BufferUsageVertex, BufferUsageIndex, BufferUsageIndirect, BufferUsageStorage:
		return true
	default:
		return false
	}
}
