// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/solstice-engine/gpucore/vk"
)

// Config tunes block granularity for the suballocator.
type Config struct {
	// BlockSize is the size of each VkDeviceMemory block requested from the
	// driver; allocations below DedicatedThreshold suballocate from blocks
	// this size, allocations at or above it get a dedicated VkDeviceMemory.
	BlockSize uint64

	// MinAllocationSize is the smallest granularity a suballocation rounds
	// up to, keeping fragmentation bounded.
	MinAllocationSize uint64

	// DedicatedThreshold is the size above which an allocation bypasses
	// pooling entirely.
	DedicatedThreshold uint64
}

func DefaultConfig() Config {
	return Config{
		BlockSize:          64 << 20,
		MinAllocationSize:  256,
		DedicatedThreshold: 32 << 20,
	}
}

var (
	ErrNoSuitableMemoryType = errors.New("memory: no suitable memory type for request")
	ErrAllocationFailed     = errors.New("memory: device memory allocation failed")
	ErrInvalidBlock         = errors.New("memory: block does not belong to this allocator")
)

// freeRegion is a gap in a pool block available for reuse.
type freeRegion struct {
	offset uint64
	size   uint64
}

// poolBlock is one VkDeviceMemory allocation suballocated with a simple
// offset bump plus coalescing free list. This trades the teacher's buddy
// allocator (hal/vulkan/memory/buddy.go) for a smaller, easier to audit
// first-fit allocator, since SPEC_FULL's resource churn (frame-scoped
// buffers, long-lived textures) does not need buddy-style power-of-two
// splitting to stay low-fragmentation. See DESIGN.md.
type poolBlock struct {
	memory vk.DeviceMemory
	size   uint64
	used   uint64
	free   []freeRegion
}

func newPoolBlock(memory vk.DeviceMemory, size uint64) *poolBlock {
	return &poolBlock{memory: memory, size: size, free: []freeRegion{{offset: 0, size: size}}}
}

func alignUp(v, align uint64) uint64 {
	if align == 0 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

func (p *poolBlock) alloc(size, align uint64) (uint64, bool) {
	for i, r := range p.free {
		start := alignUp(r.offset, align)
		end := start + size
		if end > r.offset+r.size {
			continue
		}
		// Shrink/replace the free region, keeping any leftover head/tail.
		remaining := make([]freeRegion, 0, len(p.free)+1)
		remaining = append(remaining, p.free[:i]...)
		if start > r.offset {
			remaining = append(remaining, freeRegion{offset: r.offset, size: start - r.offset})
		}
		if end < r.offset+r.size {
			remaining = append(remaining, freeRegion{offset: end, size: r.offset + r.size - end})
		}
		remaining = append(remaining, p.free[i+1:]...)
		p.free = remaining
		p.used += size
		return start, true
	}
	return 0, false
}

func (p *poolBlock) release(offset, size uint64) {
	p.used -= size
	p.free = append(p.free, freeRegion{offset: offset, size: size})
	// Coalesce adjacent regions; O(n log n) is fine at pool-block scale.
	merged := true
	for merged {
		merged = false
		for i := 0; i < len(p.free); i++ {
			for j := i + 1; j < len(p.free); j++ {
				a, b := p.free[i], p.free[j]
				if a.offset+a.size == b.offset {
					p.free[i].size += b.size
					p.free = append(p.free[:j], p.free[j+1:]...)
					merged = true
					break
				}
				if b.offset+b.size == a.offset {
					p.free[j].size += a.size
					p.free[i] = p.free[j]
					p.free = append(p.free[:j], p.free[j+1:]...)
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
	}
}

// Pool manages every block allocated for a single Vulkan memory type.
type Pool struct {
	memoryTypeIndex uint32
	blockSize       uint64
	minAlloc        uint64
	blocks          []*poolBlock
}

// Stats reports allocator-wide counters, exposed as the "VRAM heap
// telemetry" supplement (SPEC_FULL §4.H) modeled on the teacher's
// AllocatorStats.
type Stats struct {
	TotalAllocated       uint64
	TotalUsed            uint64
	PooledAllocations    uint64
	DedicatedAllocations uint64
	AllocationCount      uint64
}

// Allocator is the GPU memory allocator backend.Device owns. Safe for
// concurrent use, though the backend's single-thread contract means it is
// normally called from one goroutine.
type Allocator struct {
	mu sync.Mutex

	cmds     *vk.Commands
	device   vk.Device
	config   Config
	selector *TypeSelector

	pools     []*Pool
	dedicated map[vk.DeviceMemory]*Block

	stats Stats
}

func NewAllocator(cmds *vk.Commands, device vk.Device, props DeviceMemoryProperties, config Config) *Allocator {
	if config.BlockSize == 0 {
		config = DefaultConfig()
	}
	return &Allocator{
		cmds:      cmds,
		device:    device,
		config:    config,
		selector:  NewTypeSelector(props),
		pools:     make([]*Pool, len(props.MemoryTypes)),
		dedicated: make(map[vk.DeviceMemory]*Block),
	}
}

// Alloc satisfies req, using a dedicated VkDeviceMemory above
// config.DedicatedThreshold and a suballocated pool block otherwise.
func (a *Allocator) Alloc(req AllocationRequest) (*Block, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	typeIndex, ok := a.selector.Select(req)
	if !ok {
		return nil, ErrNoSuitableMemoryType
	}

	if req.Size >= a.config.DedicatedThreshold {
		return a.allocDedicated(typeIndex, req.Size)
	}

	pool := a.pools[typeIndex]
	if pool == nil {
		pool = &Pool{memoryTypeIndex: typeIndex, blockSize: a.config.BlockSize, minAlloc: a.config.MinAllocationSize}
		a.pools[typeIndex] = pool
	}

	size := alignUp(req.Size, a.config.MinAllocationSize)
	align := req.Alignment
	if align == 0 {
		align = a.config.MinAllocationSize
	}

	for _, blk := range pool.blocks {
		if offset, ok := blk.alloc(size, align); ok {
			a.stats.TotalUsed += size
			a.stats.PooledAllocations++
			a.stats.AllocationCount++
			return &Block{Memory: blk.memory, Offset: offset, Size: size, memoryTypeIndex: typeIndex}, nil
		}
	}

	blockSize := pool.blockSize
	if size > blockSize {
		blockSize = size
	}
	mem, err := a.allocateDeviceMemory(typeIndex, blockSize)
	if err != nil {
		return nil, err
	}
	blk := newPoolBlock(mem, blockSize)
	pool.blocks = append(pool.blocks, blk)
	offset, ok := blk.alloc(size, align)
	if !ok {
		return nil, fmt.Errorf("%w: fresh block too small for %d bytes", ErrAllocationFailed, size)
	}
	a.stats.TotalAllocated += blockSize
	a.stats.TotalUsed += size
	a.stats.PooledAllocations++
	a.stats.AllocationCount++
	return &Block{Memory: mem, Offset: offset, Size: size, memoryTypeIndex: typeIndex}, nil
}

func (a *Allocator) allocDedicated(typeIndex uint32, size uint64) (*Block, error) {
	mem, err := a.allocateDeviceMemory(typeIndex, size)
	if err != nil {
		return nil, err
	}
	block := &Block{Memory: mem, Offset: 0, Size: size, memoryTypeIndex: typeIndex, dedicated: true}
	a.dedicated[mem] = block
	a.stats.TotalAllocated += size
	a.stats.TotalUsed += size
	a.stats.DedicatedAllocations++
	a.stats.AllocationCount++
	return block, nil
}

func (a *Allocator) allocateDeviceMemory(typeIndex uint32, size uint64) (vk.DeviceMemory, error) {
	info := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  size,
		MemoryTypeIndex: typeIndex,
	}
	mem, res := a.cmds.AllocateMemory(a.device, &info)
	if res != vk.Success {
		return 0, fmt.Errorf("%w: vkAllocateMemory returned %s", ErrAllocationFailed, res)
	}
	return mem, nil
}

// Free returns block to its pool, or frees the underlying VkDeviceMemory
// outright for dedicated allocations.
func (a *Allocator) Free(block *Block) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if block.dedicated {
		if _, ok := a.dedicated[block.Memory]; !ok {
			return ErrInvalidBlock
		}
		delete(a.dedicated, block.Memory)
		a.cmds.FreeMemory(a.device, block.Memory)
		a.stats.TotalAllocated -= block.Size
		a.stats.TotalUsed -= block.Size
		a.stats.DedicatedAllocations--
		a.stats.AllocationCount--
		return nil
	}

	if int(block.memoryTypeIndex) >= len(a.pools) || a.pools[block.memoryTypeIndex] == nil {
		return ErrInvalidBlock
	}
	pool := a.pools[block.memoryTypeIndex]
	for _, blk := range pool.blocks {
		if blk.memory == block.Memory {
			blk.release(block.Offset, block.Size)
			a.stats.TotalUsed -= block.Size
			a.stats.PooledAllocations--
			a.stats.AllocationCount--
			return nil
		}
	}
	return ErrInvalidBlock
}

// Map maps a block's memory for CPU access; the caller is responsible for
// only mapping host-visible blocks.
func (a *Allocator) Map(block *Block) (uintptr, error) {
	ptr, res := a.cmds.MapMemory(a.device, block.Memory, block.Offset, block.Size)
	if res != vk.Success {
		return 0, fmt.Errorf("memory: vkMapMemory returned %s", res)
	}
	block.MappedPtr = uintptr(ptr)
	return block.MappedPtr, nil
}

func (a *Allocator) Unmap(block *Block) {
	a.cmds.UnmapMemory(a.device, block.Memory)
	block.MappedPtr = 0
}

func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

func (a *Allocator) Selector() *TypeSelector { return a.selector }
