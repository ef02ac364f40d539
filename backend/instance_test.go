// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/vk"
)

func TestQueueFamilyIndexFindsFirstMatchingFamily(t *testing.T) {
	families := []vk.QueueFamilyProperties{
		{QueueFlags: computeQueueBit},
		{QueueFlags: graphicsQueueBit | computeQueueBit},
	}
	idx, ok := queueFamilyIndex(families, graphicsQueueBit)
	if !ok || idx != 1 {
		t.Errorf("queueFamilyIndex() = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestQueueFamilyIndexRequiresAllBits(t *testing.T) {
	families := []vk.QueueFamilyProperties{{QueueFlags: graphicsQueueBit}}
	if _, ok := queueFamilyIndex(families, graphicsQueueBit|computeQueueBit); ok {
		t.Error("expected no match when a family lacks one of the requested bits")
	}
}

func TestQueueFamilyIndexNoneFound(t *testing.T) {
	if _, ok := queueFamilyIndex(nil, graphicsQueueBit); ok {
		t.Error("expected no match against an empty family list")
	}
}
