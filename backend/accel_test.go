// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/vk"
)

type fakeAccelDescriptor struct {
	update, compaction bool
}

func (f fakeAccelDescriptor) AllowsUpdate() bool     { return f.update }
func (f fakeAccelDescriptor) AllowsCompaction() bool { return f.compaction }

func TestAccelBuildFlagsAlwaysPrefersFastTrace(t *testing.T) {
	flags := accelBuildFlags(fakeAccelDescriptor{})
	if flags&vk.BuildAccelerationStructurePreferFastTraceKHR == 0 {
		t.Error("expected PreferFastTrace to always be set")
	}
	if flags&vk.BuildAccelerationStructureAllowUpdateKHR != 0 {
		t.Error("did not expect AllowUpdate when descriptor disallows it")
	}
	if flags&vk.BuildAccelerationStructureAllowCompactionKHR != 0 {
		t.Error("did not expect AllowCompaction when descriptor disallows it")
	}
}

func TestAccelBuildFlagsAddsUpdateAndCompaction(t *testing.T) {
	flags := accelBuildFlags(fakeAccelDescriptor{update: true, compaction: true})
	if flags&vk.BuildAccelerationStructureAllowUpdateKHR == 0 {
		t.Error("expected AllowUpdate when descriptor allows it")
	}
	if flags&vk.BuildAccelerationStructureAllowCompactionKHR == 0 {
		t.Error("expected AllowCompaction when descriptor allows it")
	}
}
