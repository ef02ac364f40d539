// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

func TestToVkPushConstantRanges(t *testing.T) {
	ranges := []gfxtypes.PushConstantRange{
		{Offset: 0, Size: 64, Stages: vk.ShaderStageVertex},
		{Offset: 64, Size: 16, Stages: vk.ShaderStageFragment},
	}
	got := toVkPushConstantRanges(ranges)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i, r := range ranges {
		if got[i].Offset != r.Offset || got[i].Size != r.Size || got[i].StageFlags != r.Stages {
			t.Errorf("got[%d] = %+v, want fields matching %+v", i, got[i], r)
		}
	}
}

func TestToVkPushConstantRangesEmpty(t *testing.T) {
	got := toVkPushConstantRanges(nil)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
