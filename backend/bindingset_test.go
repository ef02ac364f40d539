// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/gfxtypes"
)

func TestPadTexturesRepeatsFirstElement(t *testing.T) {
	a, b := &gfxtypes.Texture{}, &gfxtypes.Texture{}
	got := padTextures([]*gfxtypes.Texture{a, b}, 4)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[0] != a || got[1] != b {
		t.Error("expected the original elements to be preserved in place")
	}
	if got[2] != a || got[3] != a {
		t.Error("expected padding slots to repeat the first element")
	}
}

func TestPadTexturesNoopWhenAlreadyFull(t *testing.T) {
	arr := []*gfxtypes.Texture{{}, {}, {}}
	got := padTextures(arr, 2)
	if len(got) != 3 {
		t.Errorf("len = %d, want input left untouched at 3", len(got))
	}
}

func TestPadTexturesEmptyInputStaysEmpty(t *testing.T) {
	got := padTextures(nil, 4)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0 (nothing to repeat)", len(got))
	}
}

func TestPadBuffersRepeatsFirstElement(t *testing.T) {
	a := &gfxtypes.Buffer{}
	got := padBuffers([]*gfxtypes.Buffer{a}, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, v := range got {
		if v != a {
			t.Errorf("got[%d] = %v, want %v", i, v, a)
		}
	}
}
