// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import "testing"

func TestAlignUpRaytracing(t *testing.T) {
	tests := []struct {
		v, align, want uint64
	}{
		{0, 64, 0},
		{1, 64, 64},
		{64, 64, 64},
		{65, 64, 128},
		{32, 64, 64},
	}
	for _, tt := range tests {
		if got := alignUp(tt.v, tt.align); got != tt.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", tt.v, tt.align, got, tt.want)
		}
	}
}
