// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package gfxtypes

import "testing"

func TestUsableAsStorage(t *testing.T) {
	tests := []struct {
		usage BufferUsage
		want  bool
	}{
		{BufferUsageVertex, true},
		{BufferUsageIndex, true},
		{BufferUsageIndirect, true},
		{BufferUsageStorage, true},
		{BufferUsageUniform, false},
		{BufferUsageUploadStaging, false},
		{BufferUsageReadback, false},
	}
	for _, tt := range tests {
		b := &Buffer{Usage: tt.usage}
		if got := b.UsableAsStorage(); got != tt.want {
			t.Errorf("UsableAsStorage(%v) = %v, want %v", tt.usage, got, tt.want)
		}
	}
}
