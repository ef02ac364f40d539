// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solstice-engine/gpucore/gfxtypes"
)

func TestLoadPipelineCacheBlobEmptyPathReturnsNil(t *testing.T) {
	if got := loadPipelineCacheBlob(""); got != nil {
		t.Errorf("loadPipelineCacheBlob(\"\") = %v, want nil", got)
	}
}

func TestLoadPipelineCacheBlobMissingFileReturnsNil(t *testing.T) {
	if got := loadPipelineCacheBlob(filepath.Join(t.TempDir(), "does-not-exist.cache")); got != nil {
		t.Errorf("loadPipelineCacheBlob(missing) = %v, want nil", got)
	}
}

func TestLoadPipelineCacheBlobReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.cache")
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}
	got := loadPipelineCacheBlob(path)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %x, want %x", i, got[i], want[i])
		}
	}
}

func TestHasActiveCapability(t *testing.T) {
	caps := gfxtypes.NewCapabilitySet()
	caps.Enable(gfxtypes.CapabilityRayTracing)
	d := &Device{capabilities: caps}
	if !d.HasActiveCapability(gfxtypes.CapabilityRayTracing) {
		t.Error("expected CapabilityRayTracing to be active")
	}
	if d.HasActiveCapability(gfxtypes.CapabilityMeshShading) {
		t.Error("did not expect CapabilityMeshShading to be active")
	}
}

func TestPipelineCacheStats(t *testing.T) {
	d := &Device{pipelineCacheLoadedBytes: 128, pipelineCachePath: "/tmp/x.cache"}
	stats := d.PipelineCacheStats()
	if stats.LoadedBytes != 128 || stats.Path != "/tmp/x.cache" {
		t.Errorf("PipelineCacheStats() = %+v, want {128 /tmp/x.cache}", stats)
	}
}
