// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"testing"

	"github.com/solstice-engine/gpucore/gfxtypes"
	"github.com/solstice-engine/gpucore/vk"
)

func TestAttachmentFormatNilTextureIsUndefined(t *testing.T) {
	if got := attachmentFormat(gfxtypes.AttachmentDescriptor{}); got != vk.FormatUndefined {
		t.Errorf("attachmentFormat(no texture) = %v, want Undefined", got)
	}
}

func TestAttachmentFormatUsesTextureDescriptor(t *testing.T) {
	a := gfxtypes.AttachmentDescriptor{Texture: &gfxtypes.Texture{Descriptor: gfxtypes.TextureDescriptor{Format: vk.FormatR8G8B8A8Unorm}}}
	if got := attachmentFormat(a); got != vk.FormatR8G8B8A8Unorm {
		t.Errorf("attachmentFormat() = %v, want R8G8B8A8Unorm", got)
	}
}

func TestAttachmentSamplesDefaultsToOne(t *testing.T) {
	a := gfxtypes.AttachmentDescriptor{Texture: &gfxtypes.Texture{}}
	if got := attachmentSamples(a); got != vk.SampleCount1 {
		t.Errorf("attachmentSamples(samples=0) = %v, want SampleCount1", got)
	}
	if got := attachmentSamples(gfxtypes.AttachmentDescriptor{}); got != vk.SampleCount1 {
		t.Errorf("attachmentSamples(no texture) = %v, want SampleCount1", got)
	}
}

func TestAttachmentSamplesUsesTextureDescriptor(t *testing.T) {
	a := gfxtypes.AttachmentDescriptor{Texture: &gfxtypes.Texture{Descriptor: gfxtypes.TextureDescriptor{Samples: vk.SampleCount4}}}
	if got := attachmentSamples(a); got != vk.SampleCount4 {
		t.Errorf("attachmentSamples() = %v, want SampleCount4", got)
	}
}
