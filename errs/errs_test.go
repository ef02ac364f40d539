// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

package errs

import (
	"errors"
	"testing"
)

func TestConstructorsWrapTheirCategory(t *testing.T) {
	cause := errors.New("vkCreateBuffer returned VK_ERROR_OUT_OF_DEVICE_MEMORY")

	tests := []struct {
		name     string
		err      error
		category error
	}{
		{"Capability", Capability("rayTracingPipeline", cause), ErrFatalCapability},
		{"Create", Create("buffer:vertex", cause), ErrFatalCreate},
		{"Shader", Shader("frag.spv", cause), ErrFatalShader},
		{"DeviceLost", DeviceLost("vkQueueSubmit", cause), ErrDeviceLost},
		{"Logic", Logic("BindSet before BeginRendering"), ErrLogicViolation},
		{"OutOfDate", OutOfDate("vkAcquireNextImageKHR"), ErrSwapchainOutOfDate},
		{"Suboptimal", Suboptimal("vkQueuePresentKHR"), ErrSwapchainSuboptimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.category) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.category)
			}
		})
	}
}

func TestDiagnosticErrorIncludesSiteAndCause(t *testing.T) {
	cause := errors.New("result VK_ERROR_DEVICE_LOST")
	err := DeviceLost("vkQueueSubmit", cause)

	msg := err.Error()
	if msg == "" {
		t.Fatal("Error() returned empty string")
	}
	var d *Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("errors.As failed to unwrap %v into *Diagnostic", err)
	}
	if d.Site != "vkQueueSubmit" {
		t.Errorf("Site = %q, want %q", d.Site, "vkQueueSubmit")
	}
	if d.Err != cause {
		t.Errorf("Err = %v, want %v", d.Err, cause)
	}
}

func TestDiagnosticErrorWithoutCause(t *testing.T) {
	err := Logic("DrawIndexed without a bound index buffer")
	if got, want := err.Error(), ErrLogicViolation.Error()+": DrawIndexed without a bound index buffer"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
