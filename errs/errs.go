// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

// Package errs defines the error taxonomy the backend reports through,
// following the teacher's avoidance of a logging framework: every
// diagnostic is an error value. Each constructor returns a *Diagnostic
// whose Unwrap yields its category sentinel, so errors.Is tests the
// category; the underlying cause is kept in Diagnostic.Err.
package errs

import "fmt"

// Sentinel categories. Category checks use errors.Is against these.
var (
	ErrFatalCapability = fmt.Errorf("fatal: required capability missing")
	ErrFatalCreate      = fmt.Errorf("fatal: object creation failed")
	ErrFatalShader      = fmt.Errorf("fatal: shader reflection mismatch")
	ErrDeviceLost       = fmt.Errorf("fatal: device lost")
	ErrSwapchainOutOfDate = fmt.Errorf("recoverable: swapchain out of date")
	ErrSwapchainSuboptimal = fmt.Errorf("recoverable: swapchain suboptimal")
	ErrLogicViolation   = fmt.Errorf("fatal: API contract violated")
)

// Diagnostic carries the offending site (a resource name, shader file id,
// or call-site description) alongside the wrapped sentinel, mirroring how
// the teacher's fmt.Errorf("vulkan: %s: %w", call, err) call sites name the
// failing Vulkan entry point.
type Diagnostic struct {
	Category error
	Site     string
	Err      error
}

func (d *Diagnostic) Error() string {
	if d.Err != nil {
		return fmt.Sprintf("%s: %s: %v", d.Category, d.Site, d.Err)
	}
	return fmt.Sprintf("%s: %s", d.Category, d.Site)
}

func (d *Diagnostic) Unwrap() error { return d.Category }

func Capability(site string, err error) error {
	return &Diagnostic{Category: ErrFatalCapability, Site: site, Err: err}
}

func Create(site string, err error) error {
	return &Diagnostic{Category: ErrFatalCreate, Site: site, Err: err}
}

func Shader(site string, err error) error {
	return &Diagnostic{Category: ErrFatalShader, Site: site, Err: err}
}

func DeviceLost(site string, err error) error {
	return &Diagnostic{Category: ErrDeviceLost, Site: site, Err: err}
}

func Logic(site string) error {
	return &Diagnostic{Category: ErrLogicViolation, Site: site}
}

func OutOfDate(site string) error {
	return &Diagnostic{Category: ErrSwapchainOutOfDate, Site: site}
}

func Suboptimal(site string) error {
	return &Diagnostic{Category: ErrSwapchainSuboptimal, Site: site}
}
