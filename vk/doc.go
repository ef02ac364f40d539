// Copyright 2025 The Solstice Authors
// SPDX-License-Identifier: MIT

// Package vk is a minimal, hand-maintained set of Vulkan 1.3 bindings.
//
// Unlike a cgo wrapper, functions are resolved at runtime through
// vkGetInstanceProcAddr/vkGetDeviceProcAddr and invoked through goffi, so
// this package never links against the Vulkan loader at build time. Only
// the subset of the Vulkan API exercised by package backend is declared
// here; it is not a full binding of vk.xml.
//
// # Usage
//
//	if err := vk.Init(); err != nil {
//		return err
//	}
//	cmds := vk.NewCommands()
//	if err := cmds.LoadGlobal(); err != nil {
//		return err
//	}
//	// ... vkCreateInstance, then cmds.LoadInstance(instance) ...
//	// ... vkCreateDevice, then cmds.LoadDevice(device) ...
package vk
