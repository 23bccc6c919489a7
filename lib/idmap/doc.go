// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

// Package idmap computes complete user-namespace id mappings for
// unprivileged LXC containers from a sparse set of caller-specified
// point mappings.
//
// The caller supplies individual container-id to host-id mappings for
// the user and group namespaces. [Normalize] parses and validates the
// raw mapping tokens into [Mapping] values, and [Partition] expands
// them into an ordered, gapless sequence of [Range] records covering
// the whole 16-bit id space once per class: every explicit point gets
// its own single-id range, and everything between points is filled
// with default ranges offset by [FillerOffset].
package idmap
