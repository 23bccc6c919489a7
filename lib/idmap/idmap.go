// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

package idmap

const (
	// MinID is the smallest container or host id that may be mapped.
	// Id 0 is the root identifier; mapping it would grant
	// root-equivalent access on the host and is rejected.
	MinID = 1

	// MaxID is the largest container or host id that may be mapped.
	MaxID = 65536

	// SpaceSize is the number of ids in the namespace. Every class is
	// covered as the half-open interval [0, SpaceSize).
	SpaceSize = 65536

	// FillerOffset is added to a container id to derive the default
	// host id for ids the caller did not map explicitly. 100000 is the
	// conventional subordinate-id base, safely above real host ids.
	FillerOffset = 100000
)

// Class identifies which id namespace a mapping belongs to.
type Class int

const (
	// User is the user-id (uid) namespace.
	User Class = iota
	// Group is the group-id (gid) namespace.
	Group
)

// String returns the single-letter class tag used in lxc.idmap lines.
func (c Class) String() string {
	if c == Group {
		return "g"
	}
	return "u"
}

// Name returns the spelled-out class name for error messages.
func (c Class) Name() string {
	if c == Group {
		return "group"
	}
	return "user"
}

// Mapping is one explicit container-id to host-id point mapping.
// Mappings are immutable once parsed.
type Mapping struct {
	Class       Class
	ContainerID int
	HostID      int
}

// Range maps the container ids [ContainerStart, ContainerStart+Length)
// one-to-one onto the host ids [HostStart, HostStart+Length).
type Range struct {
	Class          Class
	ContainerStart int
	HostStart      int
	Length         int
}

// Exact reports whether the range is a single-id mapping produced from
// an explicit caller-specified point, as opposed to a filler.
func (r Range) Exact() bool {
	return r.Length == 1 && r.HostStart != r.ContainerStart+FillerOffset
}
