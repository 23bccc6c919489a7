// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

package idmap

import (
	"errors"
	"fmt"
)

// ErrNoInput is returned by Normalize when the caller supplied no
// mapping tokens and no per-class options at all. It signals a usage
// problem (nothing to do) rather than invalid data.
var ErrNoInput = errors.New("no id mappings specified")

// Side distinguishes which half of a mapping an id came from.
type Side int

const (
	// ContainerSide is the id inside the container.
	ContainerSide Side = iota
	// HostSide is the id on the host.
	HostSide
)

func (s Side) String() string {
	if s == HostSide {
		return "host"
	}
	return "container"
}

// OutOfRangeError reports a mapping id outside [MinID, MaxID].
type OutOfRangeError struct {
	Class Class
	Side  Side
	ID    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %s id %d is not in range %d-%d",
		e.Side, e.Class.Name(), e.ID, MinID, MaxID)
}

// ConflictError reports two mappings of the same class for the same
// container id. The covering-range invariant cannot be satisfied when
// one container id has two host ids.
type ConflictError struct {
	Class       Class
	ContainerID int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting %s mappings for container id %d",
		e.Class.Name(), e.ContainerID)
}
