// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

package idmap

import (
	"cmp"
	"slices"
)

// Partition expands the validated point mappings into the complete
// ordered range sequence: all User ranges first, then all Group
// ranges, each class sorted by ascending container id and covering
// [0, SpaceSize) with no gaps and no overlaps.
//
// Both classes are always emitted. A class with no points of its own
// still gets a single full-space filler, because the container config
// needs an entry for every class even when the caller only mapped the
// other one.
//
// The result is a pure function of the input: the same points always
// produce the identical sequence.
func Partition(points []Mapping) ([]Range, error) {
	var ranges []Range
	for _, class := range []Class{User, Group} {
		classRanges, err := partitionClass(class, points)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, classRanges...)
	}
	return ranges, nil
}

// partitionClass walks the sorted points of one class with a cursor,
// emitting a filler range for every gap and an exact single-id range
// for every point.
func partitionClass(class Class, points []Mapping) ([]Range, error) {
	var own []Mapping
	for _, p := range points {
		if p.Class == class {
			own = append(own, p)
		}
	}
	if len(own) == 0 {
		return []Range{{Class: class, ContainerStart: 0, HostStart: FillerOffset, Length: SpaceSize}}, nil
	}

	slices.SortFunc(own, func(a, b Mapping) int {
		return cmp.Compare(a.ContainerID, b.ContainerID)
	})

	ranges := make([]Range, 0, 2*len(own)+1)
	next := 0
	for _, p := range own {
		if p.ContainerID < next {
			// Two points share a container id; a covering partition
			// cannot map one id to two host ids.
			return nil, &ConflictError{Class: class, ContainerID: p.ContainerID}
		}
		if p.ContainerID > next {
			ranges = append(ranges, Range{
				Class:          class,
				ContainerStart: next,
				HostStart:      next + FillerOffset,
				Length:         p.ContainerID - next,
			})
		}
		ranges = append(ranges, Range{
			Class:          class,
			ContainerStart: p.ContainerID,
			HostStart:      p.HostID,
			Length:         1,
		})
		next = p.ContainerID + 1
	}
	if next < SpaceSize {
		ranges = append(ranges, Range{
			Class:          class,
			ContainerStart: next,
			HostStart:      next + FillerOffset,
			Length:         SpaceSize - next,
		})
	}
	return ranges, nil
}
