// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

package idmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize parses the raw command-line tokens into the flat list of
// point mappings the partitioner consumes. Combined tokens contribute
// one User and one Group point each; user and group option tokens
// contribute one point of their fixed class. Points appear in input
// order (combined tokens, then user options, then group options); the
// partitioner re-sorts per class.
//
// Returns ErrNoInput when all three token lists are empty, and an
// *OutOfRangeError for the first id outside [MinID, MaxID].
func Normalize(mappings, users, groups []string) ([]Mapping, error) {
	if len(mappings) == 0 && len(users) == 0 && len(groups) == 0 {
		return nil, ErrNoInput
	}

	var points []Mapping
	for _, token := range mappings {
		parsed, err := ParseMapping(token)
		if err != nil {
			return nil, err
		}
		points = append(points, parsed...)
	}
	for _, token := range users {
		point, err := ParseIDPair(token, User)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	for _, token := range groups {
		point, err := ParseIDPair(token, Group)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	for _, p := range points {
		if p.ContainerID < MinID || p.ContainerID > MaxID {
			return nil, &OutOfRangeError{Class: p.Class, Side: ContainerSide, ID: p.ContainerID}
		}
		if p.HostID < MinID || p.HostID > MaxID {
			return nil, &OutOfRangeError{Class: p.Class, Side: HostSide, ID: p.HostID}
		}
	}
	return points, nil
}

// ParseMapping parses a combined mapping token of the form
//
//	lxc_uid[:lxc_gid][=host_uid[:host_gid]]
//
// into one User and one Group point. An omitted host side defaults to
// the container side; an omitted gid defaults to the uid on the same
// side.
func ParseMapping(token string) ([]Mapping, error) {
	containerSpec, hostSpec, err := splitPair(token, "=")
	if err != nil {
		return nil, fmt.Errorf("mapping %q: %w", token, err)
	}
	containerUID, containerGID, err := splitPair(containerSpec, ":")
	if err != nil {
		return nil, fmt.Errorf("mapping %q: %w", token, err)
	}
	hostUID, hostGID, err := splitPair(hostSpec, ":")
	if err != nil {
		return nil, fmt.Errorf("mapping %q: %w", token, err)
	}

	ids, err := parseIDs(token, containerUID, containerGID, hostUID, hostGID)
	if err != nil {
		return nil, err
	}
	return []Mapping{
		{Class: User, ContainerID: ids[0], HostID: ids[2]},
		{Class: Group, ContainerID: ids[1], HostID: ids[3]},
	}, nil
}

// ParseIDPair parses a single-class option token of the form
//
//	id[=host_id]
//
// into one point of the given class. An omitted host id defaults to
// the container id.
func ParseIDPair(token string, class Class) (Mapping, error) {
	containerSpec, hostSpec, err := splitPair(token, "=")
	if err != nil {
		return Mapping{}, fmt.Errorf("%s mapping %q: %w", class.Name(), token, err)
	}
	ids, err := parseIDs(token, containerSpec, hostSpec)
	if err != nil {
		return Mapping{}, err
	}
	return Mapping{Class: class, ContainerID: ids[0], HostID: ids[1]}, nil
}

// splitPair splits token once on sep. A missing right side is a copy
// of the left side. Empty segments and repeated separators are
// rejected rather than silently coerced.
func splitPair(token, sep string) (left, right string, err error) {
	parts := strings.Split(token, sep)
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return "", "", fmt.Errorf("empty id")
		}
		return parts[0], parts[0], nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("empty segment around %q", sep)
		}
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("more than one %q", sep)
	}
}

// parseIDs converts the split segments of token to integers, failing
// on the first non-numeric segment.
func parseIDs(token string, segments ...string) ([]int, error) {
	ids := make([]int, len(segments))
	for i, segment := range segments {
		id, err := strconv.Atoi(segment)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("mapping %q: invalid id %q", token, segment)
		}
		ids[i] = id
	}
	return ids, nil
}
