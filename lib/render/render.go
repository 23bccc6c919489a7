// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

// Package render formats partitioned id ranges into the text blocks
// the operator pastes into the container config and the subordinate
// id files. Output is written once to stdout; this package never
// touches the destination files itself.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lxc-tools/idmap/lib/idmap"
)

// headerStyle is applied to the instructional comment lines when color
// is enabled. The idmap and reservation lines themselves are always
// plain so they can be copy-pasted verbatim.
var headerStyle = lipgloss.NewStyle().Faint(true)

// Options control the rendered output.
type Options struct {
	// ContainerConfPath is shown in the config-fragment header.
	ContainerConfPath string

	// SubUIDPath and SubGIDPath are shown in the reservation headers.
	SubUIDPath string
	SubGIDPath string

	// Owner is the host account the reserved ids are granted to. The
	// container is created by root, so this is "root" by default.
	Owner string

	// Color styles the header comments with ANSI escapes.
	Color bool
}

// Output renders the complete tool output: the lxc.idmap config
// fragment followed by the subuid and subgid reservation blocks.
func Output(ranges []idmap.Range, opts Options) string {
	var b strings.Builder
	b.WriteString(ConfBlock(ranges, opts))
	b.WriteString("\n")
	b.WriteString(ReservationBlocks(ranges, opts))
	return b.String()
}

// ConfBlock renders one lxc.idmap line per range, user ranges before
// group ranges, in the order the partitioner emitted them.
func ConfBlock(ranges []idmap.Range, opts Options) string {
	var b strings.Builder
	b.WriteString(opts.header(fmt.Sprintf("# Add to %s:", opts.ContainerConfPath)))
	b.WriteString("\n")
	for _, r := range ranges {
		fmt.Fprintf(&b, "lxc.idmap = %s %d %d %d\n", r.Class, r.ContainerStart, r.HostStart, r.Length)
	}
	return b.String()
}

// ReservationBlocks renders the subuid and subgid entries that grant
// the owner account the explicitly mapped host ids. Filler ranges are
// not reserved; only the exact single-id mappings the caller asked
// for need host-side delegation.
func ReservationBlocks(ranges []idmap.Range, opts Options) string {
	var b strings.Builder
	b.WriteString(opts.header(fmt.Sprintf("# Add to %s:", opts.SubUIDPath)))
	b.WriteString("\n")
	writeReservations(&b, ranges, idmap.User, opts.Owner)
	b.WriteString("\n")
	b.WriteString(opts.header(fmt.Sprintf("# Add to %s:", opts.SubGIDPath)))
	b.WriteString("\n")
	writeReservations(&b, ranges, idmap.Group, opts.Owner)
	return b.String()
}

func writeReservations(b *strings.Builder, ranges []idmap.Range, class idmap.Class, owner string) {
	for _, r := range ranges {
		if r.Class == class && r.Exact() {
			fmt.Fprintf(b, "%s:%d:%d\n", owner, r.HostStart, r.Length)
		}
	}
}

func (o Options) header(line string) string {
	if !o.Color {
		return line
	}
	return headerStyle.Render(line)
}
