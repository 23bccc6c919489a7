// Copyright 2026 The LXC Idmap Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"testing"

	"github.com/lxc-tools/idmap/lib/idmap"
)

func plainOptions() Options {
	return Options{
		ContainerConfPath: "/etc/pve/lxc/<container_id>.conf",
		SubUIDPath:        "/etc/subuid",
		SubGIDPath:        "/etc/subgid",
		Owner:             "root",
	}
}

func TestOutputSingleMapping(t *testing.T) {
	points := []idmap.Mapping{
		{Class: idmap.User, ContainerID: 1000, HostID: 1000},
		{Class: idmap.Group, ContainerID: 1000, HostID: 1000},
	}
	ranges, err := idmap.Partition(points)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}

	want := `# Add to /etc/pve/lxc/<container_id>.conf:
lxc.idmap = u 0 100000 1000
lxc.idmap = u 1000 1000 1
lxc.idmap = u 1001 101001 64535
lxc.idmap = g 0 100000 1000
lxc.idmap = g 1000 1000 1
lxc.idmap = g 1001 101001 64535

# Add to /etc/subuid:
root:1000:1

# Add to /etc/subgid:
root:1000:1
`
	got := Output(ranges, plainOptions())
	if got != want {
		t.Errorf("Output:\n%s\nwant:\n%s", got, want)
	}
}

func TestReservationsSkipFillers(t *testing.T) {
	ranges := []idmap.Range{
		{Class: idmap.User, ContainerStart: 0, HostStart: 100000, Length: 65536},
		{Class: idmap.Group, ContainerStart: 0, HostStart: 100000, Length: 500},
		{Class: idmap.Group, ContainerStart: 500, HostStart: 600, Length: 1},
		{Class: idmap.Group, ContainerStart: 501, HostStart: 100501, Length: 65035},
	}

	got := ReservationBlocks(ranges, plainOptions())
	if strings.Contains(got, "100000") || strings.Contains(got, "100501") {
		t.Errorf("filler ranges leaked into reservations:\n%s", got)
	}
	if !strings.Contains(got, "root:600:1") {
		t.Errorf("missing group reservation:\n%s", got)
	}
	if strings.Contains(got, "root:600:1\n") && strings.Index(got, "root:600:1") < strings.Index(got, "/etc/subgid") {
		t.Errorf("group reservation listed before subgid header:\n%s", got)
	}
}

func TestLengthOneFillerNotReserved(t *testing.T) {
	// A gap of exactly one id produces a length-1 filler; it must not
	// be mistaken for an explicit mapping.
	points := []idmap.Mapping{
		{Class: idmap.User, ContainerID: 1, HostID: 10},
		{Class: idmap.User, ContainerID: 3, HostID: 30},
	}
	ranges, err := idmap.Partition(points)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}

	got := ReservationBlocks(ranges, plainOptions())
	wantLines := []string{"root:10:1", "root:30:1"}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("missing reservation %q:\n%s", line, got)
		}
	}
	if strings.Contains(got, "root:100002:1") {
		t.Errorf("length-1 filler reserved:\n%s", got)
	}
}

func TestOwnerOption(t *testing.T) {
	ranges := []idmap.Range{
		{Class: idmap.User, ContainerStart: 1000, HostStart: 107, Length: 1},
	}
	opts := plainOptions()
	opts.Owner = "pveadmin"

	got := ReservationBlocks(ranges, opts)
	if !strings.Contains(got, "pveadmin:107:1") {
		t.Errorf("owner not honored:\n%s", got)
	}
}

func TestColorOnlyStylesHeaders(t *testing.T) {
	ranges := []idmap.Range{
		{Class: idmap.User, ContainerStart: 0, HostStart: 100000, Length: 65536},
		{Class: idmap.Group, ContainerStart: 0, HostStart: 100000, Length: 65536},
	}
	opts := plainOptions()
	opts.Color = true

	got := ConfBlock(ranges, opts)
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		if strings.HasPrefix(line, "lxc.idmap") && strings.Contains(line, "\x1b[") {
			t.Errorf("idmap line carries ANSI escapes: %q", line)
		}
	}
	if !strings.Contains(got, "# Add to") {
		t.Errorf("header text missing:\n%s", got)
	}
}
