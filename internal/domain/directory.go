package domain

import (
	"net/netip"
	"slices"
)

type DirectoryEntry struct {
	Name    string
	Address string
	Port    uint16
}

// Directory maps an endpoint name to its entry. Every key equals the entry name.
type Directory map[string]DirectoryEntry

func (d Directory) Lookup(name string) (DirectoryEntry, bool) {
	entry, ok := d[name]
	return entry, ok
}

func (d Directory) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Target is a watch list entry whose address has been resolved and is ready to be dialed.
type Target struct {
	Name     string
	Address  string
	AddrPort netip.AddrPort
}

type TargetState int

const (
	TargetPending TargetState = iota
	TargetProbing
	TargetNotified
	TargetAbandoned
)

func (s TargetState) String() string {
	switch s {
	case TargetPending:
		return "pending"
	case TargetProbing:
		return "probing"
	case TargetNotified:
		return "notified"
	case TargetAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}
