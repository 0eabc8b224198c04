package plugin

import (
	"hash/fnv"
)

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx", "Instrument|Synth")
}

// UID derives a stable 16-byte identifier from the string ID
func (i Info) UID() [16]byte {
	var uid [16]byte

	h := fnv.New128a()
	h.Write([]byte(i.ID))
	copy(uid[:], h.Sum(nil))
	return uid
}

// String returns "Name Version (Vendor)"
func (i Info) String() string {
	s := i.Name
	if i.Version != "" {
		s += " " + i.Version
	}
	if i.Vendor != "" {
		s += " (" + i.Vendor + ")"
	}
	return s
}
