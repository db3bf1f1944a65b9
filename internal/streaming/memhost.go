package streaming

import "maps"

// MemoryHost keeps spawned chunks in memory. It backs the headless
// simulator and tests.
type MemoryHost struct {
	next Handle
	live map[Handle]Spawn

	// Spawned and Despawned count calls over the host's lifetime.
	Spawned   int
	Despawned int
	// Vertices is the number of mesh vertices currently live.
	Vertices int
}

// NewMemoryHost creates an empty MemoryHost.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{live: make(map[Handle]Spawn)}
}

// Spawn stores s under a fresh handle.
func (m *MemoryHost) Spawn(s Spawn) Handle {
	m.next++
	m.live[m.next] = s
	m.Spawned++
	if s.Mesh != nil {
		m.Vertices += len(s.Mesh.Vertices)
	}
	return m.next
}

// Despawn drops the chunk behind h. Unknown handles are ignored.
func (m *MemoryHost) Despawn(h Handle) {
	s, ok := m.live[h]
	if !ok {
		return
	}
	delete(m.live, h)
	m.Despawned++
	if s.Mesh != nil {
		m.Vertices -= len(s.Mesh.Vertices)
	}
}

// Get returns the spawn data behind a live handle.
func (m *MemoryHost) Get(h Handle) (Spawn, bool) {
	s, ok := m.live[h]
	return s, ok
}

// Live returns the number of live handles.
func (m *MemoryHost) Live() int {
	return len(m.live)
}

// Handles returns a copy of the live handle set.
func (m *MemoryHost) Handles() map[Handle]Spawn {
	return maps.Clone(m.live)
}
