package event

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// listenerEntry is one registered listener. It is owned by the registry slot
// for its event name until unsubscribed or, for once entries, until it is
// claimed by a dispatch pass.
type listenerEntry struct {
	id       string
	name     string
	handler  Handler
	priority Priority
	once     bool
	seq      uint64
}

// registry stores listeners per event name, split into once and regular
// collections. Each collection is kept sorted by (priority desc, registration
// order asc) so dispatch snapshots are taken in final order.
// It is safe for concurrent use.
type registry struct {
	mu      sync.Mutex
	seq     uint64
	once    map[string][]*listenerEntry
	regular map[string][]*listenerEntry
}

func newRegistry() *registry {
	return &registry{
		once:    make(map[string][]*listenerEntry),
		regular: make(map[string][]*listenerEntry),
	}
}

// add registers a listener and returns its entry.
func (r *registry) add(name string, h Handler, priority Priority, once bool) *listenerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	entry := &listenerEntry{
		id:       uuid.NewString(),
		name:     name,
		handler:  h,
		priority: priority,
		once:     once,
		seq:      r.seq,
	}

	slot := r.regular
	if once {
		slot = r.once
	}
	entries := append(slot[name], entry)
	sortEntries(entries)
	slot[name] = entries

	return entry
}

// sortEntries orders entries by priority (higher first), breaking ties with
// registration order.
func sortEntries(entries []*listenerEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})
}

// remove deletes the entry with the given id under the given name.
// Returns false if the entry is no longer registered.
func (r *registry) remove(name, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range []map[string][]*listenerEntry{r.once, r.regular} {
		entries := slot[name]
		for i, entry := range entries {
			if entry.id != id {
				continue
			}
			slot[name] = append(entries[:i], entries[i+1:]...)
			if len(slot[name]) == 0 {
				delete(slot, name)
			}
			return true
		}
	}
	return false
}

// removeAll clears the listeners for the given names, or every listener when
// no name is given.
func (r *registry) removeAll(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(names) == 0 {
		r.once = make(map[string][]*listenerEntry)
		r.regular = make(map[string][]*listenerEntry)
		return
	}
	for _, name := range names {
		delete(r.once, name)
		delete(r.regular, name)
	}
}

// snapshot returns the dispatch order for one pass: once listeners first,
// then regular listeners. The once entries are removed from the registry
// before this method returns, so re-entrant emission cannot re-trigger them.
func (r *registry) snapshot(name string) []*listenerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	onceEntries := r.once[name]
	regularEntries := r.regular[name]
	if len(onceEntries) == 0 && len(regularEntries) == 0 {
		return nil
	}

	snap := make([]*listenerEntry, 0, len(onceEntries)+len(regularEntries))
	snap = append(snap, onceEntries...)
	snap = append(snap, regularEntries...)

	delete(r.once, name)

	return snap
}

// has reports whether any listener is registered for the name.
func (r *registry) has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.once[name]) > 0 || len(r.regular[name]) > 0
}

// infos returns a read-only view of the listeners for one name, once
// listeners first, each group in dispatch order.
func (r *registry) infos(name string) []ListenerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	onceEntries := r.once[name]
	regularEntries := r.regular[name]
	if len(onceEntries) == 0 && len(regularEntries) == 0 {
		return nil
	}

	infos := make([]ListenerInfo, 0, len(onceEntries)+len(regularEntries))
	for _, entry := range onceEntries {
		infos = append(infos, ListenerInfo{ID: entry.id, Priority: entry.priority, Once: true})
	}
	for _, entry := range regularEntries {
		infos = append(infos, ListenerInfo{ID: entry.id, Priority: entry.priority, Once: false})
	}
	return infos
}

// names returns every event name with at least one listener, sorted for
// deterministic output.
func (r *registry) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(r.once)+len(r.regular))
	for name := range r.once {
		seen[name] = struct{}{}
	}
	for name := range r.regular {
		seen[name] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// counts returns the number of distinct names and the listener totals split
// by once and regular.
func (r *registry) counts() (names, once, regular int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(r.once)+len(r.regular))
	for name, entries := range r.once {
		seen[name] = struct{}{}
		once += len(entries)
	}
	for name, entries := range r.regular {
		seen[name] = struct{}{}
		regular += len(entries)
	}
	return len(seen), once, regular
}
