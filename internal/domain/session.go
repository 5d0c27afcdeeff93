package domain

import "sync"

// ActorSession is the per-actor selection and clipboard state. Every field
// other than the id is optional and may be set in any order.
type ActorSession struct {
	id ActorID

	mu           sync.RWMutex
	firstCorner  *Vec3i
	secondCorner *Vec3i
	origin       *Vec3i
	clipboard    *Volume
}

// SessionSnapshot is a point-in-time copy of an ActorSession. Nil pointers
// mean the field was never set.
type SessionSnapshot struct {
	ID           ActorID
	FirstCorner  *Vec3i
	SecondCorner *Vec3i
	Origin       *Vec3i
	Clipboard    *Volume
}

// IsEmpty matches ActorSession.IsEmpty for the captured state.
func (s SessionSnapshot) IsEmpty() bool {
	return s.FirstCorner == nil && s.SecondCorner == nil && s.Clipboard == nil
}

func NewActorSession(id ActorID) *ActorSession {
	return &ActorSession{id: id}
}

func RestoreActorSession(snapshot SessionSnapshot) *ActorSession {
	return &ActorSession{
		id:           snapshot.ID,
		firstCorner:  clonePoint(snapshot.FirstCorner),
		secondCorner: clonePoint(snapshot.SecondCorner),
		origin:       clonePoint(snapshot.Origin),
		clipboard:    cloneVolumeRef(snapshot.Clipboard),
	}
}

func (s *ActorSession) ID() ActorID {
	return s.id
}

func (s *ActorSession) SetFirstCorner(p Vec3i) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstCorner = &p
}

func (s *ActorSession) SetSecondCorner(p Vec3i) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secondCorner = &p
}

func (s *ActorSession) FirstCorner() (Vec3i, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deref(s.firstCorner)
}

func (s *ActorSession) SecondCorner() (Vec3i, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deref(s.secondCorner)
}

func (s *ActorSession) Origin() (Vec3i, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deref(s.origin)
}

// Selection returns the bounding box of both corners, or
// ErrIncompleteSelection while either corner is unset.
func (s *ActorSession) Selection() (Box, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.firstCorner == nil || s.secondCorner == nil {
		return Box{}, ErrIncompleteSelection
	}

	return BoundingBox(*s.firstCorner, *s.secondCorner), nil
}

func (s *ActorSession) Clipboard() (Volume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.clipboard == nil {
		return Volume{}, false
	}
	return *s.clipboard, true
}

// SetClipboard replaces the clipboard and records the origin it is anchored to.
func (s *ActorSession) SetClipboard(volume Volume, origin Vec3i) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = &volume
	s.origin = &origin
}

// IsEmpty reports whether the session is indistinguishable from no session.
func (s *ActorSession) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.firstCorner == nil && s.secondCorner == nil && s.clipboard == nil
}

func (s *ActorSession) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SessionSnapshot{
		ID:           s.id,
		FirstCorner:  clonePoint(s.firstCorner),
		SecondCorner: clonePoint(s.secondCorner),
		Origin:       clonePoint(s.origin),
		Clipboard:    cloneVolumeRef(s.clipboard),
	}
}

func deref(p *Vec3i) (Vec3i, bool) {
	if p == nil {
		return Vec3i{}, false
	}
	return *p, true
}

func clonePoint(p *Vec3i) *Vec3i {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneVolumeRef copies the volume header. Block slices are shared; volumes
// are never mutated after capture or load.
func cloneVolumeRef(v *Volume) *Volume {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
