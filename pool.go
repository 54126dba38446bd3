package uzu

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pooled is implemented by values managed by a Pool. Pooled values are reused
// rather than recreated, so per-use setup belongs in OnSpawn and cleanup in
// OnUnspawn.
type Pooled interface {
	OnSpawn()
	OnUnspawn()
}

// Destroyer is optionally implemented by pooled values that hold resources
// which must be released when the pool is destroyed.
type Destroyer interface {
	Destroy()
}

// Prefab describes how a pool creates its entities.
type Prefab[T Pooled] struct {
	// Name identifies the prefab; the pool root scope is named after it.
	Name string
	// Rotation is the placement used by SpawnAt. Zero means QuatIdentity.
	Rotation Quat
	// Scale is applied to every created entity. Zero means Vec3One.
	Scale Vec3
	// New creates a fresh value. Returning an error or a nil value aborts
	// the creation.
	New func() (T, error)
}

func (pf *Prefab[T]) rotation() Quat {
	if pf.Rotation == (Quat{}) {
		return QuatIdentity
	}
	return pf.Rotation
}

func (pf *Prefab[T]) scale() Vec3 {
	if pf.Scale == (Vec3{}) {
		return Vec3One
	}
	return pf.Scale
}

// PoolConfig controls pool construction.
type PoolConfig struct {
	// InitialCount is the number of entities created up front.
	InitialCount int
	// Grow lets Spawn create a new entity when none are available.
	Grow bool
	// Parent is the scope the pool root is nested under. May be nil.
	Parent *Scope
	// Logger overrides the package logger for this pool.
	Logger *zap.Logger
}

// Entity is a handle to a pooled value together with its placement and the
// pool that owns it.
type Entity[T Pooled] struct {
	Value    T
	Position Vec3
	Rotation Quat
	Scale    Vec3

	parent *Scope
	owner  *Pool[T]
	active bool
}

// NewEntity wraps a value created outside any pool. The entity starts active;
// assign it to a pool with SetOwner so it can later be unspawned into it.
func NewEntity[T Pooled](value T) *Entity[T] {
	return &Entity[T]{
		Value:    value,
		Rotation: QuatIdentity,
		Scale:    Vec3One,
		active:   true,
	}
}

// Active reports whether the entity is currently spawned.
func (e *Entity[T]) Active() bool { return e.active }

// Owner returns the pool the entity belongs to, or nil.
func (e *Entity[T]) Owner() *Pool[T] { return e.owner }

// Parent returns the scope the entity is grouped under.
func (e *Entity[T]) Parent() *Scope { return e.parent }

// SetParent moves the entity to another scope. Unspawning moves it back
// under the pool root.
func (e *Entity[T]) SetParent(s *Scope) { e.parent = s }

// SetOwner assigns the pool this entity belongs to. Only the first
// assignment takes effect; later ones are reported and rejected.
func (e *Entity[T]) SetOwner(p *Pool[T]) error {
	if p == nil {
		logger.Error("invalid owner pool")
		return ErrInvalidOwner
	}
	if e.owner != nil {
		logger.Error("entity already belongs to a pool",
			zap.String("pool", e.owner.prefab.Name),
			zap.Stringer("pool_id", e.owner.id))
		return ErrOwnerAlreadySet
	}
	e.owner = p
	return nil
}

// Unspawn returns the entity to its owner pool.
func (e *Entity[T]) Unspawn() error {
	if e.owner == nil {
		logger.Warn("unable to unspawn: owner pool is nil")
		return ErrNoOwner
	}
	return e.owner.Unspawn(e)
}

// Pool keeps a set of reusable entities. Available entities are handed out
// most-recently-returned first.
//
// A Pool is not safe for concurrent use.
type Pool[T Pooled] struct {
	id        uuid.UUID
	prefab    Prefab[T]
	root      *Scope
	grow      bool
	all       *List[*Entity[T]]
	available *List[*Entity[T]]
	log       *zap.Logger
}

// NewPool creates a pool and pre-allocates cfg.InitialCount available
// entities. If the prefab fails to produce a value, everything created so far
// is destroyed and the error is returned.
func NewPool[T Pooled](prefab Prefab[T], cfg PoolConfig) (*Pool[T], error) {
	if prefab.New == nil {
		return nil, fmt.Errorf("new pool %q: %w", prefab.Name, ErrMissingInstance)
	}
	count := max(cfg.InitialCount, 0)
	l := cfg.Logger
	if l == nil {
		l = logger
	}
	p := &Pool[T]{
		id:        uuid.New(),
		prefab:    prefab,
		root:      NewScope("UzuPool - "+prefab.Name, cfg.Parent),
		grow:      cfg.Grow,
		all:       NewList[*Entity[T]](count),
		available: NewList[*Entity[T]](count),
	}
	p.log = l.With(zap.String("pool", prefab.Name), zap.Stringer("pool_id", p.id))

	for i := 0; i < count; i++ {
		if _, err := p.create(Vec3{}, QuatIdentity); err != nil {
			p.DestroyAll()
			return nil, fmt.Errorf("new pool %q: %w", prefab.Name, err)
		}
	}
	for _, e := range p.all.Items() {
		e.active = false
		p.available.Add(e)
	}
	return p, nil
}

// ID returns the pool's unique identifier.
func (p *Pool[T]) ID() uuid.UUID { return p.id }

// Name returns the prefab name.
func (p *Pool[T]) Name() string { return p.prefab.Name }

// Root returns the scope idle entities are parented under.
func (p *Pool[T]) Root() *Scope { return p.root }

// Grows reports whether the pool creates entities on demand.
func (p *Pool[T]) Grows() bool { return p.grow }

// HasAvailable reports whether Spawn can succeed without creating an entity.
func (p *Pool[T]) HasAvailable() bool { return p.available.Len() != 0 }

// AvailableCount returns the number of idle entities.
func (p *Pool[T]) AvailableCount() int { return p.available.Len() }

// ActiveCount returns the number of spawned entities.
func (p *Pool[T]) ActiveCount() int { return p.all.Len() - p.available.Len() }

// Capacity returns the number of entities the pool holds without growing.
func (p *Pool[T]) Capacity() int { return p.all.Len() }

// ActiveEntities returns the spawned entities in creation order. The slice is
// freshly allocated.
func (p *Pool[T]) ActiveEntities() []*Entity[T] {
	out := make([]*Entity[T], 0, p.ActiveCount())
	for _, e := range p.all.Items() {
		if !p.available.Contains(e) {
			out = append(out, e)
		}
	}
	return out
}

// SpawnAt spawns an entity at pos using the prefab rotation.
func (p *Pool[T]) SpawnAt(pos Vec3) (*Entity[T], error) {
	return p.Spawn(pos, p.prefab.rotation())
}

// Spawn activates an idle entity at the given placement and calls its
// OnSpawn hook. When none is idle, a growing pool creates one; otherwise the
// condition is logged and ErrPoolExhausted is returned.
func (p *Pool[T]) Spawn(pos Vec3, rot Quat) (*Entity[T], error) {
	e, ok := p.available.Pop()
	if ok {
		e.Position = pos
		e.Rotation = rot
	} else {
		if !p.grow {
			p.log.Warn("pool capacity reached", zap.Int("capacity", p.Capacity()))
			return nil, ErrPoolExhausted
		}
		var err error
		if e, err = p.create(pos, rot); err != nil {
			return nil, err
		}
	}

	e.active = true
	e.Value.OnSpawn()
	return e, nil
}

// Unspawn calls the entity's OnUnspawn hook and returns it to the idle set.
// Entities that are already idle are left alone. Entities assigned to this
// pool with SetOwner are adopted on their first unspawn.
func (p *Pool[T]) Unspawn(e *Entity[T]) error {
	if e == nil || e.owner != p {
		p.log.Error("unspawn of entity not belonging to this pool")
		return ErrForeignEntity
	}

	if !p.all.Contains(e) {
		p.all.Add(e)
	}

	// Reset parent in case the entity was moved while active.
	e.parent = p.root

	if p.available.Contains(e) {
		return nil
	}
	e.Value.OnUnspawn()
	e.active = false
	p.available.Add(e)
	return nil
}

// UnspawnAll returns every entity to the idle set.
func (p *Pool[T]) UnspawnAll() {
	for _, e := range p.all.Items() {
		_ = p.Unspawn(e)
	}
}

// DestroyAll releases every entity and leaves the pool empty. Values that
// implement Destroyer are destroyed. Destroyed entities are detached from the
// pool and can no longer be unspawned into it.
func (p *Pool[T]) DestroyAll() {
	for _, e := range p.all.Items() {
		if d, ok := any(e.Value).(Destroyer); ok {
			d.Destroy()
		}
		e.owner = nil
		e.active = false
		e.parent = nil
	}
	p.available.Clear()
	p.all.Clear()
}

// create builds a new entity at the given placement and registers it. The
// entity is left inactive.
func (p *Pool[T]) create(pos Vec3, rot Quat) (*Entity[T], error) {
	v, err := p.prefab.New()
	if err != nil {
		p.log.Error("prefab failed to create instance", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrMissingInstance, err)
	}
	if isNilValue(v) {
		p.log.Error("prefab produced a nil instance")
		return nil, ErrMissingInstance
	}

	e := &Entity[T]{
		Value:    v,
		Position: pos,
		Rotation: rot,
		Scale:    p.prefab.scale(),
		parent:   p.root,
		owner:    p,
	}
	p.all.Add(e)
	return e, nil
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
