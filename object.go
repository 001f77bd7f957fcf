package tether

// IObject represents anything that can own Signals and Callables - it just needs an
// identity and a notion of liveness. Any struct that embeds Object implements it
// automatically, but you can also satisfy it yourself if your game already has its own
// object model (an entity type with generational IDs, for example).
type IObject interface {
	// ID returns the object's unique ID.
	ID() uint64
	// Name returns the object's name.
	Name() string
	// Alive returns whether the object is still live. Signals owned by a dead object
	// are invalid, and Callables tied to a dead object can no longer be called.
	Alive() bool
}

var objectID uint64 = 0

// Object is a basic game object - an identity that Signals and Callables can belong to.
// It's designed to be embedded in your own game object structs, but can also be used
// directly (the tests and examples do exactly that).
type Object struct {
	id    uint64
	name  string
	freed bool
	props *Properties
	data  interface{}
}

// NewObject returns a new Object with the given name.
func NewObject(name string) *Object {

	obj := &Object{
		id:    objectID,
		name:  name,
		props: NewProperties(),
	}

	objectID++

	return obj
}

// ID returns the Object's unique ID.
func (obj *Object) ID() uint64 {
	return obj.id
}

// Name returns the Object's name.
func (obj *Object) Name() string {
	return obj.name
}

// SetName sets the Object's name.
func (obj *Object) SetName(name string) {
	obj.name = name
}

// Alive returns whether the Object is still live (i.e. Free has not been called on it).
func (obj *Object) Alive() bool {
	return obj != nil && !obj.freed
}

// Free marks the Object as dead. Signals owned by the Object become invalid, and
// Callables tied to it stop being callable; connections involving either are skipped
// and pruned lazily the next time the relevant Signal is emitted or mutated. Freeing
// an already-freed Object does nothing.
func (obj *Object) Free() {
	obj.freed = true
}

// SetData sets user-customizeable data that could be usefully stored on this Object.
func (obj *Object) SetData(data interface{}) {
	obj.data = data
}

// Data returns user-customizeable data stored on this Object.
func (obj *Object) Data() interface{} {
	return obj.data
}

// Properties returns the game properties associated with this Object.
func (obj *Object) Properties() *Properties {
	return obj.props
}
