package Sets

type Set[E any] interface {
	Put(E) (bool, error)
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() (E, bool)
	Range(func(E) bool)
	Keys() []E
	Clear()
}

type ExtendedSet[E any] interface {
	Set[E]
	PutAll(Set[E]) (uint, error)
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Intersect(Set[E]) uint
}
