package set

type Set[T comparable] struct {
	_map map[T]any
}

func New[T comparable](values ...T) Set[T] {
	s := Set[T]{map[T]any{}}
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func (s *Set[T]) Insert(val T) {
	s._map[val] = struct{}{}
}

func (s *Set[T]) Delete(val T) {
	delete(s._map, val)
}

func (s Set[T]) Contains(val T) bool {
	_, contained := s._map[val]
	return contained
}

func (s Set[T]) Len() int {
	return len(s._map)
}
