package arena

import "unsafe"

// allocator is the shared bump-allocation contract both FixedArena and
// DynamicArena implement. It is unexported: the generic operations below
// are the only supported entry points, generalised over both arena kinds
// and fallible, since capacity is a real bound rather than an
// always-growing chunk list.
type allocator interface {
	allocBytes(size, align uintptr) ([]byte, error)
	currentGeneration() uint64
}

// AllocValue allocates space for one T inside a and initialises it with v.
func AllocValue[T any](a allocator, v T) (*T, error) {
	l := layoutOf[T]()
	b, err := a.allocBytes(l.size, l.align)
	if err != nil {
		return nil, err
	}
	p := (*T)(baseOf(b))
	*p = v
	return p, nil
}

// AllocZeroed allocates space for one T inside a, with every byte of the
// returned value reading as zero.
func AllocZeroed[T any](a allocator) (*T, error) {
	l := layoutOf[T]()
	b, err := a.allocBytes(l.size, l.align)
	if err != nil {
		return nil, err
	}
	if len(b) > 0 {
		clear(b)
	}
	return (*T)(baseOf(b)), nil
}

// AllocUninitialized allocates space for one T inside a without writing to
// it. The memory's contents are whatever the backing region last held;
// callers must write every field before reading it.
func AllocUninitialized[T any](a allocator) (*T, error) {
	l := layoutOf[T]()
	b, err := a.allocBytes(l.size, l.align)
	if err != nil {
		return nil, err
	}
	return (*T)(baseOf(b)), nil
}

// AllocArray allocates a slice of count elements inside a, each initialised
// by copying v. It returns (nil, nil) for count <= 0.
func AllocArray[T any](a allocator, v T, count int) ([]T, error) {
	if count <= 0 {
		return nil, nil
	}
	l := layoutOf[T]()
	total := arrayBytes(l.size, count)
	b, err := a.allocBytes(total, l.align)
	if err != nil {
		return nil, err
	}
	s := unsafe.Slice((*T)(baseOf(b)), count)
	for i := range s {
		s[i] = v
	}
	return s, nil
}

// AllocArrayZeroed allocates a slice of count elements inside a with every
// byte zeroed. It returns (nil, nil) for count <= 0.
func AllocArrayZeroed[T any](a allocator, count int) ([]T, error) {
	if count <= 0 {
		return nil, nil
	}
	l := layoutOf[T]()
	total := arrayBytes(l.size, count)
	b, err := a.allocBytes(total, l.align)
	if err != nil {
		return nil, err
	}
	if len(b) > 0 {
		clear(b)
	}
	return unsafe.Slice((*T)(baseOf(b)), count), nil
}

// AllocArrayUninitialized allocates a slice of count elements inside a
// without writing to it. This is the fastest array operation, trading
// safety for speed: callers must write every element before reading it. It
// returns (nil, nil) for count <= 0.
func AllocArrayUninitialized[T any](a allocator, count int) ([]T, error) {
	if count <= 0 {
		return nil, nil
	}
	l := layoutOf[T]()
	total := arrayBytes(l.size, count)
	b, err := a.allocBytes(total, l.align)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(baseOf(b)), count), nil
}
