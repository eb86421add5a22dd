package buffers

// Factory allocates the backing storage for a buffer. Allocate must return a
// slice of at least size bytes.
type Factory interface {
	Allocate(size int) []byte
}

// FactoryFunc adapts a plain function to the Factory interface.
type FactoryFunc func(size int) []byte

// Allocate calls f(size).
func (f FactoryFunc) Allocate(size int) []byte {
	return f(size)
}

// HeapFactory allocates zeroed slices on the Go heap.
type HeapFactory struct{}

// Allocate returns make([]byte, size).
func (HeapFactory) Allocate(size int) []byte {
	return make([]byte, size)
}

var (
	_ Factory = HeapFactory{}
	_ Factory = FactoryFunc(nil)
)
