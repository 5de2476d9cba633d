// Package iocap carries the allocator and IO capability contracts that
// every allocating or file-reading rayfork entry point receives by value
// (§3, §6). No subsystem assumes a global heap or filesystem.
package iocap

// Allocator is a capability struct pairing an allocation/free function
// pair with caller-owned user data, mirroring the C ABI's function
// pointer plus void* pattern from spec.md §3.
//
// A zero-value Allocator (nil Alloc/Free) is the "null allocator"
// sentinel from spec.md §3/§6: it disables whatever optional path
// received it without causing a fault. Go's garbage collector makes an
// explicit Free unnecessary for Go-native allocations, but the capability
// is still threaded through every call that may allocate so an
// application-supplied external allocator (e.g. a pooled arena used by a
// container decoder) can be swapped in.
type Allocator struct {
	Alloc func(size int) []byte
	Free  func(buf []byte)
}

// IsNull reports whether a is the null allocator sentinel.
func (a Allocator) IsNull() bool { return a.Alloc == nil }

// DefaultAllocator returns an Allocator backed by Go's ordinary heap.
func DefaultAllocator() Allocator {
	return Allocator{
		Alloc: func(size int) []byte { return make([]byte, size) },
		Free:  func([]byte) {},
	}
}

// Realloc synthesizes a realloc out of Alloc+copy+Free, per spec.md §3.
func (a Allocator) Realloc(buf []byte, newSize int) []byte {
	if a.IsNull() {
		return nil
	}
	next := a.Alloc(newSize)
	n := len(buf)
	if newSize < n {
		n = newSize
	}
	copy(next, buf[:n])
	if a.Free != nil {
		a.Free(buf)
	}
	return next
}

// IO is the file-access capability struct: FileSize(path) returns 0 when
// the file is missing, and ReadFile(path, dst) reports whether it filled
// dst (or fewer bytes than requested, detectable via the returned n).
type IO struct {
	FileSize func(path string) int
	ReadFile func(path string, dst []byte) (n int, ok bool)
}

// IsNull reports whether io is the null IO capability sentinel.
func (io IO) IsNull() bool { return io.FileSize == nil || io.ReadFile == nil }

// ReadAll reads the named file in full using the IO capability's
// FileSize/ReadFile pair, allocating the destination with alloc. It
// returns (nil, false) on any IO failure (missing file, short read, or a
// null allocator/IO capability), per spec.md §7's Bad-IO / Bad-alloc
// error kinds.
func ReadAll(io IO, alloc Allocator, path string) ([]byte, bool) {
	if io.IsNull() || alloc.IsNull() {
		return nil, false
	}
	size := io.FileSize(path)
	if size <= 0 {
		return nil, false
	}
	buf := alloc.Alloc(size)
	n, ok := io.ReadFile(path, buf)
	if !ok || n != size {
		return nil, false
	}
	return buf, true
}
