// Package dumpfile provides the default recondump.Accessor implementation:
// a memory-mapped view over an Xbox 360 memory-dump file. Dumps run into
// the gigabytes and reconstruction performs many small, scattered reads
// (one per subrecord window, one per runtime struct); mmap avoids a syscall
// per read the way github.com/edsrzf/mmap-go does for saferwall/pe's
// section and directory reads.
package dumpfile

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/fnv360/semrecon/recondump"
)

// MappedAccessor is a recondump.Accessor backed by a read-only memory
// mapping of a dump file.
type MappedAccessor struct {
	f    *os.File
	data mmap.MMap
}

// Open memory-maps name read-only.
func Open(name string) (*MappedAccessor, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap dump file: %w", err)
	}

	return &MappedAccessor{f: f, data: data}, nil
}

// Size returns the size of the mapped dump in bytes.
func (a *MappedAccessor) Size() int64 {
	return int64(len(a.data))
}

// ReadAt implements recondump.Accessor.
func (a *MappedAccessor) ReadAt(offset uint64, dst []byte) error {
	end := offset + uint64(len(dst))
	if end > uint64(len(a.data)) {
		return fmt.Errorf("dumpfile: read [%d:%d) past end of file (%d bytes)", offset, end, len(a.data))
	}
	copy(dst, a.data[offset:end])
	return nil
}

// Close unmaps the dump and closes the underlying file.
func (a *MappedAccessor) Close() error {
	if err := a.data.Unmap(); err != nil {
		a.f.Close()
		return err
	}
	return a.f.Close()
}

var _ recondump.Accessor = (*MappedAccessor)(nil)
