package historical

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/exp/mmap"
)

var ErrEof = io.EOF

// Source reads fixed-size records of type T from a memory mapped file. T must be a plain
// struct without pointers whose in-memory layout matches the file.
type Source[T any] struct {
	path       string
	entrySize  int
	reader     *mmap.ReaderAt
	bufferPool *sync.Pool
}

func NewSource[T any](path string) *Source[T] {
	size := int(unsafe.Sizeof(*new(T)))
	return &Source[T]{
		path:      path,
		entrySize: size,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, size)
				return &buffer
			},
		},
	}
}

func (s *Source[T]) Open() error {
	if s.entrySize == 0 {
		return fmt.Errorf("unable to open %q: record size is zero", s.path)
	}
	var err error
	s.reader, err = mmap.Open(s.path)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", s.path, err)
	}
	return nil
}

func (s *Source[T]) Close() {
	if s.reader != nil {
		_ = s.reader.Close()
		s.reader = nil
	}
}

// Read copies the record at index into data. Reading past the last record yields ErrEof.
func (s *Source[T]) Read(index int64, data *T) error {
	if s.reader == nil {
		return fmt.Errorf("data source %q is not open", s.path)
	}
	buffer := s.bufferPool.Get().(*[]byte)
	defer s.bufferPool.Put(buffer)

	n, err := s.reader.ReadAt(*buffer, index*int64(s.entrySize))
	if err != nil && err != io.EOF {
		return fmt.Errorf("unable to read: %w", err)
	}
	if n < s.entrySize {
		return ErrEof
	}

	*data = *(*T)(unsafe.Pointer(&(*buffer)[0])) // #nosec G103
	return nil
}

// EntryCount returns the number of records in the file.
func (s *Source[T]) EntryCount() (int64, error) {
	if s.entrySize == 0 {
		return 0, fmt.Errorf("size of T is zero")
	}
	if s.reader != nil {
		return s.count(int64(s.reader.Len()))
	}

	fileInfo, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("unable to get data source %q stats: %w", s.path, err)
	}
	return s.count(fileInfo.Size())
}

func (s *Source[T]) count(totalSize int64) (int64, error) {
	if totalSize%int64(s.entrySize) != 0 {
		return 0, fmt.Errorf("file size %d is not a multiple of entry size %d", totalSize, s.entrySize)
	}
	return totalSize / int64(s.entrySize), nil
}
