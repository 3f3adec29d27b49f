package schemafile

import (
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// LoadArrowFile reads the schema of an Arrow IPC file, falling back to the
// IPC stream format when the file has no footer.
func LoadArrowFile(path string) (*arrow.Schema, error) {
	return LoadArrowFileWithAllocator(path, memory.NewGoAllocator())
}

// LoadArrowFileWithAllocator is LoadArrowFile with an explicit allocator.
func LoadArrowFileWithAllocator(path string, mem memory.Allocator) (*arrow.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open arrow file %s: %w", path, err)
	}
	defer f.Close()

	fr, err := ipc.NewFileReader(f, ipc.WithAllocator(mem))
	if err == nil {
		defer fr.Close()

		return fr.Schema(), nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind arrow file %s: %w", path, err)
	}

	schema, err := ReadArrowSchema(f, mem)
	if err != nil {
		return nil, fmt.Errorf("failed to read arrow file %s: %w", path, err)
	}

	return schema, nil
}

// ReadArrowSchema reads the schema message at the head of an IPC stream.
func ReadArrowSchema(r io.Reader, mem memory.Allocator) (*arrow.Schema, error) {
	rdr, err := ipc.NewReader(r, ipc.WithAllocator(mem))
	if err != nil {
		return nil, err
	}
	defer rdr.Release()

	return rdr.Schema(), nil
}

// WriteArrowSchema writes a schema-only IPC stream.
func WriteArrowSchema(w io.Writer, schema *arrow.Schema) error {
	writer := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(memory.NewGoAllocator()))

	return writer.Close()
}

// WriteArrowFile writes a schema-only IPC stream to the given path.
func WriteArrowFile(schema *arrow.Schema, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create arrow file %s: %w", path, err)
	}

	if err := WriteArrowSchema(f, schema); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write arrow file %s: %w", path, err)
	}

	return f.Close()
}
