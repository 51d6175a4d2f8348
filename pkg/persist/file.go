package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile encodes state into the file at path, replacing it.
func SaveFile(path string, codec Codec, state any) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create state file: %w", err)
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	err = codec.Encode(file, state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	return nil
}

// LoadFile decodes the file at path into state, which must be a pointer.
func LoadFile(path string, codec Codec, state any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open state file: %w", err)
	}
	defer file.Close()

	err = codec.Decode(file, state)
	if err != nil {
		return fmt.Errorf("decode state %s: %w", filepath.Base(path), err)
	}

	return nil
}

// StatePath returns the file that SaveState writes.
func StatePath(dir, basename string, codec Codec) string {
	return filepath.Join(dir, basename+codec.Extension())
}

// SaveState saves the given state to a file in the specified directory.
// The filename is constructed from the basename and the codec's extension.
func SaveState(dir, basename string, codec Codec, state any) error {
	return SaveFile(StatePath(dir, basename, codec), codec, state)
}
