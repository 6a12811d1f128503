package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix is appended to the backup suffix for compressed backups.
const CompressedSuffix = ".zst"

// BackupWriter saves the original bytes of a file before it is rewritten.
type BackupWriter interface {
	// Backup stores original for path and returns the backup location.
	// An empty location means no backup was written.
	Backup(ctx context.Context, path string, original []byte, mode os.FileMode) (string, error)
}

// SidecarBackup writes the backup next to the original file as
// path+Suffix. An existing backup is never overwritten, so repeated runs
// keep the oldest content.
type SidecarBackup struct {
	Suffix   string
	Compress bool
}

// Path returns the backup location for path.
func (b SidecarBackup) Path(path string) string {
	suffix := b.Suffix
	if suffix == "" {
		suffix = ".bak"
	}
	if b.Compress {
		suffix += CompressedSuffix
	}
	return path + suffix
}

// Backup implements BackupWriter.
func (b SidecarBackup) Backup(ctx context.Context, path string, original []byte, mode os.FileMode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}

	backupPath := b.Path(path)
	_, err := os.Stat(backupPath)
	if err == nil {
		return "", nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat backup path: %w", err)
	}

	data := original
	if b.Compress {
		data, err = compress(original)
		if err != nil {
			return "", err
		}
	}

	if err := WriteAtomic(ctx, backupPath, data, mode); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backupPath, nil
}

// Restore copies the backup over path. It reports false when no backup exists.
func (b SidecarBackup) Restore(ctx context.Context, path string) (bool, error) {
	backupPath := b.Path(path)

	data, err := os.ReadFile(backupPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read backup: %w", err)
	}

	if b.Compress {
		data, err = decompress(data)
		if err != nil {
			return false, err
		}
	}

	stat, err := os.Stat(backupPath)
	if err != nil {
		return false, fmt.Errorf("stat backup: %w", err)
	}
	if err := WriteAtomic(ctx, path, data, stat.Mode()); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}
	return true, nil
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress backup: %w", err)
	}
	return out, nil
}
