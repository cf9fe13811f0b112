package util

import (
	"os"

	"golang.org/x/sys/unix"
)

// FileInfo identifies one on-disk version of a file. Save-by-rename
// replaces the file node, so the inode changes even when size and
// modification time happen to collide.
type FileInfo struct {
	ModTime int64  // modification time in nanoseconds
	Size    int64  // file size in bytes
	Inode   uint64 // file node identity on Unix-like systems
}

// GetFileInfo stats path and captures its version identity.
// Supported on Linux and macOS.
func GetFileInfo(path string) (*FileInfo, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return nil, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	return &FileInfo{
		ModTime: unix.TimespecToNsec(st.Mtim),
		Size:    st.Size,
		Inode:   st.Ino,
	}, nil
}

// Same reports whether other captured the same file version. A nil
// side never matches, so a missing baseline lets the event through.
func (f *FileInfo) Same(other *FileInfo) bool {
	if f == nil || other == nil {
		return false
	}
	return f.ModTime == other.ModTime && f.Size == other.Size && f.Inode == other.Inode
}
