// Completion: 100% - Platform-specific module complete
//go:build linux

package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FileWatcher reports write events on a single source file, debounced so
// editors that write in several steps trigger one rebuild.
type FileWatcher struct {
	fd       int
	path     string
	onChange func(string)
	mu       sync.Mutex
	pending  *time.Timer
}

func NewFileWatcher(path string, onChange func(string)) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fd, err := unix.InotifyInit1(unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init failed: %v", err)
	}

	if _, err := unix.InotifyAddWatch(fd, absPath, unix.IN_MODIFY|unix.IN_CLOSE_WRITE); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to watch %s: %v", absPath, err)
	}

	return &FileWatcher{fd: fd, path: absPath, onChange: onChange}, nil
}

// Watch blocks, delivering debounced change callbacks until Close.
func (fw *FileWatcher) Watch() {
	buf := make([]byte, unix.SizeofInotifyEvent*16)

	for {
		n, err := unix.Read(fw.fd, buf)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}

		offset := 0
		for offset < n {
			event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
			offset += unix.SizeofInotifyEvent + int(event.Len)

			if event.Mask&(unix.IN_MODIFY|unix.IN_CLOSE_WRITE) != 0 {
				fw.fire()
			}
		}
	}
}

func (fw *FileWatcher) fire() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.pending != nil {
		fw.pending.Stop()
	}
	fw.pending = time.AfterFunc(300*time.Millisecond, func() {
		fw.onChange(fw.path)
	})
}

func (fw *FileWatcher) Close() error {
	return unix.Close(fw.fd)
}
