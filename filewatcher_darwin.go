// Completion: 100% - Platform-specific module complete
//go:build darwin

package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// FileWatcher reports write events on a single source file, debounced so
// editors that write in several steps trigger one rebuild.
type FileWatcher struct {
	kq       int
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

	kq, err := unix.Kqueue()
	if err != nil {
		return nil, fmt.Errorf("kqueue failed: %v", err)
	}

	fd, err := unix.Open(absPath, unix.O_RDONLY, 0)
	if err != nil {
		unix.Close(kq)
		return nil, fmt.Errorf("failed to open %s: %v", absPath, err)
	}

	event := unix.Kevent_t{
		Ident:  uint64(fd),
		Filter: unix.EVFILT_VNODE,
		Flags:  unix.EV_ADD | unix.EV_CLEAR,
		Fflags: unix.NOTE_WRITE | unix.NOTE_ATTRIB,
	}
	if _, err := unix.Kevent(kq, []unix.Kevent_t{event}, nil, nil); err != nil {
		unix.Close(fd)
		unix.Close(kq)
		return nil, fmt.Errorf("failed to add kevent for %s: %v", absPath, err)
	}

	return &FileWatcher{kq: kq, fd: fd, path: absPath, onChange: onChange}, nil
}

// Watch blocks, delivering debounced change callbacks until Close.
func (fw *FileWatcher) Watch() {
	events := make([]unix.Kevent_t, 4)

	for {
		n, err := unix.Kevent(fw.kq, nil, events, nil)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}

		for i := 0; i < n; i++ {
			if int(events[i].Ident) == fw.fd {
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
	fw.mu.Lock()
	defer fw.mu.Unlock()

	unix.Close(fw.fd)
	return unix.Close(fw.kq)
}
