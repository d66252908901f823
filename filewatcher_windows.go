// Completion: 100% - Platform-specific module complete
//go:build windows

package main

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileWatcher reports write events on a single source file by polling
// its modification time, debounced to one rebuild per burst of writes.
type FileWatcher struct {
	path     string
	lastMod  time.Time
	onChange func(string)
	mu       sync.Mutex
	pending  *time.Timer
	stopChan chan struct{}
}

func NewFileWatcher(path string, onChange func(string)) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		path:     absPath,
		onChange: onChange,
		stopChan: make(chan struct{}),
	}
	if info, err := os.Stat(absPath); err == nil {
		fw.lastMod = info.ModTime()
	}
	return fw, nil
}

// Watch blocks, delivering debounced change callbacks until Close.
func (fw *FileWatcher) Watch() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fw.check()
		case <-fw.stopChan:
			return
		}
	}
}

func (fw *FileWatcher) check() {
	info, err := os.Stat(fw.path)
	if err != nil {
		return
	}

	fw.mu.Lock()
	changed := !fw.lastMod.IsZero() && info.ModTime().After(fw.lastMod)
	fw.lastMod = info.ModTime()
	fw.mu.Unlock()

	if changed {
		fw.fire()
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
	close(fw.stopChan)
	return nil
}
