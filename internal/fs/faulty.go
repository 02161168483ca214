package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrInjected is what failing operations return unless a rule names its own
// error.
var ErrInjected = errors.New("fs: injected fault")

// Op is a set of operations a FaultyFS can fail.
type Op uint8

const (
	OpWrite Op = 1 << iota
	OpSync
	OpClose
	OpRename
)

type rule struct {
	suffix string
	ops    Op
	after  int64 // bytes accepted before OpWrite fails
	err    error
}

// FaultyFS wraps a FileSystem and fails chosen operations on files whose
// name ends in a configured suffix. Rename faults match the target name.
type FaultyFS struct {
	base  FileSystem
	mu    sync.Mutex
	rules []rule
}

// NewFaultyFS wraps base, or Default when base is nil.
func NewFaultyFS(base FileSystem) *FaultyFS {
	if base == nil {
		base = Default
	}
	return &FaultyFS{base: base}
}

// Fail makes ops fail with err (ErrInjected if nil) on matching files.
// Writes fail from the first byte.
func (f *FaultyFS) Fail(suffix string, ops Op, err error) {
	f.add(rule{suffix: suffix, ops: ops, err: err})
}

// FailWritesAfter lets n bytes through before writes to matching files
// fail with err (ErrInjected if nil).
func (f *FaultyFS) FailWritesAfter(suffix string, n int64, err error) {
	f.add(rule{suffix: suffix, ops: OpWrite, after: n, err: err})
}

func (f *FaultyFS) add(r rule) {
	if r.err == nil {
		r.err = ErrInjected
	}
	f.mu.Lock()
	f.rules = append(f.rules, r)
	f.mu.Unlock()
}

// match returns the last rule registered for name, if any.
func (f *FaultyFS) match(name string) (rule, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.rules) - 1; i >= 0; i-- {
		if strings.HasSuffix(name, f.rules[i].suffix) {
			return f.rules[i], true
		}
	}
	return rule{}, false
}

func (f *FaultyFS) Create(name string, perm os.FileMode) (File, error) {
	file, err := f.base.Create(name, perm)
	if err != nil {
		return nil, err
	}
	r, ok := f.match(name)
	if !ok {
		return file, nil
	}
	return &faultyFile{File: file, rule: r}, nil
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if r, ok := f.match(newpath); ok && r.ops&OpRename != 0 {
		return r.err
	}
	return f.base.Rename(oldpath, newpath)
}

func (f *FaultyFS) Remove(name string) error                     { return f.base.Remove(name) }
func (f *FaultyFS) MkdirAll(path string, perm os.FileMode) error { return f.base.MkdirAll(path, perm) }

type faultyFile struct {
	File
	rule    rule
	written int64
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	if ff.rule.ops&OpWrite != 0 && ff.written+int64(len(p)) > ff.rule.after {
		return 0, ff.rule.err
	}
	n, err := ff.File.Write(p)
	ff.written += int64(n)
	return n, err
}

func (ff *faultyFile) Sync() error {
	if ff.rule.ops&OpSync != 0 {
		return ff.rule.err
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	err := ff.File.Close()
	if ff.rule.ops&OpClose != 0 {
		return ff.rule.err
	}
	return err
}
