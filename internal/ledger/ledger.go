// Package ledger records where each rewritten local file header landed in
// the output, so that central directory entries can be pointed at them.
//
// A ZIP archive stores all local headers before the central directory. The
// transcoder relies on that physical order to resolve directory entries in a
// single pass: every Put happens before the Lookup that needs it.
package ledger

// Ledger maps decoded filenames to output offsets. The zero value is not
// usable; call New.
type Ledger struct {
	offsets    map[string]uint64
	dirStart   uint64
	dirStarted bool
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{offsets: make(map[string]uint64)}
}

// Put records the output offset of the local header for name. It reports
// whether an earlier offset for the same name was replaced.
func (l *Ledger) Put(name string, off uint64) (replaced bool) {
	_, replaced = l.offsets[name]
	l.offsets[name] = off
	return replaced
}

// Lookup returns the output offset of the local header for name.
func (l *Ledger) Lookup(name string) (uint64, bool) {
	off, ok := l.offsets[name]
	return off, ok
}

// Len returns the number of distinct names recorded.
func (l *Ledger) Len() int {
	return len(l.offsets)
}

// MarkDirectoryStart sets the directory start offset. Only the first call
// has an effect; it reports whether this call set it.
func (l *Ledger) MarkDirectoryStart(off uint64) bool {
	if l.dirStarted {
		return false
	}
	l.dirStart = off
	l.dirStarted = true
	return true
}

// DirectoryStart returns the directory start offset and whether it was set.
func (l *Ledger) DirectoryStart() (uint64, bool) {
	return l.dirStart, l.dirStarted
}
