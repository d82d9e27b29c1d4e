package chopper

import (
	"fmt"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// SeenStore records which peptides have already been written.
type SeenStore interface {
	Has(peptide []byte) (bool, error)
	Put(peptide []byte) error
	Len() int
	Close() error
}

// Filter suppresses peptides that were accepted before, anywhere in the
// run. The store only ever grows.
type Filter struct {
	store    SeenStore
	accepted int
	rejected int
}

func NewFilter(store SeenStore) *Filter {
	return &Filter{store: store}
}

// Accept reports whether peptide is new, marking it seen if so.
// Comparison is exact and case sensitive.
func (f *Filter) Accept(peptide []byte) (bool, error) {
	seen, err := f.store.Has(peptide)
	if err != nil {
		return false, fmt.Errorf("dedup lookup: %w", err)
	}
	if seen {
		f.rejected++
		return false, nil
	}
	if err := f.store.Put(peptide); err != nil {
		return false, fmt.Errorf("dedup insert: %w", err)
	}
	f.accepted++
	return true, nil
}

func (f *Filter) Accepted() int { return f.accepted }
func (f *Filter) Rejected() int { return f.rejected }

// MemoryStore keeps the seen set in a Go map.
type MemoryStore struct {
	seen map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]struct{})}
}

func (m *MemoryStore) Has(p []byte) (bool, error) {
	_, ok := m.seen[string(p)]
	return ok, nil
}

func (m *MemoryStore) Put(p []byte) error {
	m.seen[string(p)] = struct{}{}
	return nil
}

func (m *MemoryStore) Len() int     { return len(m.seen) }
func (m *MemoryStore) Close() error { return nil }

// LevelStore keeps the seen set in a LevelDB database on disk, for digests
// whose unique peptides do not fit in memory. The database lives in a
// private directory that is removed on Close.
type LevelStore struct {
	db  *leveldb.DB
	dir string
	n   int
}

var noValue = []byte{}

// OpenLevelStore creates a fresh database in a new directory under parent.
func OpenLevelStore(parent string) (*LevelStore, error) {
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("seen store: %w", err)
	}
	dir, err := os.MkdirTemp(parent, "chopper-seen-")
	if err != nil {
		return nil, fmt.Errorf("seen store: %w", err)
	}
	db, err := leveldb.OpenFile(dir, &opt.Options{
		WriteBuffer:        32 * opt.MiB,
		BlockCacheCapacity: 64 * opt.MiB,
	})
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("seen store: %w", err)
	}
	return &LevelStore{db: db, dir: dir}, nil
}

func (l *LevelStore) Has(p []byte) (bool, error) {
	return l.db.Has(p, nil)
}

func (l *LevelStore) Put(p []byte) error {
	if err := l.db.Put(p, noValue, nil); err != nil {
		return err
	}
	l.n++
	return nil
}

func (l *LevelStore) Len() int { return l.n }

// Dir is the directory holding the database.
func (l *LevelStore) Dir() string { return l.dir }

func (l *LevelStore) Close() error {
	err := l.db.Close()
	if rerr := os.RemoveAll(l.dir); rerr != nil && err == nil {
		err = rerr
	}
	return err
}
