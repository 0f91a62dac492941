// ABOUTME: Badger-backed indexed-table engine with versioned schema migration.
// ABOUTME: Owns the database handle, id sequences, and the change event bus.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	badger "github.com/dgraph-io/badger/v3"
)

var (
	// ErrNotFound is returned when a row id or query match does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSchemaAhead is returned when the persisted schema version is newer
	// than the versions this build knows about. Schema evolution is
	// forward-only; downgrades must not touch the store.
	ErrSchemaAhead = errors.New("stored schema version is newer than this build")
)

var versionKey = []byte("m:version")

// Options configures an Engine.
type Options struct {
	// Path is the Badger directory. Ignored when InMemory is set.
	Path string

	// Schema is the ordered version history applied on open.
	Schema []Version

	// Logger receives migration and seed diagnostics. Optional.
	Logger *log.Logger

	// InMemory opens a throwaway database with no files on disk.
	InMemory bool
}

// Engine is the storage core: generic CRUD and indexed queries over named
// tables, with a change notification bus. One Engine per process, opened by
// the entry point and handed to the feature services that need it.
type Engine struct {
	db      *badger.DB
	bus     *Bus
	log     *log.Logger
	indexed map[string]map[string]bool
	version int

	mu   sync.Mutex
	seqs map[string]*badger.Sequence
}

// Open opens (or creates) the database and brings its schema up to date.
// Opening a store whose persisted version is ahead of opts.Schema fails
// with ErrSchemaAhead.
func Open(opts Options) (*Engine, error) {
	if err := validateSchema(opts.Schema); err != nil {
		return nil, fmt.Errorf("validate schema: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bopts := badger.DefaultOptions(opts.Path).WithLogger(nil)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	e := &Engine{
		db:      db,
		bus:     newBus(),
		log:     logger,
		indexed: map[string]map[string]bool{},
		seqs:    map[string]*badger.Sequence{},
	}

	if err := e.migrate(opts.Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return e, nil
}

// Close releases id sequences and closes the database.
func (e *Engine) Close() error {
	e.mu.Lock()
	for _, seq := range e.seqs {
		_ = seq.Release()
	}
	e.seqs = map[string]*badger.Sequence{}
	e.mu.Unlock()

	e.bus.close()
	return e.db.Close()
}

// Bus returns the change notification bus.
func (e *Engine) Bus() *Bus {
	return e.bus
}

// Version reports the schema version the store is at after open.
func (e *Engine) Version() int {
	return e.version
}

// migrate applies every schema version after the persisted one, in order.
// Version changes are additive, so rows are never rewritten; the only work
// besides bookkeeping is backfilling index entries when a version adds
// indexed fields to a table that already holds rows.
func (e *Engine) migrate(versions []Version) error {
	stored, err := e.storedVersion()
	if err != nil {
		return err
	}
	if stored > len(versions) {
		return fmt.Errorf("%w: stored %d, supported %d", ErrSchemaAhead, stored, len(versions))
	}

	// Index sets already in effect at the stored version.
	for _, v := range versions[:stored] {
		for _, def := range v.Tables {
			e.registerTable(def)
		}
	}

	for vi := stored; vi < len(versions); vi++ {
		for _, def := range versions[vi].Tables {
			added := e.newFields(def)
			existing := len(e.indexed[def.Name]) > 0
			e.registerTable(def)
			if existing && len(added) > 0 {
				if err := e.backfill(def, added); err != nil {
					return fmt.Errorf("apply schema version %d: %w", vi+1, err)
				}
			}
		}
		if err := e.writeVersion(vi + 1); err != nil {
			return err
		}
		e.log.Info("schema migrated", "version", vi+1)
	}

	e.version = len(versions)
	return nil
}

func (e *Engine) registerTable(def TableDef) {
	fields := e.indexed[def.Name]
	if fields == nil {
		fields = map[string]bool{}
		e.indexed[def.Name] = fields
	}
	for _, f := range def.Indexed {
		fields[f] = true
	}
}

// newFields lists the indexed fields in def that are not yet registered.
func (e *Engine) newFields(def TableDef) []string {
	var added []string
	for _, f := range def.Indexed {
		if !e.indexed[def.Name][f] {
			added = append(added, f)
		}
	}
	return added
}

// backfill writes index entries for newly indexed fields across every
// existing row of the table.
func (e *Engine) backfill(def TableDef, fields []string) error {
	prefix := rowPrefix(def.Name)
	rows := 0

	err := e.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			id := decodeID(item.Key()[len(prefix):])
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			values, err := def.Index(data)
			if err != nil {
				return fmt.Errorf("decode %s row %d: %w", def.Name, id, err)
			}
			for _, f := range fields {
				val, ok := values[f]
				if !ok {
					continue
				}
				if err := txn.Set(indexKey(def.Name, f, val, id), nil); err != nil {
					return err
				}
			}
			rows++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("backfill %s indexes %v: %w", def.Name, fields, err)
	}
	if rows > 0 {
		e.log.Info("backfilled indexes", "table", def.Name, "fields", fields, "rows", rows)
	}
	return nil
}

func (e *Engine) storedVersion() (int, error) {
	var v int
	err := e.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(versionKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) == 8 {
				v = int(binary.BigEndian.Uint64(val))
			}
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

func (e *Engine) writeVersion(v int) error {
	err := e.db.Update(func(txn *badger.Txn) error {
		return txn.Set(versionKey, Uint(uint64(v)))
	})
	if err != nil {
		return fmt.Errorf("write schema version %d: %w", v, err)
	}
	return nil
}

// indexedFields reports which fields of a table carry secondary indexes.
func (e *Engine) indexedFields(table string) map[string]bool {
	return e.indexed[table]
}

// nextID hands out the next id for a table. Ids start at 1, increase
// monotonically, and are never reused, even across restarts.
func (e *Engine) nextID(table string) (uint64, error) {
	e.mu.Lock()
	seq, ok := e.seqs[table]
	if !ok {
		var err error
		seq, err = e.db.GetSequence([]byte("s:"+table), 128)
		if err != nil {
			e.mu.Unlock()
			return 0, fmt.Errorf("sequence for %s: %w", table, err)
		}
		e.seqs[table] = seq
	}
	e.mu.Unlock()

	n, err := seq.Next()
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", table, err)
	}
	return n + 1, nil
}
