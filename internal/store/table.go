// ABOUTME: Generic typed table over the engine: CRUD with index maintenance.
// ABOUTME: Feature services compose tables; there is no subclassing layer.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
)

// Entity is the contract a record type implements to live in a Table.
// IndexValues returns the encoded value for every queryable field; the
// schema decides which of those actually carry an index. Fields whose
// value is absent (nil optionals) are simply omitted from the map.
type Entity[T any] interface {
	*T
	RecordID() uint64
	SetRecordID(uint64)
	IndexValues() map[string][]byte
}

// Table is a typed view over one named entity table.
type Table[T any, P Entity[T]] struct {
	eng  *Engine
	name string
}

// NewTable binds a record type to a named table on the engine.
func NewTable[T any, P Entity[T]](eng *Engine, name string) *Table[T, P] {
	return &Table[T, P]{eng: eng, name: name}
}

// Name returns the table name.
func (t *Table[T, P]) Name() string {
	return t.name
}

// Insert stores a new record, assigns it a fresh id, and returns that id.
func (t *Table[T, P]) Insert(rec P) (uint64, error) {
	id, err := t.eng.nextID(t.name)
	if err != nil {
		return 0, err
	}
	rec.SetRecordID(id)

	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("encode %s row: %w", t.name, err)
	}

	err = t.eng.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(rowKey(t.name, id), data); err != nil {
			return err
		}
		return t.writeIndexes(txn, id, nil, rec.IndexValues())
	})
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", t.name, err)
	}

	t.eng.bus.publish(Event{Table: t.name, Op: OpInsert, ID: id})
	return id, nil
}

// InsertMany stores a batch of records in a single transaction. Used for
// bootstrap seeding where the batch must land all-or-nothing.
func (t *Table[T, P]) InsertMany(recs []P) error {
	ids := make([]uint64, len(recs))
	for i, rec := range recs {
		id, err := t.eng.nextID(t.name)
		if err != nil {
			return err
		}
		rec.SetRecordID(id)
		ids[i] = id
	}

	err := t.eng.db.Update(func(txn *badger.Txn) error {
		for i, rec := range recs {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encode %s row: %w", t.name, err)
			}
			if err := txn.Set(rowKey(t.name, ids[i]), data); err != nil {
				return err
			}
			if err := t.writeIndexes(txn, ids[i], nil, rec.IndexValues()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert %s batch: %w", t.name, err)
	}

	for _, id := range ids {
		t.eng.bus.publish(Event{Table: t.name, Op: OpInsert, ID: id})
	}
	return nil
}

// Get fetches a record by id.
func (t *Table[T, P]) Get(id uint64) (P, error) {
	var rec P
	err := t.eng.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = t.get(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Update applies mutate to the stored record inside one transaction and
// rewrites only the index entries whose values changed. Fields the mutation
// leaves alone keep their prior values; the id cannot be changed.
func (t *Table[T, P]) Update(id uint64, mutate func(P)) (P, error) {
	var rec P
	err := t.eng.db.Update(func(txn *badger.Txn) error {
		var err error
		rec, err = t.get(txn, id)
		if err != nil {
			return err
		}

		before := rec.IndexValues()
		mutate(rec)
		rec.SetRecordID(id)
		after := rec.IndexValues()

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s row: %w", t.name, err)
		}
		if err := txn.Set(rowKey(t.name, id), data); err != nil {
			return err
		}
		return t.rewriteIndexes(txn, id, before, after)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update %s %d: %w", t.name, id, err)
	}

	t.eng.bus.publish(Event{Table: t.name, Op: OpUpdate, ID: id})
	return rec, nil
}

// Delete removes a record and its index entries.
func (t *Table[T, P]) Delete(id uint64) error {
	err := t.eng.db.Update(func(txn *badger.Txn) error {
		rec, err := t.get(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(rowKey(t.name, id)); err != nil {
			return err
		}
		return t.rewriteIndexes(txn, id, rec.IndexValues(), nil)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete %s %d: %w", t.name, id, err)
	}

	t.eng.bus.publish(Event{Table: t.name, Op: OpDelete, ID: id})
	return nil
}

// All returns every record in ascending id order.
func (t *Table[T, P]) All() ([]P, error) {
	var out []P
	err := t.eng.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = rowPrefix(t.name)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			rec, err := t.decodeItem(it.Item())
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.name, err)
	}
	return out, nil
}

// Count returns the number of rows in the table.
func (t *Table[T, P]) Count() (int, error) {
	n := 0
	err := t.eng.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = rowPrefix(t.name)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

func (t *Table[T, P]) get(txn *badger.Txn, id uint64) (P, error) {
	item, err := txn.Get(rowKey(t.name, id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%s %d: %w", t.name, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", t.name, id, err)
	}
	data, err := item.ValueCopy(nil)
	if err != nil {
		return nil, fmt.Errorf("read %s %d: %w", t.name, id, err)
	}
	return t.decode(data)
}

func (t *Table[T, P]) decode(data []byte) (P, error) {
	rec := P(new(T))
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decode %s row: %w", t.name, err)
	}
	return rec, nil
}

func (t *Table[T, P]) decodeItem(item *badger.Item) (P, error) {
	data, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	return t.decode(data)
}

// writeIndexes adds entries for every indexed field present in after.
func (t *Table[T, P]) writeIndexes(txn *badger.Txn, id uint64, before, after map[string][]byte) error {
	return t.rewriteIndexes(txn, id, before, after)
}

// rewriteIndexes reconciles index entries between two value snapshots.
// Passing nil for before handles inserts; nil for after handles deletes.
func (t *Table[T, P]) rewriteIndexes(txn *badger.Txn, id uint64, before, after map[string][]byte) error {
	for field := range t.eng.indexedFields(t.name) {
		oldVal, hadOld := before[field]
		newVal, hasNew := after[field]

		if hadOld && hasNew && bytes.Equal(oldVal, newVal) {
			continue
		}
		if hadOld {
			if err := txn.Delete(indexKey(t.name, field, oldVal, id)); err != nil {
				return err
			}
		}
		if hasNew {
			if err := txn.Set(indexKey(t.name, field, newVal, id), nil); err != nil {
				return err
			}
		}
	}
	return nil
}
