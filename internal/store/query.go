// ABOUTME: Query builder for equality, range, and ordered scans over tables.
// ABOUTME: Indexed fields resolve via index iteration; others fall back to a scan.
package store

import (
	"bytes"
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v3"
)

// Query accumulates criteria against a single field of a table. Results are
// ordered by that field's encoded value (ties by id), ascending unless Desc
// is set. Whether the field is indexed changes retrieval cost, never result
// semantics.
type Query[T any, P Entity[T]] struct {
	t     *Table[T, P]
	field string

	eq       []byte
	lo, hi   []byte
	hasEq    bool
	hasRange bool
	desc     bool
	limit    int
}

// Where starts a query against one field.
func (t *Table[T, P]) Where(field string) *Query[T, P] {
	return &Query[T, P]{t: t, field: field}
}

// OrderBy starts an unfiltered query ordered by the given field.
func (t *Table[T, P]) OrderBy(field string) *Query[T, P] {
	return &Query[T, P]{t: t, field: field}
}

// Equals keeps rows whose field equals the encoded value.
func (q *Query[T, P]) Equals(value []byte) *Query[T, P] {
	q.eq = value
	q.hasEq = true
	return q
}

// Between keeps rows whose field lies in [lo, hi], inclusive.
func (q *Query[T, P]) Between(lo, hi []byte) *Query[T, P] {
	q.lo = lo
	q.hi = hi
	q.hasRange = true
	return q
}

// Desc reverses the result order.
func (q *Query[T, P]) Desc() *Query[T, P] {
	q.desc = true
	return q
}

// Limit caps the number of results. Zero means unlimited.
func (q *Query[T, P]) Limit(n int) *Query[T, P] {
	q.limit = n
	return q
}

// All runs the query and returns the matching records.
func (q *Query[T, P]) All() ([]P, error) {
	if q.t.eng.indexedFields(q.t.name)[q.field] {
		return q.runIndexed()
	}
	return q.runScan()
}

// First returns the first matching record, or ErrNotFound.
func (q *Query[T, P]) First() (P, error) {
	recs, err := q.Limit(1).All()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s where %s: %w", q.t.name, q.field, ErrNotFound)
	}
	return recs[0], nil
}

func (q *Query[T, P]) match(value []byte) bool {
	if q.hasEq {
		return bytes.Equal(value, q.eq)
	}
	if q.hasRange {
		return bytes.Compare(value, q.lo) >= 0 && bytes.Compare(value, q.hi) <= 0
	}
	return true
}

// runIndexed walks the field's index in key order, collecting row ids until
// the limit is reached, then fetches the rows in the same transaction.
func (q *Query[T, P]) runIndexed() ([]P, error) {
	prefix := indexPrefix(q.t.name, q.field)

	var out []P
	err := q.t.eng.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		opts.Reverse = q.desc
		it := txn.NewIterator(opts)
		defer it.Close()

		if q.desc {
			it.Seek(keyUpperBound(prefix))
		} else {
			it.Rewind()
		}

		for ; it.Valid(); it.Next() {
			key := it.Item().KeyCopy(nil)
			value := indexValue(key, prefix)
			if !q.match(value) {
				// Keys are ordered by value, so once past the upper (or,
				// reversed, lower) bound there is nothing left to find.
				if q.pastEnd(value) {
					break
				}
				continue
			}
			rec, err := q.t.get(txn, indexID(key))
			if err != nil {
				return err
			}
			out = append(out, rec)
			if q.limit > 0 && len(out) >= q.limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query %s by %s: %w", q.t.name, q.field, err)
	}
	return out, nil
}

// pastEnd reports whether an unmatched index value lies beyond the query
// bounds in iteration direction, allowing the index walk to stop early.
func (q *Query[T, P]) pastEnd(value []byte) bool {
	switch {
	case q.hasEq:
		if q.desc {
			return bytes.Compare(value, q.eq) < 0
		}
		return bytes.Compare(value, q.eq) > 0
	case q.hasRange:
		if q.desc {
			return bytes.Compare(value, q.lo) < 0
		}
		return bytes.Compare(value, q.hi) > 0
	}
	return false
}

// runScan filters and sorts a full table scan. Used for unindexed fields.
func (q *Query[T, P]) runScan() ([]P, error) {
	recs, err := q.t.All()
	if err != nil {
		return nil, err
	}

	type keyed struct {
		rec P
		val []byte
	}
	var matched []keyed
	for _, rec := range recs {
		val, ok := rec.IndexValues()[q.field]
		if !ok {
			continue
		}
		if q.match(val) {
			matched = append(matched, keyed{rec: rec, val: val})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if c := bytes.Compare(matched[i].val, matched[j].val); c != 0 {
			if q.desc {
				return c > 0
			}
			return c < 0
		}
		if q.desc {
			return matched[i].rec.RecordID() > matched[j].rec.RecordID()
		}
		return matched[i].rec.RecordID() < matched[j].rec.RecordID()
	})

	out := make([]P, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.rec)
		if q.limit > 0 && len(out) >= q.limit {
			break
		}
	}
	return out, nil
}
