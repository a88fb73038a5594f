package storage

import "sync"

// table is an arena-style in-memory collection: rows keyed by a
// monotonically increasing integer id that is never reused, with iteration
// in insertion order. Each table carries its own lock, so concurrent
// read-modify-write cycles on the same collection are serialized.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int
	order  []int
	rows   map[int]T
}

func newTable[T any]() *table[T] {
	return &table[T]{
		nextID: 1,
		rows:   make(map[int]T),
	}
}

// insert assigns the next id, stores the row built with it and returns the row.
func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// filter returns every row matching pred, in insertion order.
func (t *table[T]) filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []T
	for _, id := range t.order {
		if row, ok := t.rows[id]; ok && pred(row) {
			out = append(out, row)
		}
	}
	return out
}

// find returns the first row matching pred, in insertion order.
func (t *table[T]) find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if row, ok := t.rows[id]; ok && pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// update applies apply to the stored row under the write lock and returns
// the merged result. Unknown ids report false and store nothing.
func (t *table[T]) update(id int, apply func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	row = apply(row)
	t.rows[id] = row
	return row, true
}

// updateWhere is update addressed by predicate instead of id.
func (t *table[T]) updateWhere(pred func(T) bool, apply func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range t.order {
		row, ok := t.rows[id]
		if !ok || !pred(row) {
			continue
		}
		row = apply(row)
		t.rows[id] = row
		return row, true
	}
	var zero T
	return zero, false
}

// remove deletes the row and reports whether anything was removed. The id
// stays burned; the insertion-order slice drops the entry.
func (t *table[T]) remove(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}
