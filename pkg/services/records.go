package services

import (
	"sync"

	"github.com/gradeit/gradeit/pkg/data"
)

// RecordList is the ordered list of scan records shared by every
// in-flight scan. Updates are keyed by record id under one mutex, so
// concurrent scans converge independently without clobbering each other.
type RecordList struct {
	mu      sync.Mutex
	records []data.ScanRecord
}

func NewRecordList() *RecordList {
	return &RecordList{}
}

// Append adds a record to the end of the list.
func (l *RecordList) Append(rec data.ScanRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
}

// Update applies fn to the record with the given id under the lock.
func (l *RecordList) Update(id string, fn func(*data.ScanRecord)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.records {
		if l.records[i].ID == id {
			fn(&l.records[i])
			return true
		}
	}
	return false
}

// Get returns a copy of the record with the given id.
func (l *RecordList) Get(id string) (data.ScanRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.records {
		if l.records[i].ID == id {
			return l.records[i], true
		}
	}
	return data.ScanRecord{}, false
}

// Delete removes the record with the given id, leaving every other
// record in its original relative order.
func (l *RecordList) Delete(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.records {
		if l.records[i].ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the list.
func (l *RecordList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}

// Snapshot returns a copy of the list in order.
func (l *RecordList) Snapshot() []data.ScanRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]data.ScanRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *RecordList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
