package storage

import "sync"

// LockTable — взаимное исключение на уровне записи. Сами операции FileStore
// атомарны поштучно, но последовательности read-modify-write (patch аккаунта,
// двойная запись при создании проверки, каскадное удаление) без этого замка
// теряли бы обновления при гонке двух писателей.
type LockTable struct {
	mu    sync.Mutex
	locks map[string]*recordLock
}

type recordLock struct {
	mu   sync.Mutex
	refs int
}

func NewLockTable() *LockTable {
	return &LockTable{locks: make(map[string]*recordLock)}
}

// Acquire блокирует запись collection/id и возвращает функцию освобождения.
// Запись в таблице живёт, пока есть хоть один держатель.
func (t *LockTable) Acquire(collection, id string) func() {
	key := collection + "/" + id

	t.mu.Lock()
	l, ok := t.locks[key]
	if !ok {
		l = &recordLock{}
		t.locks[key] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, key)
		}
		t.mu.Unlock()
	}
}
