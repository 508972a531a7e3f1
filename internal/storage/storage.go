package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Имена коллекций, используемые сервисами.
const (
	CollectionAccounts = "accounts"
	CollectionTokens   = "tokens"
	CollectionChecks   = "checks"
)

var (
	// ErrNotFound — записи нет; штатный исход, не авария хранилища.
	ErrNotFound = errors.New("storage: record not found")
	// ErrAlreadyExists — эксклюзивное создание поверх существующей записи.
	ErrAlreadyExists = errors.New("storage: record already exists")
	// ErrBadName — имя коллекции или id вне допустимого алфавита.
	ErrBadName = errors.New("storage: invalid collection or id")
)

// validName — только безопасные для файловой системы имена, никаких
// разделителей пути. Генераторы id выдают [a-z0-9], так что ограничение
// ничего легального не отсекает.
var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type Store interface {
	Create(collection, id string, v any) error
	Read(collection, id string, v any) error
	Update(collection, id string, v any) error
	Delete(collection, id string) error
	List(collection string) ([]string, error)
}

// FileStore — каталог на коллекцию, файл <id>.json на запись.
// Никакого кеша: каждый вызов идёт на диск, диск — единственный источник истины.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) (*FileStore, error) {
	for _, c := range []string{CollectionAccounts, CollectionTokens, CollectionChecks} {
		if err := os.MkdirAll(filepath.Join(baseDir, c), 0o755); err != nil {
			return nil, fmt.Errorf("storage: create collection dir %s: %w", c, err)
		}
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) BaseDir() string {
	return s.baseDir
}

func (s *FileStore) path(collection, id string) (string, error) {
	if !validName.MatchString(collection) || !validName.MatchString(id) {
		return "", ErrBadName
	}
	return filepath.Join(s.baseDir, collection, id+".json"), nil
}

// Create пишет новую запись; существующий файл — ошибка, не перезапись.
func (s *FileStore) Create(collection, id string, v any) error {
	p, err := s.path(collection, id)
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s/%s: %w", collection, id, err)
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("storage: create %s/%s: %w", collection, id, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("storage: write %s/%s: %w", collection, id, err)
	}
	return f.Close()
}

// Read декодирует запись в v; частичного декода не бывает — либо запись
// целиком, либо ошибка.
func (s *FileStore) Read(collection, id string, v any) error {
	p, err := s.path(collection, id)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("storage: read %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("storage: decode %s/%s: %w", collection, id, err)
	}
	return nil
}

// Update заменяет содержимое существующей записи целиком (truncate + rewrite,
// как в исходной реализации). Отсутствующая запись — ErrNotFound.
func (s *FileStore) Update(collection, id string, v any) error {
	p, err := s.path(collection, id)
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s/%s: %w", collection, id, err)
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("storage: open %s/%s for update: %w", collection, id, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("storage: rewrite %s/%s: %w", collection, id, err)
	}
	return f.Close()
}

func (s *FileStore) Delete(collection, id string) error {
	p, err := s.path(collection, id)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("storage: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// List перечисляет id всех записей коллекции. Порядок не гарантируется.
// Отсутствующий каталог коллекции эквивалентен пустой коллекции.
func (s *FileStore) List(collection string) ([]string, error) {
	if !validName.MatchString(collection) {
		return nil, ErrBadName
	}
	entries, err := os.ReadDir(filepath.Join(s.baseDir, collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: list %s: %w", collection, err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}
