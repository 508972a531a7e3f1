package services

import (
	"errors"
	"log"
	"strings"

	"uptimeapi/internal/models"
	"uptimeapi/internal/storage"
)

// AccountService — реестр аккаунтов. Ключ записи — номер телефона.
type AccountService interface {
	Register(req *models.RegisterRequest) (*models.Account, error)
	Fetch(phone, tokenID string) (*models.Account, error)
	Amend(phone string, patch *models.AccountPatch, tokenID string) error
	Retire(phone, tokenID string) error
}

type accountService struct {
	store  storage.Store
	locks  *storage.LockTable
	auth   AuthService
	tokens TokenService
}

func NewAccountService(store storage.Store, locks *storage.LockTable, auth AuthService, tokens TokenService) AccountService {
	return &accountService{
		store:  store,
		locks:  locks,
		auth:   auth,
		tokens: tokens,
	}
}

// Register валидирует поля, хеширует пароль и создаёт запись. Всё или ничего:
// сбой хеширования или записи не оставляет частичного аккаунта.
func (s *accountService) Register(req *models.RegisterRequest) (*models.Account, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	phone := strings.TrimSpace(req.Phone)
	password := strings.TrimSpace(req.Password)

	switch {
	case firstName == "":
		return nil, invalidField("firstName", "must be a non-empty string")
	case lastName == "":
		return nil, invalidField("lastName", "must be a non-empty string")
	case len(phone) != 10:
		return nil, invalidField("phone", "must be exactly 10 characters")
	case password == "":
		return nil, invalidField("password", "must be a non-empty string")
	case !req.TOSAgreement:
		return nil, invalidField("tosAgreement", "must be accepted")
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.StoredAccount{
		Phone:          phone,
		FirstName:      firstName,
		LastName:       lastName,
		HashedPassword: hash,
		TOSAgreement:   true,
		Checks:         []string{},
	}
	if err := s.store.Create(storage.CollectionAccounts, phone, account); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return account.Public(), nil
}

// Fetch отдаёт аккаунт без хеша пароля. Без валидного токена владельца — 403.
func (s *accountService) Fetch(phone, tokenID string) (*models.Account, error) {
	if !s.tokens.Verify(tokenID, phone) {
		return nil, ErrUnauthorized
	}
	var account models.StoredAccount
	if err := s.store.Read(storage.CollectionAccounts, phone, &account); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return account.Public(), nil
}

// Amend применяет частичное обновление; хотя бы одно из трёх полей обязано
// присутствовать. Read-modify-write идёт под замком записи.
func (s *accountService) Amend(phone string, patch *models.AccountPatch, tokenID string) error {
	firstName := strings.TrimSpace(patch.FirstName)
	lastName := strings.TrimSpace(patch.LastName)
	password := strings.TrimSpace(patch.Password)
	if firstName == "" && lastName == "" && password == "" {
		return invalidField("patch", "at least one of firstName, lastName, password is required")
	}

	if !s.tokens.Verify(tokenID, phone) {
		return ErrUnauthorized
	}

	release := s.locks.Acquire(storage.CollectionAccounts, phone)
	defer release()

	var account models.StoredAccount
	if err := s.store.Read(storage.CollectionAccounts, phone, &account); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if firstName != "" {
		account.FirstName = firstName
	}
	if lastName != "" {
		account.LastName = lastName
	}
	if password != "" {
		hash, err := s.auth.HashPassword(password)
		if err != nil {
			return err
		}
		account.HashedPassword = hash
	}

	return s.store.Update(storage.CollectionAccounts, phone, &account)
}

// Retire удаляет аккаунт и затем, best-effort, все его проверки. Аккаунт
// удаляется в любом случае; несработавшая зачистка проверок возвращается
// как CleanupError, а не как тихий успех.
func (s *accountService) Retire(phone, tokenID string) error {
	if !s.tokens.Verify(tokenID, phone) {
		return ErrUnauthorized
	}

	release := s.locks.Acquire(storage.CollectionAccounts, phone)
	defer release()

	var account models.StoredAccount
	if err := s.store.Read(storage.CollectionAccounts, phone, &account); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(storage.CollectionAccounts, phone); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	deleted, failed := 0, 0
	for _, checkID := range account.Checks {
		if err := s.store.Delete(storage.CollectionChecks, checkID); err != nil {
			log.Printf("[accounts][retire] phone=%s: check %s cleanup failed: %v", phone, checkID, err)
			failed++
			continue
		}
		deleted++
	}
	if failed > 0 {
		return &CleanupError{Deleted: deleted, Failed: failed}
	}
	return nil
}
