package services

import (
	"errors"
	"time"

	"uptimeapi/internal/models"
	"uptimeapi/internal/storage"
	"uptimeapi/internal/utils"
)

// TokenService — выдача и проверка opaque bearer-токенов.
// Машина состояний токена: Active -> Active (extend) | Expired (время вышло),
// из Expired назад дороги нет — только удаление.
type TokenService interface {
	Issue(phone, password, storedHash string) (*models.Token, error)
	Get(id string) (*models.Token, error)
	Verify(id, phone string) bool
	Extend(id string) error
	Revoke(id string) error
}

type tokenService struct {
	store storage.Store
	locks *storage.LockTable
	auth  AuthService
	ttl   time.Duration
	idLen int
}

func NewTokenService(store storage.Store, locks *storage.LockTable, auth AuthService, ttl time.Duration, idLen int) TokenService {
	return &tokenService{
		store: store,
		locks: locks,
		auth:  auth,
		ttl:   ttl,
		idLen: idLen,
	}
}

// Issue сверяет пароль с сохранённым хешем и при совпадении создаёт токен
// со сроком действия now+ttl. При несовпадении — ErrUnauthorized, без
// уточнения, что именно не совпало.
func (s *tokenService) Issue(phone, password, storedHash string) (*models.Token, error) {
	if err := s.auth.CheckPassword(storedHash, password); err != nil {
		return nil, ErrUnauthorized
	}

	id, err := utils.NewOpaqueID(s.idLen)
	if err != nil {
		return nil, err
	}
	token := &models.Token{
		ID:      id,
		Phone:   phone,
		Expires: time.Now().Add(s.ttl),
	}
	if err := s.store.Create(storage.CollectionTokens, id, token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *tokenService) Get(id string) (*models.Token, error) {
	var token models.Token
	if err := s.store.Read(storage.CollectionTokens, id, &token); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// Verify — единственные ворота авторизации: токен существует, принадлежит
// phone и ещё не истёк. Любой сбой, включая отсутствие записи, — просто false.
func (s *tokenService) Verify(id, phone string) bool {
	if id == "" {
		return false
	}
	var token models.Token
	if err := s.store.Read(storage.CollectionTokens, id, &token); err != nil {
		return false
	}
	return token.Phone == phone && token.Valid(time.Now())
}

// Extend продлевает живой токен на ttl от текущего момента. Истёкший токен
// не воскрешается — ErrTokenExpired, Expires не меняется.
func (s *tokenService) Extend(id string) error {
	release := s.locks.Acquire(storage.CollectionTokens, id)
	defer release()

	var token models.Token
	if err := s.store.Read(storage.CollectionTokens, id, &token); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !token.Valid(time.Now()) {
		return ErrTokenExpired
	}
	token.Expires = time.Now().Add(s.ttl)
	return s.store.Update(storage.CollectionTokens, id, &token)
}

func (s *tokenService) Revoke(id string) error {
	if err := s.store.Delete(storage.CollectionTokens, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
