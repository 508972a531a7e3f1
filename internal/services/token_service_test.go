package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uptimeapi/internal/models"
	"uptimeapi/internal/storage"
)

func newTestDeps(t *testing.T) (*storage.FileStore, *storage.LockTable, AuthService) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store, storage.NewLockTable(), NewAuthService(4) // минимальный cost, чтобы тесты не тормозили
}

func newTokenService(t *testing.T) (TokenService, *storage.FileStore, AuthService) {
	t.Helper()
	store, locks, auth := newTestDeps(t)
	return NewTokenService(store, locks, auth, time.Hour, 20), store, auth
}

func mustHash(t *testing.T, auth AuthService, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	require.NoError(t, err)
	return h
}

// expire переводит токен в прошлое прямо в хранилище.
func expire(t *testing.T, store storage.Store, id string) {
	t.Helper()
	var token models.Token
	require.NoError(t, store.Read(storage.CollectionTokens, id, &token))
	token.Expires = time.Now().Add(-time.Minute)
	require.NoError(t, store.Update(storage.CollectionTokens, id, &token))
}

func TestIssue_ValidCredentials(t *testing.T) {
	svc, _, auth := newTokenService(t)
	hash := mustHash(t, auth, "pw")

	token, err := svc.Issue("5551234567", "pw", hash)
	require.NoError(t, err)
	assert.Len(t, token.ID, 20)
	assert.Equal(t, "5551234567", token.Phone)

	// срок действия ~ час вперёд
	ahead := time.Until(token.Expires)
	assert.InDelta(t, time.Hour.Seconds(), ahead.Seconds(), 5)

	assert.True(t, svc.Verify(token.ID, "5551234567"))
}

func TestIssue_WrongPassword(t *testing.T) {
	svc, _, auth := newTokenService(t)
	hash := mustHash(t, auth, "pw")

	token, err := svc.Issue("5551234567", "wrong", hash)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, token)
}

func TestVerify_Failures(t *testing.T) {
	svc, store, auth := newTokenService(t)
	token, err := svc.Issue("5551234567", "pw", mustHash(t, auth, "pw"))
	require.NoError(t, err)

	assert.False(t, svc.Verify(token.ID, "0000000000"), "чужой телефон")
	assert.False(t, svc.Verify("nosuchtokenid0000000", "5551234567"), "несуществующий id")
	assert.False(t, svc.Verify("", "5551234567"), "пустой токен")

	expire(t, store, token.ID)
	assert.False(t, svc.Verify(token.ID, "5551234567"), "истёкший токен")
}

func TestExtend_ResetsExpiry(t *testing.T) {
	svc, store, auth := newTokenService(t)
	token, err := svc.Issue("5551234567", "pw", mustHash(t, auth, "pw"))
	require.NoError(t, err)

	// подрежем срок, чтобы продление было заметно
	var stored models.Token
	require.NoError(t, store.Read(storage.CollectionTokens, token.ID, &stored))
	stored.Expires = time.Now().Add(time.Minute)
	require.NoError(t, store.Update(storage.CollectionTokens, token.ID, &stored))

	require.NoError(t, svc.Extend(token.ID))

	require.NoError(t, store.Read(storage.CollectionTokens, token.ID, &stored))
	assert.InDelta(t, time.Hour.Seconds(), time.Until(stored.Expires).Seconds(), 5)
}

func TestExtend_ExpiredNotResurrected(t *testing.T) {
	svc, store, auth := newTokenService(t)
	token, err := svc.Issue("5551234567", "pw", mustHash(t, auth, "pw"))
	require.NoError(t, err)

	expire(t, store, token.ID)
	var before models.Token
	require.NoError(t, store.Read(storage.CollectionTokens, token.ID, &before))

	require.ErrorIs(t, svc.Extend(token.ID), ErrTokenExpired)

	// Expires не тронут
	var after models.Token
	require.NoError(t, store.Read(storage.CollectionTokens, token.ID, &after))
	assert.True(t, before.Expires.Equal(after.Expires))
}

func TestExtend_Missing(t *testing.T) {
	svc, _, _ := newTokenService(t)
	require.ErrorIs(t, svc.Extend("nosuchtokenid0000000"), ErrNotFound)
}

func TestRevoke(t *testing.T) {
	svc, _, auth := newTokenService(t)
	token, err := svc.Issue("5551234567", "pw", mustHash(t, auth, "pw"))
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(token.ID))
	assert.False(t, svc.Verify(token.ID, "5551234567"))

	_, err = svc.Get(token.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Revoke(token.ID), ErrNotFound)
}
