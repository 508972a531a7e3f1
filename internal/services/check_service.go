package services

import (
	"errors"
	"strings"
	"time"

	"uptimeapi/internal/models"
	"uptimeapi/internal/storage"
	"uptimeapi/internal/utils"
)

const checkIDLength = 20

// CheckService — реестр наблюдаемых проверок. Поддерживает двустороннюю
// согласованность: id каждой проверки числится в списке Checks владельца,
// и каждый id из списка разрешается в существующую запись.
type CheckService interface {
	Create(tokenID string, req *models.CreateCheckRequest) (*models.Check, error)
	Get(id, tokenID string) (*models.Check, error)
	Amend(id string, patch *models.CheckPatch, tokenID string) error
	Remove(id, tokenID string) error
}

type checkService struct {
	store     storage.Store
	locks     *storage.LockTable
	tokens    TokenService
	maxChecks int
}

func NewCheckService(store storage.Store, locks *storage.LockTable, tokens TokenService, maxChecks int) CheckService {
	return &checkService{
		store:     store,
		locks:     locks,
		tokens:    tokens,
		maxChecks: maxChecks,
	}
}

func validProtocol(p string) bool {
	return p == "http" || p == "https"
}

func validMethod(m string) bool {
	switch m {
	case "get", "post", "put", "delete":
		return true
	}
	return false
}

func validTimeout(t int) bool {
	return t >= 1 && t <= 5
}

// Create создаёт проверку от имени владельца токена. Невалидный токен и
// отсутствующий аккаунт неразличимы снаружи — оба ErrUnauthorized, чтобы
// нельзя было перебором выяснять, какие аккаунты существуют.
func (s *checkService) Create(tokenID string, req *models.CreateCheckRequest) (*models.Check, error) {
	token, err := s.liveToken(tokenID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	protocol := strings.TrimSpace(req.Protocol)
	url := strings.TrimSpace(req.URL)
	method := strings.TrimSpace(req.Method)
	switch {
	case !validProtocol(protocol):
		return nil, invalidField("protocol", "must be http or https")
	case url == "":
		return nil, invalidField("url", "must be a non-empty string")
	case !validMethod(method):
		return nil, invalidField("method", "must be one of get, post, put, delete")
	case len(req.SuccessCodes) == 0:
		return nil, invalidField("successCodes", "must be a non-empty list of status codes")
	case !validTimeout(req.TimeoutSeconds):
		return nil, invalidField("timeoutSeconds", "must be an integer between 1 and 5")
	}

	// Замок аккаунта держится на всю последовательность квота -> запись
	// проверки -> дозапись обратной ссылки.
	release := s.locks.Acquire(storage.CollectionAccounts, token.Phone)
	defer release()

	var account models.StoredAccount
	if err := s.store.Read(storage.CollectionAccounts, token.Phone, &account); err != nil {
		return nil, ErrUnauthorized
	}
	if len(account.Checks) >= s.maxChecks {
		return nil, ErrQuotaExceeded
	}

	id, err := utils.NewOpaqueID(checkIDLength)
	if err != nil {
		return nil, err
	}
	check := &models.Check{
		ID:             id,
		UserPhone:      token.Phone,
		Protocol:       protocol,
		URL:            url,
		Method:         method,
		SuccessCodes:   req.SuccessCodes,
		TimeoutSeconds: req.TimeoutSeconds,
	}
	if err := s.store.Create(storage.CollectionChecks, id, check); err != nil {
		return nil, err
	}

	account.Checks = append(account.Checks, id)
	if err := s.store.Update(storage.CollectionAccounts, token.Phone, &account); err != nil {
		// Запись проверки уже на диске: известное окно несогласованности,
		// подбирается reconciliation-проходом.
		return nil, err
	}
	return check, nil
}

// liveToken читает токен и требует, чтобы тот был жив.
func (s *checkService) liveToken(tokenID string) (*models.Token, error) {
	if tokenID == "" {
		return nil, ErrUnauthorized
	}
	token, err := s.tokens.Get(tokenID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !token.Valid(time.Now()) {
		return nil, ErrUnauthorized
	}
	return token, nil
}

// Get возвращает проверку её владельцу. Владение сверяется с userPhone из
// самой записи, а не с тем, что назвал вызывающий.
func (s *checkService) Get(id, tokenID string) (*models.Check, error) {
	var check models.Check
	if err := s.store.Read(storage.CollectionChecks, id, &check); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !s.tokens.Verify(tokenID, check.UserPhone) {
		return nil, ErrUnauthorized
	}
	return &check, nil
}

// Amend применяет частичное обновление; хотя бы одно изменяемое поле
// обязано присутствовать.
func (s *checkService) Amend(id string, patch *models.CheckPatch, tokenID string) error {
	protocol := strings.TrimSpace(patch.Protocol)
	url := strings.TrimSpace(patch.URL)
	method := strings.TrimSpace(patch.Method)
	if protocol == "" && url == "" && method == "" && len(patch.SuccessCodes) == 0 && patch.TimeoutSeconds == 0 {
		return invalidField("patch", "at least one field to update is required")
	}

	release := s.locks.Acquire(storage.CollectionChecks, id)
	defer release()

	var check models.Check
	if err := s.store.Read(storage.CollectionChecks, id, &check); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !s.tokens.Verify(tokenID, check.UserPhone) {
		return ErrUnauthorized
	}

	if protocol != "" {
		if !validProtocol(protocol) {
			return invalidField("protocol", "must be http or https")
		}
		check.Protocol = protocol
	}
	if url != "" {
		check.URL = url
	}
	if method != "" {
		if !validMethod(method) {
			return invalidField("method", "must be one of get, post, put, delete")
		}
		check.Method = method
	}
	if len(patch.SuccessCodes) > 0 {
		check.SuccessCodes = patch.SuccessCodes
	}
	if patch.TimeoutSeconds != 0 {
		if !validTimeout(patch.TimeoutSeconds) {
			return invalidField("timeoutSeconds", "must be an integer between 1 and 5")
		}
		check.TimeoutSeconds = patch.TimeoutSeconds
	}

	return s.store.Update(storage.CollectionChecks, id, &check)
}

// Remove удаляет проверку и вычёркивает её id из списка владельца. Если id
// в списке не нашлось — инвариант уже был нарушен до вызова, ErrIntegrity.
func (s *checkService) Remove(id, tokenID string) error {
	var check models.Check
	if err := s.store.Read(storage.CollectionChecks, id, &check); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !s.tokens.Verify(tokenID, check.UserPhone) {
		return ErrUnauthorized
	}

	release := s.locks.Acquire(storage.CollectionAccounts, check.UserPhone)
	defer release()

	if err := s.store.Delete(storage.CollectionChecks, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	var account models.StoredAccount
	if err := s.store.Read(storage.CollectionAccounts, check.UserPhone, &account); err != nil {
		return ErrIntegrity
	}
	idx := -1
	for i, cid := range account.Checks {
		if cid == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrIntegrity
	}
	account.Checks = append(account.Checks[:idx], account.Checks[idx+1:]...)
	return s.store.Update(storage.CollectionAccounts, check.UserPhone, &account)
}
