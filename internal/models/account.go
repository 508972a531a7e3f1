package models

// Account — учётная запись, ключ в хранилище = номер телефона (10 символов).
type Account struct {
	Phone          string   `json:"phone"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	HashedPassword string   `json:"-"` // не отдаём наружу
	TOSAgreement   bool     `json:"tosAgreement"`
	Checks         []string `json:"checks"` // id проверок, порядок добавления сохраняется
}

// StoredAccount — то, что реально лежит на диске (вместе с хешем).
// json:"-" на Account.HashedPassword прячет хеш от клиента, но для
// персистенса поле нужно, поэтому отдельный тип.
type StoredAccount struct {
	Phone          string   `json:"phone"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	HashedPassword string   `json:"hashedPassword"`
	TOSAgreement   bool     `json:"tosAgreement"`
	Checks         []string `json:"checks"`
}

// Public возвращает копию без хеша пароля.
func (sa *StoredAccount) Public() *Account {
	return &Account{
		Phone:        sa.Phone,
		FirstName:    sa.FirstName,
		LastName:     sa.LastName,
		TOSAgreement: sa.TOSAgreement,
		Checks:       sa.Checks,
	}
}

type RegisterRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	TOSAgreement bool   `json:"tosAgreement"`
}

// AccountPatch — частичное обновление, хотя бы одно поле должно быть задано.
type AccountPatch struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}
