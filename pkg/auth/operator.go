package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials ocorre quando email ou senha não conferem
var ErrInvalidCredentials = errors.New("email ou senha incorretos")

// Operator é o usuário autorizado a emitir notas em nome da empresa
type Operator struct {
	Email        string
	PasswordHash string
	CompanyID    string
}

// OperatorAuthenticator confere as credenciais do operador configurado
type OperatorAuthenticator struct {
	operator Operator
}

// NewOperatorAuthenticator cria o autenticador para o operador informado
func NewOperatorAuthenticator(op Operator) *OperatorAuthenticator {
	return &OperatorAuthenticator{operator: op}
}

// Authenticate verifica email e senha
func (a *OperatorAuthenticator) Authenticate(email, password string) (*Operator, error) {
	if a.operator.Email == "" || a.operator.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), a.operator.Email) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.operator.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	op := a.operator
	return &op, nil
}

// HashPassword gera o hash bcrypt de uma senha
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
