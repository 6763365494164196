package authenticating

import (
	"strings"
	"testing"

	"github.com/adamanz/crm-api/infrastructure/repository/mocks"
	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "chave-de-teste"}
	service := NewService(mockUserRepo, cfg)

	hashed, err := bcrypt.GenerateFromPassword([]byte("Senha@Forte1"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           1,
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@example.com",
			PasswordHash: string(hashed),
			Active:       true,
			RoleID:       1,
		}
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		validate func(token string, err error)
	}{
		{
			name:     "Deve rejeitar login sem credenciais",
			email:    "",
			password: "",
			setup:    func() {},
			validate: func(token string, err error) {
				assert.Empty(t, token)
				assert.Error(t, err)
			},
		},
		{
			name:     "Deve rejeitar usuário inexistente",
			email:    "maria@example.com",
			password: "Senha@Forte1",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("maria@example.com").Return(nil, nil)
			},
			validate: func(token string, err error) {
				assert.Empty(t, token)
				assert.Error(t, err)
			},
		},
		{
			name:     "Deve rejeitar conta desativada",
			email:    "maria@example.com",
			password: "Senha@Forte1",
			setup: func() {
				disabled := activeUser()
				disabled.Active = false
				mockUserRepo.EXPECT().GetUserByEmail("maria@example.com").Return(disabled, nil)
			},
			validate: func(token string, err error) {
				assert.Empty(t, token)
				assert.Error(t, err)
			},
		},
		{
			name:     "Deve rejeitar senha incorreta",
			email:    "maria@example.com",
			password: "senha-errada",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("maria@example.com").Return(activeUser(), nil)
			},
			validate: func(token string, err error) {
				assert.Empty(t, token)
				assert.Error(t, err)
			},
		},
		{
			name:     "Deve normalizar o e-mail e gerar token válido",
			email:    "  Maria@Example.com ",
			password: "Senha@Forte1",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("maria@example.com").Return(activeUser(), nil)
			},
			validate: func(token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, "maria@example.com", claims.UserEmail)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(token, err)
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, &config.Config{})

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{
			name:     "Deve aceitar senha com todos os requisitos",
			password: "Senha@Forte1",
			valid:    true,
		},
		{
			name:     "Deve rejeitar senha curta",
			password: "S@f1",
			valid:    false,
		},
		{
			name:     "Deve rejeitar senha sem maiúscula",
			password: "senha@forte1",
			valid:    false,
		},
		{
			name:     "Deve rejeitar senha sem minúscula",
			password: "SENHA@FORTE1",
			valid:    false,
		},
		{
			name:     "Deve rejeitar senha sem número",
			password: "Senha@Forte",
			valid:    false,
		},
		{
			name:     "Deve rejeitar senha sem caractere especial",
			password: "SenhaForte1",
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	password, err := generateStrongPassword(12)

	assert.NoError(t, err)
	assert.Len(t, password, 12)
	assert.True(t, strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz"))
	assert.True(t, strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	assert.True(t, strings.ContainsAny(password, "0123456789"))
	assert.True(t, strings.ContainsAny(password, "!@#$%^&*()-_=+[]{}|;:,.<>?"))
}

func TestHandleEmail(t *testing.T) {
	assert.Equal(t, "maria@example.com", handleEmail("  Maria@Example.com "))
	assert.Equal(t, "joao@example.com", handleEmail("joao @example.com"))
}
