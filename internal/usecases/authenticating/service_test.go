package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/delivery-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/delivery-manager-api/internal/config"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "segredo-de-teste"}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: testConfig()}

	t.Run("Deve criar usuário com senha criptografada e role padrão", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("ana.souza@example.com").
			Return(nil, nil)

		var created *domain.User
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				created = user
				user.ID = 10
				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        " Ana.Souza@Example.com ",
			PasswordHash: "Senha@Forte1",
		})

		assert.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, "ana.souza@example.com", created.Email)
		assert.Equal(t, 3, created.RoleID)
		assert.False(t, created.Active)

		// A senha nunca é persistida em texto plano
		assert.NotEqual(t, "Senha@Forte1", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Senha@Forte1")))
	})

	t.Run("Deve recusar payload sem dados obrigatórios", func(t *testing.T) {
		user, err := service.CreateUser(&domain.User{Name: "Ana"})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Deve recusar email já cadastrado", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("ana.souza@example.com").
			Return(&domain.User{ID: 10}, nil)

		user, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana.souza@example.com",
			PasswordHash: "Senha@Forte1",
		})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: testConfig()}

	activeUser := &domain.User{
		ID:           7,
		Name:         "Bruno",
		Lastname:     "Dias",
		Email:        "bruno.dias@example.com",
		Active:       true,
		RoleID:       2,
		PasswordHash: hashPassword(t, "Senha@Forte1"),
	}

	t.Run("Deve autenticar e emitir token válido", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("bruno.dias@example.com").
			Return(activeUser, nil)

		token, err := service.LoginUser("Bruno.Dias@Example.com", "Senha@Forte1")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "Bruno Dias", claims.DisplayName())
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("Deve recusar usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("ninguem@example.com").
			Return(nil, nil)

		token, err := service.LoginUser("ninguem@example.com", "qualquer")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Deve recusar conta desativada", func(t *testing.T) {
		disabled := *activeUser
		disabled.Active = false

		mockUserRepo.EXPECT().
			GetUserByEmail("bruno.dias@example.com").
			Return(&disabled, nil)

		token, err := service.LoginUser("bruno.dias@example.com", "Senha@Forte1")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Deve recusar senha incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("bruno.dias@example.com").
			Return(activeUser, nil)

		token, err := service.LoginUser("bruno.dias@example.com", "senha-errada")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Deve recusar credenciais vazias", func(t *testing.T) {
		token, err := service.LoginUser("", "")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken_SegredoErrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	issuer := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "segredo-a"}}
	verifier := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "segredo-b"}}

	mockUserRepo.EXPECT().
		GetUserByEmail("carla.moreira@example.com").
		Return(&domain.User{
			ID:           3,
			Name:         "Carla",
			Email:        "carla.moreira@example.com",
			Active:       true,
			PasswordHash: hashPassword(t, "Senha@Forte1"),
		}, nil)

	token, err := issuer.LoginUser("carla.moreira@example.com", "Senha@Forte1")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		password string
		hasError bool
	}{
		{name: "Senha forte deve passar", password: "Senha@Forte1", hasError: false},
		{name: "Senha curta deve falhar", password: "Ab1@", hasError: true},
		{name: "Sem maiúscula deve falhar", password: "senha@forte1", hasError: true},
		{name: "Sem minúscula deve falhar", password: "SENHA@FORTE1", hasError: true},
		{name: "Sem número deve falhar", password: "Senha@Forte", hasError: true},
		{name: "Sem caractere especial deve falhar", password: "SenhaForte1", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: testConfig()}

	t.Run("Administrador gera senha nova para o usuário alvo", func(t *testing.T) {
		admin := &domain.User{ID: 1, RoleID: 1}
		target := &domain.User{ID: 5, RoleID: 3, PasswordHash: "hash-antigo"}

		mockUserRepo.EXPECT().GetUserByID(1).Return(admin, nil)
		mockUserRepo.EXPECT().GetUserByID(5).Return(target, nil)

		var updated *domain.User
		mockUserRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				updated = user
				return nil
			})

		password, err := service.GenerateStrongPassword(1, 5)
		assert.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(password)))
	})

	t.Run("Usuário sem perfil de administrador é recusado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: 3}, nil)

		password, err := service.GenerateStrongPassword(2, 5)
		assert.Empty(t, password)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: testConfig()}

	t.Run("Deve trocar a senha quando a atual confere", func(t *testing.T) {
		user := &domain.User{ID: 4, PasswordHash: hashPassword(t, "Atual@123")}

		mockUserRepo.EXPECT().GetUserByID(4).Return(user, nil)
		mockUserRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		err := service.ChangePassword(4, "Atual@123", "Nova@Senha1")
		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova@Senha1")))
	})

	t.Run("Deve recusar senha atual incorreta", func(t *testing.T) {
		user := &domain.User{ID: 4, PasswordHash: hashPassword(t, "Atual@123")}

		mockUserRepo.EXPECT().GetUserByID(4).Return(user, nil)

		err := service.ChangePassword(4, "errada", "Nova@Senha1")
		assert.Error(t, err)
	})

	t.Run("Deve recusar nova senha fraca", func(t *testing.T) {
		user := &domain.User{ID: 4, PasswordHash: hashPassword(t, "Atual@123")}

		mockUserRepo.EXPECT().GetUserByID(4).Return(user, nil)

		err := service.ChangePassword(4, "Atual@123", "fraca")
		assert.Error(t, err)
	})
}
