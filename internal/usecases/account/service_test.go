package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/delivery-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func TestService_CreateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockManagerRepo := mocks.NewMockManagerRepository(ctrl)
	service := &Service{
		accountRepository: mockAccountRepo,
		managerRepository: mockManagerRepo,
	}

	t.Run("Deve criar conta com gerente válido", func(t *testing.T) {
		mockManagerRepo.EXPECT().
			GetManagerByID("MGR001").
			Return(&domain.Manager{ID: "MGR001", Name: "Carla Souza"}, nil)

		mockAccountRepo.EXPECT().
			CreateAccount(gomock.Any()).
			DoAndReturn(func(acc *domain.Account) error {
				assert.NotEmpty(t, acc.ID)
				assert.Equal(t, "Conta A", acc.Name)
				assert.Equal(t, []string{"Go", "TypeScript"}, acc.LanguageStack)
				return nil
			})

		acc, err := service.CreateAccount(&domain.NewAccountRequest{
			Name:          "Conta A",
			ManagerID:     strPtr("MGR001"),
			People:        4,
			LanguageStack: []string{"Go", "TypeScript"},
		})

		assert.NoError(t, err)
		assert.NotNil(t, acc)
	})

	t.Run("Deve rejeitar conta sem nome", func(t *testing.T) {
		_, err := service.CreateAccount(&domain.NewAccountRequest{})

		assert.ErrorIs(t, err, ErrAccountNameRequired)
	})

	t.Run("Deve rejeitar gerente inexistente", func(t *testing.T) {
		mockManagerRepo.EXPECT().
			GetManagerByID("MGR404").
			Return(nil, nil)

		_, err := service.CreateAccount(&domain.NewAccountRequest{
			Name:      "Conta B",
			ManagerID: strPtr("MGR404"),
		})

		assert.ErrorIs(t, err, ErrManagerNotFound)
	})
}

func TestService_GetAccount_Enriquecimento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockManagerRepo := mocks.NewMockManagerRepository(ctrl)
	mockActionItemRepo := mocks.NewMockActionItemRepository(ctrl)
	mockScoreRepo := mocks.NewMockSatisfactionScoreRepository(ctrl)
	service := &Service{
		accountRepository:    mockAccountRepo,
		managerRepository:    mockManagerRepo,
		actionItemRepository: mockActionItemRepo,
		scoreRepository:      mockScoreRepo,
	}

	mockAccountRepo.EXPECT().
		GetAccountByID("ACC001").
		Return(&domain.Account{ID: "ACC001", Name: "Conta A", ManagerID: strPtr("MGR001")}, nil)

	mockManagerRepo.EXPECT().
		GetManagerByID("MGR001").
		Return(&domain.Manager{ID: "MGR001", Name: "Carla Souza"}, nil)

	mockScoreRepo.EXPECT().
		ListScoresByAccount("ACC001").
		Return([]*domain.SatisfactionScore{
			{AccountID: "ACC001", Year: 2025, Quarter: 1, Score: intPtr(80), Comments: "bom começo"},
			{AccountID: "ACC001", Year: 2025, Quarter: 3, Score: intPtr(60)},
			// Nota de outro ano não entra na visão do ano em exibição
			{AccountID: "ACC001", Year: 2024, Quarter: 2, Score: intPtr(10)},
		}, nil)

	mockActionItemRepo.EXPECT().
		ListActionItems().
		Return([]*domain.ActionItem{
			{ID: "A1", AccountID: "ACC001", Description: "revisar contrato"},
			{ID: "A2", AccountID: "ACC999", Description: "outra conta"},
		}, nil)

	enriched, err := service.GetAccount("ACC001", 2025)

	assert.NoError(t, err)
	assert.Equal(t, "Carla Souza", enriched.ManagerName)
	assert.Equal(t, 2025, enriched.DisplayYear)
	assert.Equal(t, intPtr(80), enriched.SatisfactionScore.Q1)
	assert.Nil(t, enriched.SatisfactionScore.Q2)
	assert.Equal(t, intPtr(60), enriched.SatisfactionScore.Q3)
	assert.Equal(t, "bom começo", enriched.QuarterlyComments.Q1)
	assert.Len(t, enriched.ActionItems, 1)
	assert.Equal(t, "A1", enriched.ActionItems[0].ID)
}

func TestService_GetAccount_NaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	service := &Service{accountRepository: mockAccountRepo}

	mockAccountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)

	_, err := service.GetAccount("ACC404", 2025)

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestService_UpdateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockManagerRepo := mocks.NewMockManagerRepository(ctrl)
	service := &Service{
		accountRepository: mockAccountRepo,
		managerRepository: mockManagerRepo,
	}

	t.Run("Deve trocar o gerente após validar que existe", func(t *testing.T) {
		mockManagerRepo.EXPECT().
			GetManagerByID("MGR002").
			Return(&domain.Manager{ID: "MGR002", Name: "Rafael Siqueira"}, nil)

		mockAccountRepo.EXPECT().
			UpdateAccount(gomock.Any()).
			DoAndReturn(func(req *domain.UpdateAccountRequest) error {
				assert.Equal(t, "ACC001", req.ID)
				assert.Equal(t, strPtr("MGR002"), req.ManagerID)
				return nil
			})

		err := service.UpdateAccount(&domain.UpdateAccountRequest{
			ID:        "ACC001",
			ManagerID: strPtr("MGR002"),
		})

		assert.NoError(t, err)
	})

	t.Run("Deve desatribuir o gerente quando manager_id é nulo", func(t *testing.T) {
		// Sem gerente informado não há validação de existência; o nulo
		// chega ao repositório e limpa a atribuição
		mockAccountRepo.EXPECT().
			UpdateAccount(gomock.Any()).
			DoAndReturn(func(req *domain.UpdateAccountRequest) error {
				assert.Nil(t, req.ManagerID)
				return nil
			})

		err := service.UpdateAccount(&domain.UpdateAccountRequest{
			ID:   "ACC001",
			Name: strPtr("Conta A"),
		})

		assert.NoError(t, err)
	})

	t.Run("Deve rejeitar gerente inexistente", func(t *testing.T) {
		mockManagerRepo.EXPECT().
			GetManagerByID("MGR404").
			Return(nil, nil)

		err := service.UpdateAccount(&domain.UpdateAccountRequest{
			ID:        "ACC001",
			ManagerID: strPtr("MGR404"),
		})

		assert.ErrorIs(t, err, ErrManagerNotFound)
	})
}

func TestService_UpsertSatisfaction_Validacao(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		request  *domain.UpsertSatisfactionRequest
		expected error
	}{
		{
			name:     "Sem conta deve falhar",
			request:  &domain.UpsertSatisfactionRequest{Year: 2025, Quarter: 1, Score: 80},
			expected: ErrAccountIDRequired,
		},
		{
			name:     "Trimestre fora de 1-4 deve falhar",
			request:  &domain.UpsertSatisfactionRequest{AccountID: "ACC001", Year: 2025, Quarter: 5, Score: 80},
			expected: ErrInvalidQuarter,
		},
		{
			name:     "Nota fora de 1-100 deve falhar",
			request:  &domain.UpsertSatisfactionRequest{AccountID: "ACC001", Year: 2025, Quarter: 1, Score: 0},
			expected: ErrInvalidScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.UpsertSatisfaction(tt.request)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_ToggleActionItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActionItemRepo := mocks.NewMockActionItemRepository(ctrl)
	service := &Service{actionItemRepository: mockActionItemRepo}

	userID := 3
	by := domain.Attribution{UserID: &userID, UserName: "Ana Lima"}

	t.Run("Concluir item grava os metadados de conclusão juntos", func(t *testing.T) {
		mockActionItemRepo.EXPECT().
			GetActionItemByID("A1").
			Return(&domain.ActionItem{ID: "A1", AccountID: "ACC001", Completed: false}, nil)

		mockActionItemRepo.EXPECT().
			UpdateActionItem(gomock.Any()).
			DoAndReturn(func(item *domain.ActionItem) error {
				assert.True(t, item.Completed)
				assert.Equal(t, &userID, item.CompletedByUserID)
				assert.Equal(t, "Ana Lima", *item.CompletedByUserName)
				assert.NotNil(t, item.CompletedAt)
				return nil
			})

		item, err := service.ToggleActionItem("A1", by)

		assert.NoError(t, err)
		assert.True(t, item.Completed)
	})

	t.Run("Reabrir item limpa os metadados de conclusão juntos", func(t *testing.T) {
		completedBy := "Ana Lima"
		mockActionItemRepo.EXPECT().
			GetActionItemByID("A1").
			Return(&domain.ActionItem{
				ID:                  "A1",
				AccountID:           "ACC001",
				Completed:           true,
				CompletedByUserID:   &userID,
				CompletedByUserName: &completedBy,
			}, nil)

		mockActionItemRepo.EXPECT().
			UpdateActionItem(gomock.Any()).
			DoAndReturn(func(item *domain.ActionItem) error {
				assert.False(t, item.Completed)
				assert.Nil(t, item.CompletedByUserID)
				assert.Nil(t, item.CompletedByUserName)
				assert.Nil(t, item.CompletedAt)
				return nil
			})

		item, err := service.ToggleActionItem("A1", by)

		assert.NoError(t, err)
		assert.False(t, item.Completed)
	})

	t.Run("Item inexistente deve falhar", func(t *testing.T) {
		mockActionItemRepo.EXPECT().GetActionItemByID("A404").Return(nil, nil)

		_, err := service.ToggleActionItem("A404", by)

		assert.ErrorIs(t, err, ErrActionItemNotFound)
	})
}

func TestService_UpsertBilling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBillingRepo := mocks.NewMockBillingRepository(ctrl)
	service := &Service{billingRepository: mockBillingRepo}

	t.Run("Deve gravar com moeda padrão quando não informada", func(t *testing.T) {
		mockBillingRepo.EXPECT().
			UpsertBilling(gomock.Any()).
			DoAndReturn(func(record *domain.BillingRecord) error {
				assert.Equal(t, "USD", record.Currency)
				assert.Equal(t, "2025-03-01", record.BillingMonth)
				return nil
			})

		record, err := service.UpsertBilling(&domain.UpsertBillingRequest{
			AccountID:    "ACC001",
			BillingMonth: "2025-03-01",
			BilledAmount: 1000,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, record.ID)
	})

	t.Run("Mês de cobrança que não é dia primeiro deve falhar", func(t *testing.T) {
		_, err := service.UpsertBilling(&domain.UpsertBillingRequest{
			AccountID:    "ACC001",
			BillingMonth: "2025-03-15",
			BilledAmount: 1000,
		})

		assert.ErrorIs(t, err, ErrInvalidBillingMonth)
	})

	t.Run("Valor negativo deve falhar", func(t *testing.T) {
		_, err := service.UpsertBilling(&domain.UpsertBillingRequest{
			AccountID:    "ACC001",
			BillingMonth: "2025-03-01",
			BilledAmount: -10,
		})

		assert.ErrorIs(t, err, ErrNegativeAmount)
	})
}
