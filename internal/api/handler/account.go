package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/account"
	"github.com/vfg2006/delivery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/delivery-manager-api/pkg/middleware"
)

// displayYear resolve o ano em exibição a partir da query string, com o
// ano corrente como padrão
func displayYear(r *http.Request) int {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return time.Now().Year()
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Now().Year()
	}
	return year
}

// attributionFromRequest extrai a atribuição do usuário logado
func attributionFromRequest(r *http.Request) domain.Attribution {
	claims, _ := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return domain.AttributionFromClaims(claims)
}

// writeAccountError traduz os erros do usecase de contas para a resposta HTTP
func writeAccountError(w http.ResponseWriter, err error, fallback string) {
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), map[string]interface{}{
			"account_id": accountErr.AccountID,
		})
		return
	}

	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)

	case errors.Is(err, account.ErrManagerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Gerente não encontrado", nil)

	case errors.Is(err, account.ErrDatabaseOperation) || errors.Is(err, account.ErrFetchAccounts):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func AccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts(displayYear(r))
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			writeAccountError(w, err, "Erro ao listar contas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		enriched, err := service.GetAccount(id, displayYear(r))
		if err != nil {
			logrus.Error("Error fetching account:", err)
			writeAccountError(w, err, "Erro ao consultar conta")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(enriched); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAccount")

		var request domain.NewAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateAccount(&request)
		if err != nil {
			logrus.Error("Error creating account:", err)
			writeAccountError(w, err, "Erro ao criar conta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAccount")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var request domain.UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		request.ID = id

		if err := service.UpdateAccount(&request); err != nil {
			logrus.Error("Error updating account:", err)
			writeAccountError(w, err, "Erro interno ao atualizar conta")
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

func ManagerList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		managers, err := service.ListManagers()
		if err != nil {
			logrus.Error("Error listing managers:", err)
			writeAccountError(w, err, "Erro ao listar gerentes")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(managers); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpsertSatisfaction(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertSatisfaction")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var request domain.UpsertSatisfactionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request.AccountID = id

		if err := service.UpsertSatisfaction(&request); err != nil {
			logrus.Error("Error upserting satisfaction score:", err)

			switch {
			case errors.Is(err, account.ErrInvalidQuarter):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Trimestre deve estar entre 1 e 4", nil)

			case errors.Is(err, account.ErrInvalidScore):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nota deve estar entre 1 e 100", nil)

			default:
				writeAccountError(w, err, "Erro ao gravar nota de satisfação")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
}

func CreateActionItem(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateActionItem")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var request domain.NewActionItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request.AccountID = id

		created, err := service.CreateActionItem(&request, attributionFromRequest(r))
		if err != nil {
			logrus.Error("Error creating action item:", err)

			if errors.Is(err, account.ErrInvalidPriority) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Prioridade inválida. Valores aceitos: low, medium, high", nil)
				return
			}

			writeAccountError(w, err, "Erro ao criar item de ação")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ToggleActionItem(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ToggleActionItem")

		itemID := httprouter.ParamsFromContext(r.Context()).ByName("item_id")
		if itemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do item de ação é obrigatório", nil)
			return
		}

		item, err := service.ToggleActionItem(itemID, attributionFromRequest(r))
		if err != nil {
			logrus.Error("Error toggling action item:", err)

			if errors.Is(err, account.ErrActionItemNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Item de ação não encontrado", nil)
				return
			}

			writeAccountError(w, err, "Erro ao alternar item de ação")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(item); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpsertBilling(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertBilling")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var request domain.UpsertBillingRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request.AccountID = id

		record, err := service.UpsertBilling(&request)
		if err != nil {
			logrus.Error("Error upserting billing record:", err)

			switch {
			case errors.Is(err, account.ErrInvalidBillingMonth):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mês de cobrança deve ser o primeiro dia do mês em YYYY-MM-DD", nil)

			case errors.Is(err, account.ErrNegativeAmount):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Valor de cobrança não pode ser negativo", nil)

			default:
				writeAccountError(w, err, "Erro ao gravar cobrança")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
