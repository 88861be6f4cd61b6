package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/tracking"
	"github.com/vfg2006/delivery-manager-api/pkg/apiErrors"
)

// writeTrackingError traduz os erros de validação do acompanhamento semanal
func writeTrackingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, tracking.ErrAccountIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)

	case errors.Is(err, tracking.ErrInvalidWeek):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Semana deve ser uma segunda-feira em YYYY-MM-DD", nil)

	case errors.Is(err, tracking.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status inválido. Valores aceitos: healthy, attention, critical", nil)

	case errors.Is(err, tracking.ErrNegativePeople):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade de pessoas não pode ser negativa", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// UpdateWeekStatus grava a edição de uma semana e propaga o status para as
// semanas seguintes do mesmo mês
func UpdateWeekStatus(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateWeekStatus")

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		week := params.ByName("week")

		var request domain.UpdateWeekStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Os identificadores da URL prevalecem sobre o corpo
		request.AccountID = accountID
		request.Week = week

		if err := service.ApplyStatusEdit(&request, attributionFromRequest(r)); err != nil {
			logrus.Error("Error updating week status:", err)
			writeTrackingError(w, err, "Erro ao gravar status da semana")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
}

// ToggleWeekStatus avança o status efetivo da semana um passo no ciclo
// healthy, attention, critical
func ToggleWeekStatus(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ToggleWeekStatus")

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		week := params.ByName("week")

		status, err := service.ToggleWeekStatus(accountID, week, attributionFromRequest(r))
		if err != nil {
			logrus.Error("Error toggling week status:", err)
			writeTrackingError(w, err, "Erro ao alternar status da semana")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(status); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DeleteWeekStatus remove o registro explícito de uma semana. A remoção
// não propaga para as demais semanas do mês
func DeleteWeekStatus(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteWeekStatus")

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		week := params.ByName("week")

		if err := service.DeleteWeekStatus(accountID, week); err != nil {
			logrus.Error("Error deleting week status:", err)
			writeTrackingError(w, err, "Erro ao remover status da semana")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
