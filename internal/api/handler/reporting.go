package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/delivery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
)

// optionalQuery retorna o valor da query string ou nil quando ausente
func optionalQuery(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// GetDashboard monta a grade do trimestre, com filtro opcional por gerente
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		quarter := r.URL.Query().Get("quarter")
		if quarter == "" {
			quarter = period.CurrentQuarter()
		}

		dashboard, err := service.Dashboard(quarter, optionalQuery(r, "manager_id"))
		if err != nil {
			logrus.Error("Error building dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Trimestre inválido. Formato esperado: Q1-2025", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetWeekSummary calcula as estatísticas do cabeçalho para uma semana
func GetWeekSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		week := r.URL.Query().Get("week")
		if week == "" {
			week = period.CurrentMonday()
		}

		var statusFilter *domain.Status
		if value := r.URL.Query().Get("status"); value != "" {
			status := domain.Status(value)
			if !status.Valid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status inválido. Valores aceitos: healthy, attention, critical", nil)
				return
			}
			statusFilter = &status
		}

		summary, err := service.WeekSummary(week, optionalQuery(r, "manager_id"), statusFilter)
		if err != nil {
			logrus.Error("Error building week summary:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Semana deve ser uma segunda-feira em YYYY-MM-DD", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetMonthlyBilling soma o faturamento de todas as contas em um mês
func GetMonthlyBilling(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if month == "" {
			month = period.CurrentMonth()
		}

		total, err := service.MonthlyBilling(month)
		if err != nil {
			logrus.Error("Error calculating monthly billing:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mês inválido. Formato esperado: 2025-03", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"month": month,
			"total": total,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetManagerSummary agrupa as contas por gerente em um (ano, mês)
func GetManagerSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		year := now.Year()
		if value := r.URL.Query().Get("year"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = parsed
		}

		month := now.Month()
		if value := r.URL.Query().Get("month"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed < 1 || parsed > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês deve estar entre 1 e 12", nil)
				return
			}
			month = time.Month(parsed)
		}

		rollups, err := service.ManagerSummary(year, month)
		if err != nil {
			logrus.Error("Error building manager summary:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar resumo por gerente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(rollups); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetYearComparison compara faturamento e pessoas entre anos, mês a mês
func GetYearComparison(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		yearsParam := r.URL.Query().Get("years")
		if yearsParam == "" {
			current := time.Now().Year()
			yearsParam = strconv.Itoa(current-1) + "," + strconv.Itoa(current)
		}

		var years []int
		for _, value := range strings.Split(yearsParam, ",") {
			year, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Lista de anos inválida. Formato esperado: 2024,2025", nil)
				return
			}
			years = append(years, year)
		}

		comparison, err := service.YearComparison(years, optionalQuery(r, "account_id"))
		if err != nil {
			logrus.Error("Error building year comparison:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar comparação anual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(comparison); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetAccountAnalytics gera a série semanal de pessoas e faturamento de uma
// conta em um trimestre
func GetAccountAnalytics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		quarter := r.URL.Query().Get("quarter")
		if quarter == "" {
			quarter = period.CurrentQuarter()
		}

		series, err := service.AccountAnalytics(id, quarter)
		if err != nil {
			logrus.Error("Error building analytics series:", err)

			if errors.Is(err, reporting.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Trimestre inválido. Formato esperado: Q1-2025", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(series); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetSatisfactionOverview monta a visão anual de satisfação de uma conta
func GetSatisfactionOverview(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		overview, err := service.SatisfactionOverview(id, displayYear(r))
		if err != nil {
			logrus.Error("Error building satisfaction overview:", err)

			if errors.Is(err, reporting.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar visão de satisfação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(overview); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
