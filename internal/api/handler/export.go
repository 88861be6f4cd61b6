package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/delivery-manager-api/pkg/apiErrors"
)

// ExportData retorna o conjunto de dados completo como um arquivo JSON
// para download
func ExportData(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportData")

		document, err := service.BuildDocument()
		if err != nil {
			logrus.Error("Error building export document:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar documento de exportação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.Filename()))

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(document); err != nil {
			logrus.Error("Error encoding export document:", err)
		}
	})
}
