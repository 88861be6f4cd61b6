package exporting

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/tracking"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document é o pacote completo de dados exportado para download ou backup
type Document struct {
	Managers    []*domain.Manager           `json:"managers"`
	Accounts    []*domain.Account           `json:"accounts"`
	Statuses    []*domain.WeeklyStatus      `json:"statuses"`
	ActionItems []*domain.ActionItem        `json:"actionItems"`
	Scores      []*domain.SatisfactionScore `json:"satisfactionScores"`
	Billing     []*domain.BillingRecord     `json:"billing"`
}

type Exporter interface {
	BuildDocument() (*Document, error)
	Filename() string
	WriteSnapshot(outputDir string) (string, error)
}

type Service struct {
	tracker tracking.Tracker
}

func NewService(tracker tracking.Tracker) Exporter {
	return &Service{tracker: tracker}
}

// BuildDocument monta o documento de exportação a partir de um snapshot novo
func (s *Service) BuildDocument() (*Document, error) {
	snapshot, err := s.tracker.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar os dados para exportação: %w", err)
	}

	return &Document{
		Managers:    snapshot.Managers,
		Accounts:    snapshot.Accounts,
		Statuses:    snapshot.Statuses,
		ActionItems: snapshot.ActionItems,
		Scores:      snapshot.Scores,
		Billing:     snapshot.Billing,
	}, nil
}

// Filename é o nome sugerido para download, com o mês corrente
func (s *Service) Filename() string {
	return fmt.Sprintf("delivery-data-%s.json", period.CurrentMonth())
}

// WriteSnapshot grava o documento no diretório configurado e retorna o caminho
func (s *Service) WriteSnapshot(outputDir string) (string, error) {
	document, err := s.BuildDocument()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar o diretório de exportação: %w", err)
	}

	payload, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao serializar o documento de exportação: %w", err)
	}

	path := filepath.Join(outputDir, s.Filename())
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar o arquivo de exportação: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"accounts": len(document.Accounts),
		"statuses": len(document.Statuses),
	}).Info("Snapshot de dados exportado")

	return path, nil
}
