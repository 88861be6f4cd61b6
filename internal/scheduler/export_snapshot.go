package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-manager-api/internal/config"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/exporting"
)

// ExportSnapshotConfig representa a configuração do agendador de backup de dados
type ExportSnapshotConfig struct {
	CronSchedule string
	OutputDir    string
	Enabled      bool
}

// ExportSnapshotService gerencia o agendamento e execução do backup periódico
// do conjunto de dados em arquivos JSON
type ExportSnapshotService struct {
	scheduler           *gocron.Scheduler
	config              ExportSnapshotConfig
	exportService       exporting.Exporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastExportPath      string
}

// NewExportSnapshotService cria uma nova instância do serviço de backup de dados
func NewExportSnapshotService(
	exportService exporting.Exporter,
	appConfig *config.Config,
) *ExportSnapshotService {
	// Criar a configuração com base na config global
	exportConfig := ExportSnapshotConfig{
		CronSchedule: appConfig.ExportSnapshot.CronSchedule,
		OutputDir:    appConfig.ExportSnapshot.OutputDir,
		Enabled:      appConfig.ExportSnapshot.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"output_dir":    exportConfig.OutputDir,
		"enabled":       exportConfig.Enabled,
	}).Info("Configuração do agendador de backup de dados carregada")

	return &ExportSnapshotService{
		scheduler:     scheduler,
		config:        exportConfig,
		exportService: exportService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *ExportSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Backup periódico de dados desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backup de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.exportSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup de dados: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backup de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// exportSnapshot grava o documento de exportação no diretório configurado
func (s *ExportSnapshotService) exportSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backup de dados já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando backup do conjunto de dados")

	path, err := s.exportService.WriteSnapshot(s.config.OutputDir)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar backup do conjunto de dados")
		return
	}

	s.syncMutex.Lock()
	s.lastExportPath = path
	s.syncMutex.Unlock()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"path":     path,
	}).Info("Backup do conjunto de dados concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente um backup do conjunto de dados
func (s *ExportSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backup de dados já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando backup manual do conjunto de dados")
	go s.exportSnapshot()
}

// GetStatus retorna o status atual do backup
func (s *ExportSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"output_dir":             s.config.OutputDir,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_export_path":       s.lastExportPath,
	}
}
