package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/delivery-manager-api/internal/config"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/exporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewExportSnapshotService(t *testing.T) {
	appConfig := &config.Config{
		ExportSnapshot: config.ExportSnapshot{
			CronSchedule: "0 2 * * *",
			OutputDir:    "exports",
			Enabled:      true,
		},
	}

	service := NewExportSnapshotService(nil, appConfig)

	assert.NotNil(t, service)
	assert.Equal(t, "0 2 * * *", service.config.CronSchedule)
	assert.Equal(t, "exports", service.config.OutputDir)
	assert.True(t, service.config.Enabled)
	assert.False(t, service.syncRunning)
}

func TestExportSnapshotService_Start_Desabilitado(t *testing.T) {
	appConfig := &config.Config{
		ExportSnapshot: config.ExportSnapshot{
			Enabled: false,
		},
	}

	service := NewExportSnapshotService(nil, appConfig)

	// Com o backup desabilitado, Start retorna sem agendar nada
	err := service.Start(context.Background())
	assert.NoError(t, err)
}

func TestExportSnapshotService_exportSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExporter := mocks.NewMockExporter(ctrl)
	mockExporter.EXPECT().
		WriteSnapshot("exports").
		Return("exports/delivery-data-2025-09.json", nil)

	service := &ExportSnapshotService{
		config: ExportSnapshotConfig{
			CronSchedule: "0 2 * * *",
			OutputDir:    "exports",
			Enabled:      true,
		},
		exportService: mockExporter,
	}

	service.exportSnapshot()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "exports/delivery-data-2025-09.json", status["last_export_path"])
	assert.NotEqual(t, time.Time{}, status["last_sync_started_at"])
	assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
}

func TestExportSnapshotService_exportSnapshot_Erro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExporter := mocks.NewMockExporter(ctrl)
	mockExporter.EXPECT().
		WriteSnapshot("exports").
		Return("", errors.New("disk full"))

	service := &ExportSnapshotService{
		config: ExportSnapshotConfig{
			OutputDir: "exports",
			Enabled:   true,
		},
		exportService: mockExporter,
	}

	service.exportSnapshot()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_export_path"])
	// Uma execução com erro não registra conclusão
	assert.Equal(t, time.Time{}, status["last_sync_completed_at"])
}

func TestExportSnapshotService_exportSnapshot_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	mockExporter := mocks.NewMockExporter(ctrl)
	mockExporter.EXPECT().
		WriteSnapshot("exports").
		DoAndReturn(func(string) (string, error) {
			close(started)
			<-release
			return "exports/delivery-data-2025-09.json", nil
		}).
		Times(1)

	service := &ExportSnapshotService{
		config: ExportSnapshotConfig{
			OutputDir: "exports",
			Enabled:   true,
		},
		exportService: mockExporter,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.exportSnapshot()
	}()

	<-started

	// Segunda chamada enquanto a primeira está em andamento deve ser ignorada
	service.exportSnapshot()

	close(release)
	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
}

func TestExportSnapshotService_GetStatus(t *testing.T) {
	service := &ExportSnapshotService{
		config: ExportSnapshotConfig{
			CronSchedule: "30 3 * * *",
			OutputDir:    "backups",
			Enabled:      true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, "30 3 * * *", status["sync_cron"])
	assert.Equal(t, "backups", status["output_dir"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, false, status["sync_running"])
}
