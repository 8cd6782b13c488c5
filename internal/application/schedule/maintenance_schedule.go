package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/usecase/maintenance"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

const maintenanceTimeout = time.Minute

type MaintenanceScheduler struct {
	cron    *cron.Cron
	useCase maintenance.UseCase
}

func NewMaintenanceScheduler(useCase maintenance.UseCase) *MaintenanceScheduler {
	return &MaintenanceScheduler{cron: cron.New(), useCase: useCase}
}

// InitMaintenanceScheduleTasks schedules store maintenance. An empty
// app.db.maintenance.cron leaves it off.
func (scheduler *MaintenanceScheduler) InitMaintenanceScheduleTasks() error {
	spec := resource.GetString("app.db.maintenance.cron")
	if spec == "" {
		return nil
	}

	if _, err := scheduler.cron.AddFunc(spec, scheduler.RunMaintenance); err != nil {
		return err
	}

	scheduler.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (scheduler *MaintenanceScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}

func (scheduler *MaintenanceScheduler) RunMaintenance() {
	log.Info(msg.GetMessage("maintenance.cron.start"))

	ctx, cancel := context.WithTimeout(context.Background(), maintenanceTimeout)
	defer cancel()

	count, err := scheduler.useCase.Run(ctx)
	if err != nil {
		log.Error(msg.GetMessage("maintenance.error.failed"), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("maintenance.cron.end", count), zap.Int64("items", count))
}
