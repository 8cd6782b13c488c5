package todo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/internal/infra/metrics"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// publishTimeout bounds the event send. It runs detached from the request so a client
// that disconnects after the commit does not cancel it.
const publishTimeout = 3 * time.Second

type toDoItemUseCase struct {
	unitOfWork  db.UnitOfWork
	queueSender queue.Sender
	queueName   string
	now         func() time.Time
}

func NewToDoItemUseCase(unitOfWork db.UnitOfWork, queueSender queue.Sender, queueName string) UseCase {
	if queueSender == nil {
		queueSender = queue.NoopSender{}
	}

	return &toDoItemUseCase{
		unitOfWork:  unitOfWork,
		queueSender: queueSender,
		queueName:   queueName,
		now:         time.Now,
	}
}

func (useCase *toDoItemUseCase) Create(ctx context.Context, dto model.CreateToDoItemDTO) (*entity.ToDoItem, error) {
	if dto.Task == nil || dto.UserID == nil {
		return nil, model.ErrMissingFields
	}

	var created *entity.ToDoItem
	err := useCase.unitOfWork.Execute(ctx, func(gateway db.ToDoItemGateway) error {
		item, err := gateway.Create(ctx, entity.ToDoItem{Task: *dto.Task, UserID: *dto.UserID})
		if err != nil {
			return err
		}
		created = item
		return nil
	})

	if err != nil {
		var violation *db.IntegrityViolationError
		if errors.As(err, &violation) {
			metrics.ToDoItemConflicts.Inc()
			return nil, &model.ConflictError{Detail: violation.Error(), Err: err}
		}
		return nil, err
	}

	metrics.ToDoItemsCreated.Inc()
	log.Info(msg.GetMessage("todo.created", created.ID, created.UserID),
		zap.Int64("id", created.ID),
		zap.Int64("user_id", created.UserID),
	)

	useCase.publishCreated(ctx, *created)

	return created, nil
}

func (useCase *toDoItemUseCase) FindAll(ctx context.Context) ([]entity.ToDoItem, error) {
	var items []entity.ToDoItem
	err := useCase.unitOfWork.Execute(ctx, func(gateway db.ToDoItemGateway) error {
		found, err := gateway.FindAll(ctx)
		items = found
		return err
	})
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []entity.ToDoItem{}
	}
	return items, nil
}

// publishCreated runs after the commit, so a failure here never undoes the write.
func (useCase *toDoItemUseCase) publishCreated(ctx context.Context, item entity.ToDoItem) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := model.ToDoItemCreatedEvent{
		EventID:    uuid.NewString(),
		Type:       model.ToDoItemCreatedEventType,
		OccurredAt: useCase.now().UTC(),
		Item:       item,
	}

	attributes := map[string]string{"type": event.Type}
	if err := useCase.queueSender.SendMessage(ctx, useCase.queueName, event, attributes); err != nil {
		log.Error(msg.GetMessage("todo.error.publish-failed", item.ID),
			zap.String("queue", useCase.queueName),
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}
