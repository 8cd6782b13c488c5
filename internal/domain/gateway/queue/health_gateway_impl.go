package queue

import (
	"context"
	"strconv"
	"time"

	"todo-api/internal/domain/model"
)

const healthTimeout = 2 * time.Second

type QueueHealthGateway struct {
	pinger QueuePinger
	queues []string
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

// NewQueueHealthGateway reports the queues as UP when every one of them can be resolved.
// A nil pinger means publishing is disabled.
func NewQueueHealthGateway(pinger QueuePinger, queues ...string) *QueueHealthGateway {
	return &QueueHealthGateway{pinger: pinger, queues: queues}
}

func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	if gateway.pinger == nil {
		return model.DisabledComponent()
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	overallStatus := model.StatusUp
	details := make(map[string]string)
	queuesDown := 0

	for _, queueName := range gateway.queues {
		if err := gateway.pinger.Ping(ctx, queueName); err != nil {
			overallStatus = model.StatusDown
			queuesDown++
			details[queueName+"_status"] = string(model.StatusDown)
			details[queueName+"_error"] = err.Error()
			continue
		}
		details[queueName+"_status"] = string(model.StatusUp)
	}

	details["queues_total"] = strconv.Itoa(len(gateway.queues))
	details["queues_down"] = strconv.Itoa(queuesDown)

	return model.ComponentHealthStatus{
		Status:  overallStatus,
		Details: details,
	}
}
