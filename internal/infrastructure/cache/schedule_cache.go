package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookline-schedule/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const appointmentsKeyPrefix = "schedule:appointments:"

// ScheduleCache holds the last successfully fetched appointment list so views
// can keep rendering when the upstream API is unreachable. It is a fallback,
// not a store of record; a nil client degrades every operation to a miss.
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScheduleCache(client *redis.Client, ttl time.Duration) *ScheduleCache {
	return &ScheduleCache{
		client: client,
		ttl:    ttl,
	}
}

// StoreAppointments replaces the cached list for one provider and date range.
func (c *ScheduleCache) StoreAppointments(ctx context.Context, providerID string, query entity.AppointmentQuery, appointments []entity.Appointment) error {
	if c == nil || c.client == nil {
		return nil
	}

	payload, err := json.Marshal(appointments)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, appointmentsKey(providerID, query), payload, c.ttl).Err()
}

// LoadAppointments returns the cached list, or (nil, nil) on a miss.
func (c *ScheduleCache) LoadAppointments(ctx context.Context, providerID string, query entity.AppointmentQuery) ([]entity.Appointment, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	payload, err := c.client.Get(ctx, appointmentsKey(providerID, query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var appointments []entity.Appointment
	if err := json.Unmarshal(payload, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func appointmentsKey(providerID string, query entity.AppointmentQuery) string {
	return fmt.Sprintf("%s%s:%s:%s", appointmentsKeyPrefix, providerID, query.StartDate, query.EndDate)
}
