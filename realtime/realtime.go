package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Init connects the event bus. Without REDIS_ADDR the bus stays disabled
// and publishes become no-ops; realtime updates are a side channel, not a
// requirement for booking.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, realtime events disabled")
		return
	}
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := Client.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, realtime events disabled: %v", err)
		Client = nil
		return
	}
	fmt.Println("✅ Connected to Redis")
}

// PublishToEmployee emits an event on the employee's private channel only;
// other connected sessions must not see it.
func PublishToEmployee(employeeID uint, event string, payload interface{}) {
	if Client == nil {
		return
	}
	msg, err := json.Marshal(eventEnvelope{Event: event, Data: payload})
	if err != nil {
		log.Printf("realtime: failed to encode %s event: %v", event, err)
		return
	}
	channel := fmt.Sprintf("emp:%d", employeeID)
	if err := Client.Publish(Ctx, channel, msg).Err(); err != nil {
		log.Printf("realtime: failed to publish %s to %s: %v", event, channel, err)
	}
}

type eventEnvelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
