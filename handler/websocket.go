package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// room fans one Redis subscription out to every socket watching a tour.
type room struct {
	conns  map[*websocket.Conn]bool
	pubsub *redis.PubSub
}

var (
	rooms = make(map[uint]*room)
	mu    sync.Mutex
)

type availabilityFrame struct {
	TourId         uint `json:"tourId"`
	JoinedCount    int  `json:"joinedCount"`
	SpotsRemaining int  `json:"spotsRemaining"`
}

func fetchAvailability(tourId uint) (*availabilityFrame, error) {
	var tour model.Tour
	if err := database.DB.First(&tour, tourId).Error; err != nil {
		return nil, err
	}
	joined := helper.JoinedCount(database.DB, tour.ID)
	return &availabilityFrame{
		TourId:         tour.ID,
		JoinedCount:    joined,
		SpotsRemaining: helper.SpotsRemaining(joined, tour.MaxCapacity),
	}, nil
}

// PublishAvailability pushes a fresh availability snapshot to every socket
// watching the tour, via Redis so all instances fan out.
func PublishAvailability(tourId uint) {
	if database.RedisClient == nil {
		return
	}
	frame, err := fetchAvailability(tourId)
	if err != nil {
		log.Printf("availability snapshot failed for tour %d: %v", tourId, err)
		return
	}
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}
	channel := fmt.Sprintf("tour:%d", tourId)
	if err := database.RedisClient.Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Printf("failed to publish availability for tour %d: %v", tourId, err)
	}
}

// joinRoom registers the socket, starting the room's single subscriber when
// it is the first watcher.
func joinRoom(tourId uint, c *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()

	r := rooms[tourId]
	if r == nil {
		r = &room{conns: make(map[*websocket.Conn]bool)}
		rooms[tourId] = r
		if database.RedisClient != nil {
			r.pubsub = database.RedisClient.Subscribe(
				context.Background(),
				fmt.Sprintf("tour:%d", tourId),
			)
			go fanOut(tourId, r.pubsub.Channel())
		}
	}
	r.conns[c] = true
}

// leaveRoom drops the socket and tears the room down with its last watcher.
func leaveRoom(tourId uint, c *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()

	r := rooms[tourId]
	if r == nil {
		return
	}
	delete(r.conns, c)
	if len(r.conns) == 0 {
		if r.pubsub != nil {
			r.pubsub.Close()
		}
		delete(rooms, tourId)
	}
}

// fanOut writes each published frame exactly once per socket. It exits when
// the room's subscription is closed.
func fanOut(tourId uint, ch <-chan *redis.Message) {
	for msg := range ch {
		payload := []byte(msg.Payload)

		mu.Lock()
		r := rooms[tourId]
		if r == nil {
			mu.Unlock()
			return
		}
		for conn := range r.conns {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(r.conns, conn)
			}
		}
		mu.Unlock()
	}
}

// TourAvailabilitySocket streams live joined/spots-remaining frames for one tour.
func TourAvailabilitySocket(c *websocket.Conn) {
	slug := c.Params("slug")

	var tour model.Tour
	if err := database.DB.Where("slug = ? AND is_active = ?", slug, true).First(&tour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.WriteJSON(map[string]string{"error": "tour not found"})
		}
		c.Close()
		return
	}

	joinRoom(tour.ID, c)
	defer func() {
		leaveRoom(tour.ID, c)
		c.Close()
	}()

	// First frame straight away.
	if frame, err := fetchAvailability(tour.ID); err == nil {
		c.WriteJSON(frame)
	}

	// Block until the client goes away; frames arrive via the room's fan-out.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
