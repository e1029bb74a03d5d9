package handler

import (
	"context"
	"fmt"

	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"

	"github.com/gofiber/contrib/websocket"
)

// NotificationSocket streams a user's notifications live. The client
// gets the current unread list on connect, then every new notification
// published on the user's redis channel. Each connection holds its own
// subscription and writes only to itself, so a user with several open
// sockets gets exactly one copy per socket.
func NotificationSocket(c *websocket.Conn) {
	userId, ok := c.Locals("socketUserId").(uint)
	if !ok || userId == 0 {
		c.Close()
		return
	}
	defer c.Close()

	// initial unread snapshot
	var unread []model.Notification
	database.DB.Where("user_id = ? AND is_read = ?", userId, false).
		Order("created_at desc").Find(&unread)
	if err := c.WriteJSON(unread); err != nil {
		return
	}

	pubsub := helper.RedisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("notifications:%d", userId),
	)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
