package websocket

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub maintains active clients and broadcasts messages
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Clients by user ID
	userClients map[string]map[*Client]bool

	// Clients by room
	roomClients map[string]map[*Client]bool

	// Inbound messages from clients
	broadcast chan *Message

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Room operations
	joinRoom  chan *RoomOperation
	leaveRoom chan *RoomOperation

	mutex sync.RWMutex

	logger *zap.Logger

	metrics *HubMetrics
}

// HubMetrics holds hub metrics
type HubMetrics struct {
	TotalConnections  int64
	ActiveConnections int64
	TotalMessages     int64
	TotalBroadcasts   int64
	TotalRooms        int
	mutex             sync.RWMutex
}

// RoomOperation represents a room join/leave operation
type RoomOperation struct {
	Client *Client
	Room   string
}

// NewHub creates a new hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		userClients: make(map[string]map[*Client]bool),
		roomClients: make(map[string]map[*Client]bool),
		broadcast:   make(chan *Message, 256),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		joinRoom:    make(chan *RoomOperation),
		leaveRoom:   make(chan *RoomOperation),
		logger:      logger,
		metrics:     &HubMetrics{},
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case op := <-h.joinRoom:
			h.handleJoinRoom(op)

		case op := <-h.leaveRoom:
			h.handleLeaveRoom(op)

		case message := <-h.broadcast:
			h.handleBroadcast(message)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true

	if client.UserID != "" {
		if _, ok := h.userClients[client.UserID]; !ok {
			h.userClients[client.UserID] = make(map[*Client]bool)
		}
		h.userClients[client.UserID][client] = true
	}

	h.metrics.mutex.Lock()
	h.metrics.TotalConnections++
	h.metrics.ActiveConnections++
	h.metrics.mutex.Unlock()

	h.logger.Debug("Client registered",
		zap.String("client_id", client.ID),
		zap.String("user_id", client.UserID),
	)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		if client.UserID != "" {
			if clients, ok := h.userClients[client.UserID]; ok {
				delete(clients, client)
				if len(clients) == 0 {
					delete(h.userClients, client.UserID)
				}
			}
		}

		// Remove from all rooms
		for room, clients := range h.roomClients {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.roomClients, room)
			}
		}

		h.metrics.mutex.Lock()
		h.metrics.ActiveConnections--
		h.metrics.mutex.Unlock()

		h.logger.Debug("Client unregistered",
			zap.String("client_id", client.ID),
		)
	}
}

func (h *Hub) handleJoinRoom(op *RoomOperation) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.roomClients[op.Room]; !ok {
		h.roomClients[op.Room] = make(map[*Client]bool)
	}
	h.roomClients[op.Room][op.Client] = true
	op.Client.Rooms[op.Room] = true

	h.metrics.mutex.Lock()
	h.metrics.TotalRooms = len(h.roomClients)
	h.metrics.mutex.Unlock()

	h.logger.Debug("Client joined room",
		zap.String("client_id", op.Client.ID),
		zap.String("room", op.Room),
	)
}

func (h *Hub) handleLeaveRoom(op *RoomOperation) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if clients, ok := h.roomClients[op.Room]; ok {
		delete(clients, op.Client)
		if len(clients) == 0 {
			delete(h.roomClients, op.Room)
		}
	}
	delete(op.Client.Rooms, op.Room)

	h.metrics.mutex.Lock()
	h.metrics.TotalRooms = len(h.roomClients)
	h.metrics.mutex.Unlock()

	h.logger.Debug("Client left room",
		zap.String("client_id", op.Client.ID),
		zap.String("room", op.Room),
	)
}

func (h *Hub) handleBroadcast(message *Message) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	h.metrics.mutex.Lock()
	h.metrics.TotalBroadcasts++
	h.metrics.mutex.Unlock()

	var targets map[*Client]bool

	switch {
	case message.Room != "":
		targets = h.roomClients[message.Room]
	case message.UserID != "":
		targets = h.userClients[message.UserID]
	default:
		targets = h.clients
	}

	for client := range targets {
		select {
		case client.send <- message:
			h.metrics.mutex.Lock()
			h.metrics.TotalMessages++
			h.metrics.mutex.Unlock()
		default:
			// Client's send buffer is full, skip
			h.logger.Warn("Client send buffer full",
				zap.String("client_id", client.ID),
			)
		}
	}
}

// Broadcast sends a message to all clients
func (h *Hub) Broadcast(message *Message) {
	h.broadcast <- message
}

// BroadcastToRoom sends a message to all clients in a room
func (h *Hub) BroadcastToRoom(room string, message *Message) {
	message.Room = room
	h.broadcast <- message
}

// BroadcastToUser sends a message to all clients of a specific user
func (h *Hub) BroadcastToUser(userID string, message *Message) {
	message.UserID = userID
	h.broadcast <- message
}

// JoinRoom adds a client to a room
func (h *Hub) JoinRoom(client *Client, room string) {
	h.joinRoom <- &RoomOperation{Client: client, Room: room}
}

// LeaveRoom removes a client from a room
func (h *Hub) LeaveRoom(client *Client, room string) {
	h.leaveRoom <- &RoomOperation{Client: client, Room: room}
}

// GetClientCount returns the number of active clients
func (h *Hub) GetClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// GetRoomClientCount returns the number of clients in a room
func (h *Hub) GetRoomClientCount(room string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if clients, ok := h.roomClients[room]; ok {
		return len(clients)
	}
	return 0
}

// GetMetrics returns hub metrics
func (h *Hub) GetMetrics() HubMetrics {
	h.metrics.mutex.RLock()
	defer h.metrics.mutex.RUnlock()
	return HubMetrics{
		TotalConnections:  h.metrics.TotalConnections,
		ActiveConnections: h.metrics.ActiveConnections,
		TotalMessages:     h.metrics.TotalMessages,
		TotalBroadcasts:   h.metrics.TotalBroadcasts,
		TotalRooms:        h.metrics.TotalRooms,
	}
}

// IsUserOnline checks if a user has at least one open connection
func (h *Hub) IsUserOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	clients, ok := h.userClients[userID]
	return ok && len(clients) > 0
}

// GetOnlineUsers returns a list of online user IDs
func (h *Hub) GetOnlineUsers() []string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	users := make([]string, 0, len(h.userClients))
	for userID := range h.userClients {
		users = append(users, userID)
	}
	return users
}

// SendHeartbeat sends heartbeat to all clients
func (h *Hub) SendHeartbeat() {
	h.Broadcast(&Message{
		Type:      MessageTypePing,
		Timestamp: time.Now(),
	})
}
