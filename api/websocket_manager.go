package api

import (
	"sync"

	"github.com/gorilla/websocket"
)

// previewConn guards writes to one preview connection.
type previewConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// WSConnectionManager tracks open preview connections for broadcasting.
type WSConnectionManager struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]*previewConn
}

func NewWSConnectionManager() *WSConnectionManager {
	return &WSConnectionManager{
		connections: make(map[*websocket.Conn]*previewConn),
	}
}

func (m *WSConnectionManager) Add(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[conn] = &previewConn{conn: conn}
	metricPreviewSessions.Set(float64(len(m.connections)))
}

func (m *WSConnectionManager) Remove(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.connections, conn)
	metricPreviewSessions.Set(float64(len(m.connections)))
}

// Count returns the number of open connections.
func (m *WSConnectionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// Broadcast sends message to every connection. A failed write is skipped;
// the connection stays registered until its handler calls Remove, so every
// write to it keeps going through the same lock.
func (m *WSConnectionManager) Broadcast(message any) {
	m.mu.RLock()
	conns := make([]*previewConn, 0, len(m.connections))
	for _, pc := range m.connections {
		conns = append(conns, pc)
	}
	m.mu.RUnlock()

	for _, pc := range conns {
		pc.mu.Lock()
		_ = pc.conn.WriteJSON(message)
		pc.mu.Unlock()
	}
}

// WriteJSON writes message to one connection, serialized with broadcasts.
func (m *WSConnectionManager) WriteJSON(conn *websocket.Conn, message any) error {
	m.mu.RLock()
	pc, exists := m.connections[conn]
	m.mu.RUnlock()

	if !exists {
		return conn.WriteJSON(message)
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.conn.WriteJSON(message)
}
