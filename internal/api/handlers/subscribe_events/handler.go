package subscribe_events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/events"
)

const keepAliveInterval = 25 * time.Second

// EventSource интерфейс шины уведомлений
type EventSource interface {
	Subscribe() (<-chan events.Event, func())
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	bus    EventSource
	logger Logger
}

func NewHandler(bus EventSource, logger Logger) *Handler {
	return &Handler{
		bus:    bus,
		logger: logger,
	}
}

// Handle GET /api/v1/events
// Отдает поток Server-Sent Events. События не несут данных - это
// сигналы инвалидации, по которым клиент перезапрашивает состояние
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /events - Streaming is not supported by the response writer")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch, unsubscribe := h.bus.Subscribe()
	defer unsubscribe()

	h.logger.Info("GET /events - Subscriber connected")

	// Сразу подтверждаем подключение
	fmt.Fprintf(w, "data: %s\n\n", mustMarshal(events.Event{Kind: "connected"}))
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /events - Subscriber disconnected")
			return

		case event, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", mustMarshal(event))
			flusher.Flush()

		case <-keepAlive.C:
			// Комментарий SSE держит соединение живым через прокси
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}

func mustMarshal(event events.Event) []byte {
	data, err := json.Marshal(event)
	if err != nil {
		return []byte(`{}`)
	}
	return data
}
