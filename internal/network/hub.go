package network

import (
	"sync"

	"github.com/darianrosebrook/figma-make-doom/pkg/api"
)

// Broadcaster - реестр подписчиков на снапшоты (observer-паттерн в явном
// виде). Подписчики получают иммутабельные DTO; обратного канала в ядро
// через Broadcaster нет.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan api.ServerMessage]bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan api.ServerMessage]bool),
	}
}

// Subscribe создает канал для нового подписчика.
func (b *Broadcaster) Subscribe() chan api.ServerMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan api.ServerMessage, 32)
	b.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал.
func (b *Broadcaster) Unsubscribe(ch chan api.ServerMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Broadcast отправляет сообщение всем подписчикам.
// Медленный подписчик пропускает кадр, но не тормозит симуляцию.
func (b *Broadcaster) Broadcast(msg api.ServerMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Count - число активных подписчиков (для /health и отладки).
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
