// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type registration struct {
	id       uint64
	listener Listener
}

// Dispatcher — диспетчер событий. Доставка синхронная, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]registration
	nextID    uint64
}

// Subscription is the owned handle returned by Subscribe. Owners must call
// Unsubscribe on teardown.
type Subscription struct {
	dispatcher *Dispatcher
	eventType  EventType
	id         uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]registration),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) *Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], registration{id: d.nextID, listener: listener})
	return &Subscription{dispatcher: d, eventType: eventType, id: d.nextID}
}

// SubscribeFunc is Subscribe for a plain function.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) *Subscription {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe — отписка. Повторный вызов ничего не делает.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.dispatcher == nil {
		return
	}
	d := s.dispatcher
	regs := d.listeners[s.eventType]
	for i, r := range regs {
		if r.id == s.id {
			// копия, чтобы не испортить срез, который сейчас обходит Dispatch
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			next = append(next, regs[i+1:]...)
			d.listeners[s.eventType] = next
			break
		}
	}
	s.dispatcher = nil
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, r := range d.listeners[event.Type] {
		r.listener.OnEvent(event)
	}
}

// ListenerCount returns the number of listeners registered for eventType.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Subscriptions groups handles so an owner can drop them all at once.
type Subscriptions []*Subscription

func (s *Subscriptions) Add(sub *Subscription) {
	*s = append(*s, sub)
}

func (s *Subscriptions) UnsubscribeAll() {
	for _, sub := range *s {
		sub.Unsubscribe()
	}
	*s = nil
}
