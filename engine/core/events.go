package core

import "sync"

type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data: *MouseEvent
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data: *MouseEvent
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data: *MouseEvent
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel. Data: *MouseEvent
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Framebuffer resized. Data: *SystemEvent
	EVENT_CODE_RESIZED EventCode = 0x08
	// Configuration file reloaded. Data: the new configuration value.
	EVENT_CODE_CONFIG_RELOADED EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type EventContext struct {
	Type EventCode
	Data interface{}
}

// FnOnEvent should return true if the event was handled. Handled events are
// not passed on to the remaining listeners.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	id       uint64
	callback FnOnEvent
}

type eventSystemState struct {
	mu         sync.RWMutex
	nextID     uint64
	registered [MAX_EVENT_CODE + 1][]*registeredEvent
}

var eventState *eventSystemState

// EventSystemInitialize sets up the event system. Calling it twice without a
// shutdown in between returns false.
func EventSystemInitialize() bool {
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{}
	return true
}

func EventSystemShutdown() error {
	eventState = nil
	return nil
}

// EventRegister adds a listener for code and returns a handle for EventUnregister.
// Returns 0 when the system is not initialized.
func EventRegister(code EventCode, onEvent FnOnEvent) uint64 {
	if eventState == nil || code > MAX_EVENT_CODE || onEvent == nil {
		return 0
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	eventState.nextID++
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		id:       eventState.nextID,
		callback: onEvent,
	})
	return eventState.nextID
}

func EventUnregister(code EventCode, id uint64) bool {
	if eventState == nil || code > MAX_EVENT_CODE {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	events := eventState.registered[code]
	for i, e := range events {
		if e.id == id {
			eventState.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// EventFire dispatches context to every listener of context.Type in
// registration order until one of them reports the event as handled.
func EventFire(context EventContext) bool {
	if eventState == nil || context.Type > MAX_EVENT_CODE {
		return false
	}
	eventState.mu.RLock()
	events := eventState.registered[context.Type]
	eventState.mu.RUnlock()

	for _, e := range events {
		if e.callback(context) {
			return true
		}
	}
	return false
}
