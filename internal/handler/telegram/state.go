package telegram

import (
	"sync"
	"time"
)

// stateTTL is how long an idle conversation is kept
const stateTTL = 30 * time.Minute

// UserState represents the current state of a user's conversation
type UserState struct {
	UserID      int64
	CurrentStep Step
	LastUpdated time.Time
}

// Step represents the input the bot is waiting for
type Step int

const (
	StepNone Step = iota
	StepInputWhois
	StepInputDNS
	StepInputRecords
	StepInputAvailability
	StepInputBulk
	StepInputExpired
	StepInputAge
	StepInputSSL
)

// StateManager manages user states
type StateManager struct {
	states map[int64]*UserState
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
	mu     sync.Mutex
}

// NewStateManager creates a new state manager with a background sweeper
func NewStateManager() *StateManager {
	sm := newStateManager(time.Now)
	go sm.cleanup()
	return sm
}

func newStateManager(now func() time.Time) *StateManager {
	return &StateManager{
		states: make(map[int64]*UserState),
		now:    now,
		stop:   make(chan struct{}),
	}
}

// SetStep sets the current step for a user
func (sm *StateManager) SetStep(userID int64, step Step) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	state, exists := sm.states[userID]
	if !exists {
		state = &UserState{UserID: userID}
		sm.states[userID] = state
	}
	state.CurrentStep = step
	state.LastUpdated = sm.now()
}

// GetCurrentStep gets the current step for a user
func (sm *StateManager) GetCurrentStep(userID int64) Step {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	state, exists := sm.states[userID]
	if !exists {
		return StepNone
	}
	state.LastUpdated = sm.now()
	return state.CurrentStep
}

// TakeStep returns the current step and resets it to StepNone
func (sm *StateManager) TakeStep(userID int64) Step {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	state, exists := sm.states[userID]
	if !exists {
		return StepNone
	}
	delete(sm.states, userID)
	return state.CurrentStep
}

// ClearState clears a user's state
func (sm *StateManager) ClearState(userID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.states, userID)
}

// Close stops the background sweeper
func (sm *StateManager) Close() {
	sm.once.Do(func() { close(sm.stop) })
}

// expire removes states idle for longer than stateTTL
func (sm *StateManager) expire() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	for userID, state := range sm.states {
		if now.Sub(state.LastUpdated) > stateTTL {
			delete(sm.states, userID)
		}
	}
}

// cleanup removes old states periodically
func (sm *StateManager) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sm.expire()
		case <-sm.stop:
			return
		}
	}
}
