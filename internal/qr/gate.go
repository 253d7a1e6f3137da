package qr

import (
	"sync"
	"time"
)

// DefaultCooldown matches how long a code tends to stay in frame.
const DefaultCooldown = 2 * time.Second

// Gate debounces scans. Once a scan is accepted every further scan is
// suppressed until the cool-down has elapsed. It also mirrors the camera
// commands the client can toggle.
type Gate struct {
	cooldown time.Duration
	now      func() time.Time

	mu           sync.Mutex
	enabled      bool
	flashlight   bool
	lastAccepted time.Time
	accepted     int64
	suppressed   int64
}

type GateStatus struct {
	Enabled         bool      `json:"enabled"`
	Flashlight      bool      `json:"flashlight"`
	CoolingDown     bool      `json:"coolingDown"`
	Cooldown        string    `json:"cooldown"`
	LastAcceptedAt  time.Time `json:"lastAcceptedAt,omitempty"`
	AcceptedCount   int64     `json:"acceptedCount"`
	SuppressedCount int64     `json:"suppressedCount"`
}

func NewGate(cooldown time.Duration) *Gate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Gate{
		cooldown: cooldown,
		now:      time.Now,
		enabled:  true,
	}
}

// Allow reports whether a scan may be processed now and, if so, starts a new
// cool-down window.
func (g *Gate) Allow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if !g.enabled || g.coolingDown(now) {
		g.suppressed++
		return false
	}

	g.lastAccepted = now
	g.accepted++
	return true
}

func (g *Gate) Enable() {
	g.mu.Lock()
	g.enabled = true
	g.mu.Unlock()
}

func (g *Gate) Disable() {
	g.mu.Lock()
	g.enabled = false
	g.mu.Unlock()
}

func (g *Gate) SetFlashlight(on bool) {
	g.mu.Lock()
	g.flashlight = on
	g.mu.Unlock()
}

func (g *Gate) Status() GateStatus {
	g.mu.Lock()
	defer g.mu.Unlock()

	return GateStatus{
		Enabled:         g.enabled,
		Flashlight:      g.flashlight,
		CoolingDown:     g.coolingDown(g.now()),
		Cooldown:        g.cooldown.String(),
		LastAcceptedAt:  g.lastAccepted,
		AcceptedCount:   g.accepted,
		SuppressedCount: g.suppressed,
	}
}

func (g *Gate) coolingDown(now time.Time) bool {
	return !g.lastAccepted.IsZero() && now.Sub(g.lastAccepted) < g.cooldown
}
