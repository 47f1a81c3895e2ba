package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckBarrierAnnulus(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		hit  bool
	}{
		{"well inside", 1000, false},
		{"inner edge", 1190, false},
		{"just past inner", 1195, true},
		{"on the circle", 1200, true},
		{"outer edge", 1220, true},
		{"beyond the ring", 1300, false},
		{"at origin", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := CheckBarrier(Vec{X: tt.dist, Y: 0}, 800, 600)
			assert.Equal(t, tt.hit, col.Hit)
			if tt.hit {
				assert.True(t, col.HasPoint)
			}
		})
	}
}

func TestCheckBarrierContactPoint(t *testing.T) {
	// Candidate at 45 degrees, inside the annulus.
	d := 1205.0
	candidate := Vec{X: d / math.Sqrt2, Y: d / math.Sqrt2}
	col := CheckBarrier(candidate, 800, 600)

	assert.True(t, col.Hit)
	assert.True(t, col.HasPoint)

	// Contact point sits on the 1200 circle around the surface center.
	center := Vec{X: 400, Y: 300}
	assert.InDelta(t, BarrierRadius, col.Point.Sub(center).Len(), 1e-9)
	assert.InDelta(t, 400+1200/math.Sqrt2, col.Point.X, 1e-9)
	assert.InDelta(t, 300+1200/math.Sqrt2, col.Point.Y, 1e-9)
}

// A missing render surface reports a hit with no contact point. Movement is
// blocked but no repulsion vector exists; this mirrors the long-standing
// upstream behavior.
func TestCheckBarrierMissingSurface(t *testing.T) {
	col := CheckBarrier(Vec{X: 10, Y: 10}, 0, 0)
	assert.True(t, col.Hit)
	assert.False(t, col.HasPoint)

	col = CheckBarrier(Vec{X: 10, Y: 10}, 800, 0)
	assert.True(t, col.Hit)
	assert.False(t, col.HasPoint)
}

func TestRepulseEffects(t *testing.T) {
	aud := &countingAudio{}
	s := New(Ports{Audio: aud})
	s.surfaceW, s.surfaceH = 800, 600
	s.Camera = Vec{X: 1189, Y: 0}
	s.Mode = ModeDecelerating
	vel := s.velMap.Get(s.ship)
	vel.X = 1.2

	// Propose a step straight into the annulus.
	committed := s.tryMove(Vec{X: 10, Y: 0}, dragWorldDivisor)

	assert.False(t, committed)
	assert.Equal(t, Vec{X: 1189, Y: 0}, s.Camera, "candidate must be fully discarded")
	assert.Equal(t, Velocity{}, s.ShipVelocity())
	assert.Equal(t, ModeIdle, s.Mode)

	// World position nudged immediately by dir*15/12 (dir = +X here).
	assert.InDelta(t, DefaultX+15.0/12.0, s.ShipPos().X, 1e-9)
	assert.InDelta(t, DefaultY, s.ShipPos().Y, 1e-9)

	assert.True(t, s.collideFlash.On())
	assert.NotEmpty(t, s.Notices.Current())
	assert.Equal(t, 1, aud.calls)

	// Camera recoil animates toward offset - dir*15.
	assert.True(t, s.cameraTween.Active())
	var last Vec
	for s.cameraTween.Active() {
		if v, ok := s.cameraTween.Step(); ok {
			last = v
		}
	}
	assert.InDelta(t, 1189-15, last.X, 1e-9)
	assert.InDelta(t, 0, last.Y, 1e-9)
}

func TestRepulseWithoutPointIsMovementVetoOnly(t *testing.T) {
	aud := &countingAudio{}
	s := New(Ports{Audio: aud})
	s.surfaceW, s.surfaceH = 0, 0
	s.Mode = ModeDecelerating

	committed := s.tryMove(Vec{X: 5, Y: 0}, momentumWorldDivisor)

	assert.False(t, committed)
	assert.Equal(t, ModeIdle, s.Mode, "collision still stops the mode")
	assert.Equal(t, DefaultX, s.ShipPos().X, "no nudge without a contact point")
	assert.False(t, s.collideFlash.On())
	assert.Zero(t, aud.calls)
}

func TestResetClearsCollisionFeedback(t *testing.T) {
	s := New(Ports{})
	s.surfaceW, s.surfaceH = 800, 600
	s.Camera = Vec{X: 1189, Y: 0}

	s.tryMove(Vec{X: 10, Y: 0}, dragWorldDivisor)
	assert.True(t, s.Colliding())
	assert.NotEmpty(t, s.Notices.Current())

	s.Reset()
	assert.False(t, s.Colliding())
	assert.Empty(t, s.Notices.Current())
}

type countingAudio struct {
	calls int
}

func (c *countingAudio) PlayCollisionSound() { c.calls++ }
