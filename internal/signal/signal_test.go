package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_EmitInOrder(t *testing.T) {
	var s Signal[int]
	var got []string
	s.Subscribe(func(v int) { got = append(got, "a") })
	s.Subscribe(func(v int) { got = append(got, "b") })

	s.Emit(1)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, s.Len())
}

func TestSubscription_UnsubscribeIsIdempotent(t *testing.T) {
	var s Signal[string]
	calls := 0
	sub := s.Subscribe(func(string) { calls++ })
	other := s.Subscribe(func(string) {})

	sub.Unsubscribe()
	sub.Unsubscribe()
	s.Emit("x")

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, s.Len())

	other.Unsubscribe()
	assert.Equal(t, 0, s.Len())
}

func TestSignal_UnsubscribeDuringEmit(t *testing.T) {
	var s Signal[int]
	var second *Subscription
	secondCalls := 0
	s.Subscribe(func(int) { second.Unsubscribe() })
	second = s.Subscribe(func(int) { secondCalls++ })

	s.Emit(1)
	s.Emit(2)

	assert.Equal(t, 0, secondCalls)
}

func TestSignal_SubscribeDuringEmit(t *testing.T) {
	var s Signal[int]
	lateCalls := 0
	subscribed := false
	s.Subscribe(func(int) {
		if !subscribed {
			subscribed = true
			s.Subscribe(func(int) { lateCalls++ })
		}
	})

	s.Emit(1)
	assert.Equal(t, 0, lateCalls)
	s.Emit(2)
	assert.Equal(t, 1, lateCalls)
}

func TestGroup_Unsubscribe(t *testing.T) {
	var a Signal[int]
	var b Signal[bool]
	g := Group{
		a.Subscribe(func(int) {}),
		b.Subscribe(func(bool) {}),
	}

	g.Unsubscribe()
	g.Unsubscribe()

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestSubscription_NilSafe(t *testing.T) {
	var sub *Subscription
	assert.NotPanics(t, sub.Unsubscribe)
}
