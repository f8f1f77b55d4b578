package mq

import (
	"context"
	"testing"
	"time"

	"voyara/models"
)

// Emit runs in fire-and-forget goroutines; it must respect the context it is
// handed rather than publishing on a context of its own.
func TestEmitHonorsCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Emit(ctx, "tour-edited", models.Index{EntityType: "tour", Method: "PUT"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit did not return for a cancelled context")
	}
}
