package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_Result(t *testing.T) {
	tk := Start(context.Background(), func(ctx context.Context) int { return 42 })
	assert.Equal(t, 42, tk.Result())
	assert.False(t, tk.Running())
}

func TestTask_Cancel(t *testing.T) {
	started := make(chan struct{})
	tk := Start(context.Background(), func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	<-started
	assert.True(t, tk.Running())
	tk.Cancel()
	tk.Cancel()

	select {
	case <-tk.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("task did not stop after Cancel")
	}
	assert.ErrorIs(t, tk.Result(), context.Canceled)
}

func TestTask_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	tk := Start(parent, func(ctx context.Context) bool {
		<-ctx.Done()
		return true
	})
	cancel()
	assert.True(t, tk.Result())
}
