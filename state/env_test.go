package state

import (
	"context"
	"testing"
	"time"
)

func TestEnvRoundTrip(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatalf("expected env in context")
	}
	env.Overwrite = true
	if !EnvFromContext(ctx).Overwrite {
		t.Errorf("context must hand out the same env")
	}
	if env.Uptime() < 0 || env.Uptime() > time.Minute {
		t.Errorf("implausible uptime %v", env.Uptime())
	}
}

func TestEnvMissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on missing env")
		}
	}()
	EnvFromContext(context.Background())
}
