package shared

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetAppError(t *testing.T) {
	appErr := NewNotFoundError("missing")

	got, ok := GetAppError(appErr)
	if !ok || got.StatusCode != 404 {
		t.Fatalf("GetAppError = %+v, %v", got, ok)
	}

	wrapped := fmt.Errorf("loading user: %w", appErr)
	got, ok = GetAppError(wrapped)
	if !ok || got.StatusCode != 404 {
		t.Fatalf("wrapped GetAppError = %+v, %v", got, ok)
	}

	if _, ok := GetAppError(errors.New("plain")); ok {
		t.Fatal("plain error reported as AppError")
	}
}
