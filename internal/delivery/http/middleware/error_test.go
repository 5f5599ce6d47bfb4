package middleware

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial failed")
	err := NewAppError(fiber.StatusBadGateway, "upstream unavailable", cause)

	if err.Error() != "upstream unavailable: dial failed" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to unwrap")
	}

	bare := NewAppError(fiber.StatusInternalServerError, "boom", nil)
	if bare.Error() != "boom" {
		t.Fatalf("unexpected message %q", bare.Error())
	}
}

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "app error",
			err:        NewAppError(fiber.StatusInternalServerError, "unsupported job site: myspace", errors.New("unsupported job site")),
			wantStatus: fiber.StatusInternalServerError,
			wantMsg:    "unsupported job site: myspace",
		},
		{
			name:       "app error without message",
			err:        NewAppError(fiber.StatusInternalServerError, "", nil),
			wantStatus: fiber.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
		{
			name:       "app error without status",
			err:        NewAppError(0, "bad", nil),
			wantStatus: fiber.StatusInternalServerError,
			wantMsg:    "bad",
		},
		{
			name:       "fiber error",
			err:        fiber.NewError(fiber.StatusNotFound, "no such route"),
			wantStatus: fiber.StatusNotFound,
			wantMsg:    "no such route",
		},
		{
			name:       "plain error",
			err:        errors.New("something broke"),
			wantStatus: fiber.StatusInternalServerError,
			wantMsg:    "something broke",
		},
	}

	for _, tc := range cases {
		status, msg := normalizeError(tc.err)
		if status != tc.wantStatus || msg != tc.wantMsg {
			t.Errorf("%s: got (%d, %q), want (%d, %q)", tc.name, status, msg, tc.wantStatus, tc.wantMsg)
		}
	}
}
