package domain_test

import (
	"testing"
	"time"

	"github.com/mzukov/web-api/modules/users/domain"
)

func TestNewUser(t *testing.T) {
	login, err := domain.NewLogin("johndoe42")
	if err != nil {
		t.Fatalf("failed to create login: %v", err)
	}

	user := domain.NewUser(login)

	if user.ID().IsZero() {
		t.Error("expected user to have an ID")
	}
	if user.Login().String() != "johndoe42" {
		t.Errorf("expected login 'johndoe42', got '%s'", user.Login().String())
	}
	if user.FirstName() != "" || user.LastName() != "" {
		t.Errorf("expected empty names, got '%s' '%s'", user.FirstName(), user.LastName())
	}
	if user.GamesPlayed() != 0 {
		t.Errorf("expected 0 games played, got %d", user.GamesPlayed())
	}
	if !user.CurrentActivity().IsZero() {
		t.Errorf("expected no current activity, got '%s'", user.CurrentActivity().String())
	}
}

func TestNewUserWithID(t *testing.T) {
	id := domain.NewUserID()

	user := domain.NewUserWithID(id, "John", "Doe")

	if user.ID().String() != id.String() {
		t.Errorf("expected ID %s, got %s", id, user.ID())
	}
	if !user.Login().IsZero() {
		t.Errorf("expected empty login, got '%s'", user.Login().String())
	}
	if user.FirstName() != "John" || user.LastName() != "Doe" {
		t.Errorf("expected names 'John' 'Doe', got '%s' '%s'", user.FirstName(), user.LastName())
	}
}

func TestUser_Rename(t *testing.T) {
	login, _ := domain.NewLogin("johndoe42")
	user := domain.NewUser(login)
	before := user.UpdatedAt()

	user.Rename("Jane", "Smith")

	if user.FirstName() != "Jane" || user.LastName() != "Smith" {
		t.Errorf("expected names 'Jane' 'Smith', got '%s' '%s'", user.FirstName(), user.LastName())
	}
	if user.Login().String() != "johndoe42" {
		t.Errorf("expected login unchanged, got '%s'", user.Login().String())
	}
	if user.UpdatedAt().Before(before) {
		t.Error("expected updatedAt to advance")
	}
}

func TestUser_RecordGamePlayed(t *testing.T) {
	login, _ := domain.NewLogin("johndoe42")
	user := domain.NewUser(login)

	user.RecordGamePlayed()
	user.RecordGamePlayed()

	if user.GamesPlayed() != 2 {
		t.Errorf("expected 2 games played, got %d", user.GamesPlayed())
	}
}

func TestUser_Activity(t *testing.T) {
	login, _ := domain.NewLogin("johndoe42")
	user := domain.NewUser(login)

	user.StartActivity(domain.NewActivityID("chess-42"))
	if user.CurrentActivity().String() != "chess-42" {
		t.Errorf("expected activity 'chess-42', got '%s'", user.CurrentActivity().String())
	}

	user.FinishActivity()
	if !user.CurrentActivity().IsZero() {
		t.Errorf("expected no activity, got '%s'", user.CurrentActivity().String())
	}
}

func TestReconstitute(t *testing.T) {
	id := domain.NewUserID()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)

	user := domain.Reconstitute(
		id,
		domain.ReconstituteLogin("johndoe42"),
		"John", "Doe",
		7,
		domain.NewActivityID("chess-42"),
		created, updated,
	)

	if user.ID().String() != id.String() {
		t.Errorf("expected ID %s, got %s", id, user.ID())
	}
	if user.GamesPlayed() != 7 {
		t.Errorf("expected 7 games played, got %d", user.GamesPlayed())
	}
	if !user.CreatedAt().Equal(created) || !user.UpdatedAt().Equal(updated) {
		t.Error("expected timestamps to round-trip")
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		login string
		valid bool
	}{
		{"johndoe", true},
		{"abc123", true},
		{"ABC", true},
		{"Жора", true},
		{"日本語", true},
		{"", false},
		{"john doe", false},
		{"john-doe", false},
		{"john_doe", false},
		{"john.doe", false},
		{"john!", false},
		{" johndoe", false},
	}

	for _, tt := range tests {
		if got := domain.ValidateLogin(tt.login); got != tt.valid {
			t.Errorf("ValidateLogin(%q) = %v, want %v", tt.login, got, tt.valid)
		}
	}
}

func TestParseUserID(t *testing.T) {
	id := domain.NewUserID()

	parsed, err := domain.ParseUserID(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.String() != id.String() {
		t.Errorf("expected %s, got %s", id, parsed)
	}

	if _, err := domain.ParseUserID("not-a-uuid"); err != domain.ErrInvalidUserID {
		t.Errorf("expected ErrInvalidUserID, got %v", err)
	}

	if _, err := domain.ParseUserID("00000000-0000-0000-0000-000000000000"); err != domain.ErrInvalidUserID {
		t.Errorf("expected ErrInvalidUserID for nil uuid, got %v", err)
	}
}
