package models_test

import (
	"testing"

	"github.com/lexablackstar/HealthCheckApp/internal/models"
)

func TestRoleValid(t *testing.T) {
	for _, role := range models.Roles() {
		if !role.Valid() {
			t.Fatalf("role %q should be valid", role)
		}
	}
	for _, role := range []models.Role{"", "admin", "Manager", "Intern"} {
		if role.Valid() {
			t.Fatalf("role %q should be invalid", role)
		}
	}
}

func TestAnswerValid(t *testing.T) {
	for _, answer := range []models.Answer{models.AnswerGreen, models.AnswerYellow, models.AnswerRed} {
		if !answer.Valid() {
			t.Fatalf("answer %q should be valid", answer)
		}
	}
	for _, answer := range []models.Answer{"", "GREEN", "blue", "amber"} {
		if answer.Valid() {
			t.Fatalf("answer %q should be invalid", answer)
		}
	}
}
