package domain

import (
	"errors"
	"testing"
)

func TestSignUpInput_Validate(t *testing.T) {
	valid := SignUpInput{Username: "marko", Password: "secret", DisplayName: "Marko Marković"}.Normalize()
	if valid.Role != RoleWorker {
		t.Fatalf("expected default role worker, got %q", valid.Role)
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	multibyte := SignUpInput{Username: "marko", Password: "šššššš", DisplayName: "Marko"}.Normalize()
	if err := multibyte.Validate(); err != nil {
		t.Fatalf("six multibyte characters should pass: %v", err)
	}

	cases := []struct {
		name  string
		field string
		in    SignUpInput
	}{
		{"blank name", "name", SignUpInput{Username: "marko", Password: "secret", DisplayName: "   "}},
		{"blank username", "username", SignUpInput{Username: " ", Password: "secret", DisplayName: "Marko"}},
		{"short password", "password", SignUpInput{Username: "marko", Password: "12345", DisplayName: "Marko"}},
		{"three multibyte characters", "password", SignUpInput{Username: "marko", Password: "ššš", DisplayName: "Marko"}},
		{"unknown role", "role", SignUpInput{Username: "marko", Password: "secret", DisplayName: "Marko", Role: "guest"}},
	}
	for _, tc := range cases {
		err := tc.in.Normalize().Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != tc.field {
			t.Errorf("%s: expected ValidationError on %s, got %v", tc.name, tc.field, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected errors.Is ErrValidation", tc.name)
		}
	}
}

func TestCredentialEmail(t *testing.T) {
	if got := CredentialEmail(" marko ", "winner-security.local"); got != "marko@winner-security.local" {
		t.Fatalf("unexpected email: %s", got)
	}
	if CredentialEmail("Marko", "winner-security.local") != CredentialEmail("marko", "winner-security.local") {
		t.Fatal("usernames differing only in case must map to one credential")
	}
}
