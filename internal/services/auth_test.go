package services

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Sunrise42", false},
		{"too short", "Ab1", true},
		{"exactly eight chars", "Abcdefg1", false},
		{"no uppercase", "sunrise42", true},
		{"no digit", "SunriseRun", true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.password)
			if (err != nil) != tc.wantErr {
				t.Errorf("validatePassword(%q) = %v, wantErr %v", tc.password, err, tc.wantErr)
			}
		})
	}
}

func TestEmailRegex(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com", "x_1@sub.domain.org"}
	invalid := []string{"", "plain", "@nouser.com", "user@", "user@host", "user@host."}

	for _, email := range valid {
		if !emailRegex.MatchString(email) {
			t.Errorf("%q should be accepted", email)
		}
	}
	for _, email := range invalid {
		if emailRegex.MatchString(email) {
			t.Errorf("%q should be rejected", email)
		}
	}
}
