package validation

import "testing"

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"0123456789",
		"+5551234567",
		"  0123456789  ",
		"(12) 345 67890",
		"123456789012345",
	}
	for _, phone := range valid {
		if !IsPhoneValid(phone) {
			t.Errorf("IsPhoneValid(%q) = false, want true", phone)
		}
	}

	invalid := []string{
		"",
		"   ",
		"123456789",        // too short
		"1234567890123456", // too long
		"01234x6789",       // bad character
		"abcdefghij",       // no digits
		"+1 (555) 123-4567", // over the length cap
	}
	for _, phone := range invalid {
		if IsPhoneValid(phone) {
			t.Errorf("IsPhoneValid(%q) = true, want false", phone)
		}
	}
}

func TestIsPhoneValidCountsDigits(t *testing.T) {
	// Length is within range but only 9 of the characters are digits.
	if IsPhoneValid("12 345 678 9") {
		t.Error("expected phone with 9 digits to be invalid")
	}
	// Separators are fine as long as 10 digits remain.
	if !IsPhoneValid("(12) 345 67890") {
		t.Error("expected phone with 10 digits to be valid")
	}
}

func TestIsValidTimeFormat(t *testing.T) {
	valid := []string{"00:00", "07:05", "23:59", "12:30"}
	for _, tm := range valid {
		if !IsValidTimeFormat(tm) {
			t.Errorf("IsValidTimeFormat(%q) = false, want true", tm)
		}
	}

	invalid := []string{"", "24:00", "12:60", "7:05pm", "12.30", "noon"}
	for _, tm := range invalid {
		if IsValidTimeFormat(tm) {
			t.Errorf("IsValidTimeFormat(%q) = true, want false", tm)
		}
	}
}
