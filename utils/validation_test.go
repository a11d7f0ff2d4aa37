package utils_test

import (
	"strings"
	"testing"

	"hbday/utils"
)

func TestValidateCommentInput(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		text    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid comment should pass validation",
			author:  "guest",
			text:    "happy birthday!",
			wantErr: false,
		},
		{
			name:    "Empty author should fail validation",
			author:  "",
			text:    "hello",
			wantErr: true,
			errMsg:  "author must be between 1 and 64 characters",
		},
		{
			name:    "Empty text should fail validation",
			author:  "guest",
			text:    "",
			wantErr: true,
			errMsg:  "text must be between 1 and 1000 characters",
		},
		{
			name:    "Author with HTML tags should fail validation",
			author:  "<script>alert('hi')</script>",
			text:    "hello",
			wantErr: true,
			errMsg:  "author contains invalid characters",
		},
		{
			name:    "Very long text should fail validation",
			author:  "guest",
			text:    strings.Repeat("a", 1001),
			wantErr: true,
			errMsg:  "text must be between 1 and 1000 characters",
		},
		{
			name:    "Very long author should fail validation",
			author:  strings.Repeat("a", 65),
			text:    "hello",
			wantErr: true,
			errMsg:  "author must be between 1 and 64 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateCommentInput(tt.author, tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCommentInput() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("ValidateCommentInput() error message = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestValidatePhotoName(t *testing.T) {
	tests := []struct {
		name      string
		photoName string
		wantErr   bool
	}{
		{
			name:      "Plain file name should pass validation",
			photoName: "cake.jpg",
			wantErr:   false,
		},
		{
			name:      "Empty name should fail validation",
			photoName: "",
			wantErr:   true,
		},
		{
			name:      "Name with path traversal should fail validation",
			photoName: "../secrets.env",
			wantErr:   true,
		},
		{
			name:      "Name with forward slash should fail validation",
			photoName: "nested/cake.jpg",
			wantErr:   true,
		},
		{
			name:      "Name with backslash should fail validation",
			photoName: "nested\\cake.jpg",
			wantErr:   true,
		},
		{
			name:      "Very long name should fail validation",
			photoName: strings.Repeat("a", 256),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidatePhotoName(tt.photoName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhotoName(%q) error = %v, wantErr %v", tt.photoName, err, tt.wantErr)
			}
		})
	}
}

func TestCheckPasswordHash(t *testing.T) {
	password := "guestbook-pass"
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to generate password hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{
			name:     "Valid password should match hash",
			password: password,
			want:     true,
		},
		{
			name:     "Invalid password should not match hash",
			password: "wrong-pass",
			want:     false,
		},
		{
			name:     "Empty password should not match hash",
			password: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.CheckPasswordHash(tt.password, hash); got != tt.want {
				t.Errorf("CheckPasswordHash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSecureCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "Equal strings should match",
			a:    "admin",
			b:    "admin",
			want: true,
		},
		{
			name: "Different strings should not match",
			a:    "admin",
			b:    "admim",
			want: false,
		},
		{
			name: "Different lengths should not match",
			a:    "admin",
			b:    "admin1",
			want: false,
		},
		{
			name: "Empty strings should match",
			a:    "",
			b:    "",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.SecureCompare(tt.a, tt.b); got != tt.want {
				t.Errorf("SecureCompare(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
