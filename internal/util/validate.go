package util

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s.\-']+$`)
	gcashRefPattern = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)
)

// ValidateEmail checks an email address and returns (valid, message).
// The message is user-facing and includes a hint for the common ".con" typo.
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email address is required"
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if !emailPattern.MatchString(email) {
		return false, "Please enter a valid email address"
	}

	if strings.HasSuffix(email, ".con") {
		return false, "Did you mean .com?"
	}

	if strings.Contains(email, "..") {
		return false, "Invalid email format"
	}

	return true, ""
}

// NormalizeEmail lowercases and trims an email address for use as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateFullName checks a customer's full name.
func ValidateFullName(name string) (bool, string) {
	if name == "" {
		return false, "Full name is required"
	}

	name = strings.TrimSpace(name)

	if len(name) < 2 {
		return false, "Name is too short"
	}
	if len(name) > 100 {
		return false, "Name is too long"
	}
	if !namePattern.MatchString(name) {
		return false, "Name contains invalid characters"
	}

	return true, ""
}

// ValidateGCashReference checks a GCash reference number. The field is
// optional, so an empty reference is valid.
func ValidateGCashReference(ref string) (bool, string) {
	if ref == "" {
		return true, ""
	}

	ref = strings.TrimSpace(ref)

	if !gcashRefPattern.MatchString(ref) {
		return false, "Reference number contains invalid characters"
	}
	if len(ref) < 4 {
		return false, "Reference number is too short"
	}
	if len(ref) > 50 {
		return false, "Reference number is too long"
	}

	return true, ""
}

// Extension allow-lists for the two upload surfaces.
var (
	ReviewerExtensions = []string{".pdf", ".docx"}
	ReceiptExtensions  = []string{".png", ".jpg", ".jpeg", ".pdf"}
)

// FileExtension returns the lowercase extension of a filename.
func FileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// ValidateFile checks a filename against an extension allow-list and a size
// limit in megabytes.
func ValidateFile(filename string, size int64, allowed []string, maxSizeMB int) (bool, string) {
	if filename == "" {
		return false, "No file uploaded"
	}

	ext := FileExtension(filename)
	ok := false
	for _, a := range allowed {
		if ext == a {
			ok = true
			break
		}
	}
	if !ok {
		return false, fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(allowed, ", "))
	}

	if size > int64(maxSizeMB)*1024*1024 {
		return false, fmt.Sprintf("File too large. Maximum size: %dMB", maxSizeMB)
	}

	return true, ""
}
