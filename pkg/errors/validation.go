package errors

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePackageName validates a package name for safety and correctness.
// It rejects names that could be used for path traversal or injection attacks
// when interpolated into an index URL.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
//
// Python-specific validation is done by [ValidatePythonPackageName].
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidatePath validates a root-relative exclusion path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative to the project root)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates an index base URL.
// It ensures the URL parses, has a host, and uses http or https.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme: %q", rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL has no host: %q", rawURL)
	}

	return nil
}

// pythonPackageNameRegex matches valid Python package names (PEP 508).
var pythonPackageNameRegex = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

// ValidatePythonPackageName validates a Python distribution name per PEP 508.
func ValidatePythonPackageName(name string) error {
	if err := ValidatePackageName(name); err != nil {
		return err
	}

	if !pythonPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid Python package name: %q", name)
	}

	return nil
}

// ValidateImportName validates the left-hand side of a remap rule.
// Import names are dotted Python identifiers: each segment is a letter or
// underscore followed by letters, digits or underscores.
func ValidateImportName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRemap, "import name cannot be empty")
	}
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return New(ErrCodeInvalidRemap, "invalid import name: %q", name)
		}
		for i, r := range seg {
			if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
				continue
			}
			return New(ErrCodeInvalidRemap, "invalid import name: %q", name)
		}
	}
	return nil
}
