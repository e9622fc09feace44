package validation

import "strings"

// Email normalises and checks a required address.
func Email(raw string) (string, error) {
	email, ok := optionalEmail(raw)
	if !ok {
		return "", Errors{"a valid email address is required"}
	}

	return email, nil
}

// optionalEmail lower-cases a valid address; invalid or empty input is reported as absent.
func optionalEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || len(email) > 254 {
		return "", false
	}
	if err := validate.Var(email, "email"); err != nil {
		return "", false
	}

	return email, true
}
