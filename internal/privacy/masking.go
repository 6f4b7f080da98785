package privacy

import (
	"strings"
)

// MaskEmail masks the local part of an email address, keeping the first
// character and the full domain: "isubrat@icloud.com" -> "i******@icloud.com".
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return maskString(email, 0)
	}

	local := email[:at]
	domain := email[at:]
	if len(local) == 1 {
		return "*" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + domain
}

// MaskSessionID keeps the last four characters of a session identifier so
// log lines from the same session remain correlatable.
func MaskSessionID(id string) string {
	return maskString(id, 4)
}

// MaskToken fully masks a CSRF or other secret token, exposing only its
// length class.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func maskString(s string, keepLast int) string {
	if s == "" {
		return ""
	}
	if len(s) <= keepLast {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-keepLast) + s[len(s)-keepLast:]
}

// MaskSensitiveFields masks well-known sensitive keys in a log field map.
func MaskSensitiveFields(fields map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		s, ok := v.(string)
		if !ok {
			masked[k] = v
			continue
		}
		switch k {
		case "email", "user":
			masked[k] = MaskEmail(s)
		case "session_id":
			masked[k] = MaskSessionID(s)
		case "csrf_token", "token", "password":
			masked[k] = MaskToken(s)
		default:
			masked[k] = v
		}
	}
	return masked
}
