// redact маскирует чувствительные значения перед записью в логи.
// E-mail сохраняет домен и первые символы локальной части — этого достаточно
// для отладки, но недостаточно для восстановления адреса.
package redact

import "strings"

// Email маскирует e-mail для логирования.
// Строка без ровно одного '@' считается невалидной и маскируется целиком.
func Email(s string) string {
	if strings.Count(s, "@") != 1 {
		return "***"
	}

	i := strings.IndexByte(s, '@')
	local, domain := s[:i], s[i+1:]

	lr := []rune(local)
	if len(lr) > 2 {
		local = string(lr[:2]) + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

// Token возвращает литерал-заглушку для токена в логах.
func Token() string { return "[REDACTED_TOKEN]" }

// Password возвращает литерал-заглушку для пароля в логах.
func Password() string { return "[REDACTED_PASSWORD]" }
