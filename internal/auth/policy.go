package auth

import "strings"

// 가입 전 입력 검증. 해싱/DB 접근 전에 싼 검사로 명백히 잘못된 입력을 거른다.
// RFC 완전 준수가 목표가 아니므로 일부 특이한 유효 주소는 거부될 수 있다.

const (
	minEmailLength    = 3
	maxEmailLength    = 254
	minPasswordLength = 8
)

// ValidEmail은 local@domain.tld 형태의 간이 검사를 수행한다.
// 도메인에 최소 1개의 '.'이 있어야 하고 공백은 허용하지 않는다.
func ValidEmail(email string) bool {
	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return false
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" {
		return false
	}
	return strings.Contains(domain, ".")
}

// ValidPassword 정책: 8자 이상, ASCII 영문자 1개 이상, ASCII 숫자 1개 이상.
// 상한과 특수문자 요구는 없다.
func ValidPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var hasAlpha, hasDigit bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasAlpha = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
		if hasAlpha && hasDigit {
			return true
		}
	}
	return false
}
