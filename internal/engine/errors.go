package engine

import (
	"errors"
	"fmt"
)

// ErrorCode motor hatalarını sınıflandırır.
type ErrorCode string

const (
	// CodeNotFound: Bilinmeyen sipariş/müşteri/katalog kaydı.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInvalidQuantity: Pozitif olmayan miktar (zayiat, sipariş satırı).
	CodeInvalidQuantity ErrorCode = "INVALID_QUANTITY"

	// CodeDataIntegrity: Katalogda artık bulunmayan bir kimliğe referans.
	CodeDataIntegrity ErrorCode = "DATA_INTEGRITY"
)

// Error: Motorun döndürdüğü tipli hata.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func IsNotFound(err error) bool        { return hasCode(err, CodeNotFound) }
func IsInvalidQuantity(err error) bool { return hasCode(err, CodeInvalidQuantity) }
func IsDataIntegrity(err error) bool   { return hasCode(err, CodeDataIntegrity) }
