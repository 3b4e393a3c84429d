// Package apperrors はアプリケーション内部のエラー種別と、
// HTTPステータス・レスポンスボディへの変換を提供します。
package apperrors

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Kind はエラーの分類です。分類は閉じた集合で、
// StatusCode が全種別を網羅的にHTTPステータスへ対応付けます。
type Kind int

const (
	// Validation はリクエストボディの検証失敗です (クライアント起因)。
	Validation Kind = iota
	// IdentifierDecode はパス上のIDを解釈できなかった場合です。
	IdentifierDecode
	// Storage はデータベース層の失敗です。
	Storage
	// NotFound は対象リソースが存在しない場合です。
	NotFound
	// Internal は上記に分類できない内部エラーです。
	Internal
)

// StatusCode は種別をHTTPステータスコードに対応付けます。
// 注意: IdentifierDecode は 400 ではなく 500 を返します。
// これは意図的に元の挙動を維持したものです。
func (k Kind) StatusCode() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case IdentifierDecode, Storage, Internal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Error は分類付きのアプリケーションエラーです。
// Message はクライアントに返す文言、Err はサーバー側ログ専用の詳細です。
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation は検証エラーを生成します。
// validator のフィールドエラーはメッセージに含め、それ以外の
// デコード失敗は固定の文言に丸めます。
func NewValidation(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldMessage(fe))
		}
		return &Error{
			Kind:    Validation,
			Message: "Input validation failed: " + strings.Join(messages, "; "),
			Err:     err,
		}
	}
	return &Error{Kind: Validation, Message: "Invalid request payload", Err: err}
}

// fieldMessage はフィールドエラーを人間が読める文言にします。
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "min":
		return fmt.Sprintf("%s cannot be empty", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// NewIdentifierDecode はID解釈エラーを生成します。
func NewIdentifierDecode(err error) *Error {
	return &Error{Kind: IdentifierDecode, Message: "Error processing identifier.", Err: err}
}

// NewStorage はデータベース層のエラーを生成します。
func NewStorage(err error) *Error {
	return &Error{Kind: Storage, Message: "An internal database error occurred.", Err: err}
}

// NewNotFound は対象が存在しない場合のエラーを生成します。
func NewNotFound() *Error {
	return &Error{Kind: NotFound, Message: "The requested item was not found."}
}

// NewInternal は分類できない内部エラーを生成します。
func NewInternal(err error) *Error {
	return &Error{Kind: Internal, Message: "An unexpected error occurred.", Err: err}
}

// JSON はエラーを {"error": "<message>"} 形式で書き出します。
// ドライバーエラー等の詳細はレスポンスに出さず、サーバー側ログにのみ残します。
func JSON(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = NewInternal(err)
	}
	if appErr.Kind.StatusCode() == http.StatusInternalServerError && appErr.Err != nil {
		log.Printf("Internal error (%d): %v", appErr.Kind.StatusCode(), appErr.Err)
	}
	c.JSON(appErr.Kind.StatusCode(), gin.H{"error": appErr.Message})
}
