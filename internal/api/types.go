// Package api はHTTP APIで共有されるレスポンス型を定義します。
package api

// ErrorResponse は2xx以外のJSONレスポンスの共通ボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}
