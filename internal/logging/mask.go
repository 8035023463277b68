// Package logging はログ出力向けの整形ヘルパーを提供する。
package logging

import "strings"

// maskedLength はマスク後の固定長。元の長さを推測させないため固定とする。
const maskedLength = 8

// MaskPassword は復号済みパスワード等の秘匿値をマスキングする。
// enabled=falseまたは空文字列の場合はそのまま返す。
func MaskPassword(value string, enabled bool) string {
	if !enabled || value == "" {
		return value
	}
	return strings.Repeat("*", maskedLength)
}
