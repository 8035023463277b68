// Package eapview は再組立済みEAPメッセージの要約を生成する
// （RADIUSデコーダから見た外部EAPデコーダのアダプタ）。
package eapview

import (
	"encoding/binary"
	"fmt"

	eapaka "github.com/oyaguma3/go-eapaka"
)

// EAPコード（RFC 3748）
const (
	CodeRequest  uint8 = 1
	CodeResponse uint8 = 2
	CodeSuccess  uint8 = 3
	CodeFailure  uint8 = 4
)

// EAP Type定数（RFC 3748/4187/5448）
const (
	EAPTypeIdentity uint8 = 1
	EAPTypeNak      uint8 = 3
	EAPTypeMD5      uint8 = 4
	EAPTypeTLS      uint8 = 13
	EAPTypeTTLS     uint8 = 21
	EAPTypeAKA      uint8 = 23
	EAPTypePEAP     uint8 = 25
	EAPTypeAKAPrime uint8 = 50
)

var codeNames = map[uint8]string{
	CodeRequest:  "Request",
	CodeResponse: "Response",
	CodeSuccess:  "Success",
	CodeFailure:  "Failure",
}

var typeNames = map[uint8]string{
	EAPTypeIdentity: "Identity",
	EAPTypeNak:      "Nak",
	EAPTypeMD5:      "MD5-Challenge",
	EAPTypeTLS:      "TLS",
	EAPTypeTTLS:     "TTLS",
	EAPTypeAKA:      "AKA",
	EAPTypePEAP:     "PEAP",
	EAPTypeAKAPrime: "AKA'",
}

// Summarize はEAPメッセージの1行要約を返す。
// EAP-AKA/AKA'のペイロードはgo-eapakaでパースし、サブタイプと属性数を付記する。
// パース不能な入力でもエラーにはせず、分かる範囲の要約を返す。
func Summarize(data []byte) string {
	if len(data) < 4 {
		return "[invalid EAP message]"
	}

	code := data[0]
	identifier := data[1]
	length := binary.BigEndian.Uint16(data[2:4])

	codeName, ok := codeNames[code]
	if !ok {
		codeName = fmt.Sprintf("Unknown-Code-%d", code)
	}

	// Success/FailureはCode+Identifier+Lengthのみの4バイト
	if code == CodeSuccess || code == CodeFailure {
		return fmt.Sprintf("%s (id=%d, l=%d)", codeName, identifier, length)
	}

	if len(data) < 5 {
		return fmt.Sprintf("%s (id=%d, l=%d) [truncated]", codeName, identifier, length)
	}

	eapType := data[4]
	typeName, ok := typeNames[eapType]
	if !ok {
		typeName = fmt.Sprintf("Type-%d", eapType)
	}

	summary := fmt.Sprintf("%s/%s (id=%d, l=%d)", codeName, typeName, identifier, length)

	if eapType == EAPTypeAKA || eapType == EAPTypeAKAPrime {
		pkt, err := eapaka.Parse(data)
		if err != nil {
			return summary + " [unparsable AKA payload]"
		}
		summary += fmt.Sprintf(" subtype=%d attrs=%d", pkt.Subtype, len(pkt.Attributes))
	}

	return summary
}
