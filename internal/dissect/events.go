package dissect

import (
	"fmt"
	"strings"

	"github.com/oyaguma3/radius-dissector-poc/internal/dict"
)

// PacketInfo はパケットサマリーイベント
type PacketInfo struct {
	Code       uint8
	Identifier uint8
	Length     uint16 // ヘッダ宣言長
}

// Summary は"<CodeName>(<code>) (id=<id>, l=<len>)"形式のサマリー文字列を返す
func (p PacketInfo) Summary() string {
	return fmt.Sprintf("%s(%d) (id=%d, l=%d)", CodeName(p.Code), p.Code, p.Identifier, p.Length)
}

// DecodedAttribute はAVP1つ分のデコード結果レコード。
// 生成後の所有権は受け手（Sink実装）へ移り、デコーダ側で保持しない。
type DecodedAttribute struct {
	Vendor    *dict.Vendor    // Vendor-Specific AVPで解決できた場合のみ非nil
	VendorID  uint32          // Vendor-Specific AVPのベンダーID（それ以外は0）
	Attr      *dict.Attribute // 解決済み記述子（未知属性はdict.Unknown）
	Code      uint32          // ワイヤ上の属性コード（VSA時はサブタイプ）
	AVPLength int             // 外側AVPの宣言長
	Offset    int             // 値領域の元バッファ内オフセット
	Length    int             // 値領域の長さ
	HasTag    bool
	Tag       uint8
	Value     string // デコード済みテキスト表現
	Note      string // 局所的な異常（長さ不一致等）の注記
}

// Summary はAVPレコードの1行表現を返す
func (a *DecodedAttribute) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "AVP: l=%d", a.AVPLength)
	if a.VendorID != 0 {
		if a.Vendor != nil {
			fmt.Fprintf(&b, " v=%s(%d)", a.Vendor.Name, a.VendorID)
		} else {
			fmt.Fprintf(&b, " v=Unknown(%d)", a.VendorID)
		}
	}
	fmt.Fprintf(&b, " t=%s(%d)", a.Attr.Name, a.Code)
	if a.HasTag {
		fmt.Fprintf(&b, " Tag=0x%02x", a.Tag)
	}
	if a.Value != "" {
		fmt.Fprintf(&b, ": %s", a.Value)
	}
	if a.Note != "" {
		fmt.Fprintf(&b, " %s", a.Note)
	}
	return b.String()
}

// Sink はデコード結果イベントの受け手（属性ツリー側コラボレータ）。
// イベントはワイヤ上の順序で通知される。ただし連続するEAP-Message AVPは
// 終端セグメントの位置で1つのEAPMessageイベントに集約される。
type Sink interface {
	// PacketInfo はパケットヘッダのサマリーを通知する
	PacketInfo(info PacketInfo)
	// Attribute はデコード済みAVPレコードを1件通知する
	Attribute(rec *DecodedAttribute)
	// Note は位置付きの情報・エラーマーカーを通知する
	Note(offset int, text string)
	// EAPMessage は再組立済みEAPメッセージを通知する。
	// dataは呼び出し側が自由に保持できる独立したバッファである。
	EAPMessage(data []byte, segments int)
}
