// Package monitor はデータグラム1つ分のデコード・記録・送出パイプラインを提供する。
package monitor

import (
	"log/slog"

	"github.com/oyaguma3/radius-dissector-poc/internal/dissect"
	"github.com/oyaguma3/radius-dissector-poc/internal/eapview"
	"github.com/oyaguma3/radius-dissector-poc/internal/logging"
)

// treeSink はデコードイベントをslogレコードとして出力する属性ツリー実装。
// 後段処理（セッション更新・エクスポート）のためイベントを保持する。
type treeSink struct {
	traceID      string
	maskPassword bool

	info     dissect.PacketInfo
	hasInfo  bool
	attrs    []*dissect.DecodedAttribute
	eapViews []string
}

func newTreeSink(traceID string, maskPassword bool) *treeSink {
	return &treeSink{traceID: traceID, maskPassword: maskPassword}
}

// PacketInfo はパケットサマリーを記録する
func (s *treeSink) PacketInfo(info dissect.PacketInfo) {
	s.info = info
	s.hasInfo = true
	slog.Info("RADIUSパケット",
		"event_id", "PKT_SUMMARY",
		"trace_id", s.traceID,
		"summary", info.Summary(),
	)
}

// Attribute はデコード済みAVPを記録する
func (s *treeSink) Attribute(rec *dissect.DecodedAttribute) {
	s.attrs = append(s.attrs, rec)

	value := rec.Value
	if rec.Attr.Encrypted {
		value = logging.MaskPassword(value, s.maskPassword)
	}

	slog.Info("AVPデコード",
		"event_id", "PKT_AVP",
		"trace_id", s.traceID,
		"attr", rec.Attr.Name,
		"code", rec.Code,
		"value", value,
		"note", rec.Note,
	)
}

// Note は位置付きマーカーを記録する
func (s *treeSink) Note(offset int, text string) {
	slog.Info("デコードマーカー",
		"event_id", "PKT_NOTE",
		"trace_id", s.traceID,
		"offset", offset,
		"text", text,
	)
}

// EAPMessage は再組立済みEAPメッセージを外部EAPデコーダへ渡し、要約を記録する
func (s *treeSink) EAPMessage(data []byte, segments int) {
	summary := eapview.Summarize(data)
	s.eapViews = append(s.eapViews, summary)

	slog.Info("EAP再組立完了",
		"event_id", "PKT_EAP",
		"trace_id", s.traceID,
		"segments", segments,
		"length", len(data),
		"eap", summary,
	)
}
