package monitor

import (
	"context"
	"encoding/binary"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/oyaguma3/radius-dissector-poc/internal/dict"
	"github.com/oyaguma3/radius-dissector-poc/internal/dissect"
	"github.com/oyaguma3/radius-dissector-poc/internal/export"
	"github.com/oyaguma3/radius-dissector-poc/internal/logging"
	"github.com/oyaguma3/radius-dissector-poc/internal/store"
)

// Acct-Status-Type値（RFC 2866 5.1）
const (
	acctStatusStart   = 1
	acctStatusStop    = 2
	acctStatusInterim = 3
)

// Handler はデータグラム1つをデコードし、セッション更新とエクスポートを行う。
// sessions/exporterはnil可（該当機能を無効化）。
type Handler struct {
	dict         *dict.Dictionary
	secret       string
	maskPassword bool
	sessions     store.SessionStore
	exporter     export.Exporter
}

// NewHandler は新しいHandlerを生成する
func NewHandler(d *dict.Dictionary, secret string, maskPassword bool, sessions store.SessionStore, exporter export.Exporter) *Handler {
	return &Handler{
		dict:         d,
		secret:       secret,
		maskPassword: maskPassword,
		sessions:     sessions,
		exporter:     exporter,
	}
}

// HandleDatagram は受信データグラム1つを処理する。
// デコードの致命エラーはログに記録した上でそのパケットのみを打ち切る。
func (h *Handler) HandleDatagram(ctx context.Context, srcIP string, buf []byte) {
	traceID := uuid.New().String()

	slog.Info("データグラム受信",
		"event_id", "PKT_RECV",
		"trace_id", traceID,
		"src_ip", srcIP,
		"bytes", len(buf),
	)

	sink := newTreeSink(traceID, h.maskPassword)
	dec := dissect.New(h.dict, sink)
	dec.SetSecret(h.secret)

	if err := dec.Decode(buf); err != nil {
		slog.Warn("デコード中断",
			"event_id", "PKT_DECODE_ERR",
			"trace_id", traceID,
			"src_ip", srcIP,
			"error", err,
		)
	}

	if !sink.hasInfo {
		return
	}

	if h.sessions != nil && sink.info.Code == dissect.CodeAccountingRequest {
		h.updateSession(ctx, traceID, srcIP, buf, sink)
	}

	if h.exporter != nil {
		h.exportRecord(ctx, traceID, srcIP, sink)
	}
}

// attrValue は属性名でデコード済み値を検索する
func attrValue(sink *treeSink, name string) (string, bool) {
	for _, rec := range sink.attrs {
		if rec.Attr.Name == name {
			return rec.Value, true
		}
	}
	return "", false
}

// attrUint32 は属性の生の4バイト値を読み出す
func attrUint32(sink *treeSink, buf []byte, name string) (uint32, bool) {
	for _, rec := range sink.attrs {
		if rec.Attr.Name == name && rec.Length == 4 {
			return binary.BigEndian.Uint32(buf[rec.Offset : rec.Offset+4]), true
		}
	}
	return 0, false
}

// updateSession はAccounting-RequestからValkey上のセッション状態を更新する
func (h *Handler) updateSession(ctx context.Context, traceID, srcIP string, buf []byte, sink *treeSink) {
	sessionID, ok := attrValue(sink, "Acct-Session-Id")
	if !ok || sessionID == "" {
		slog.Warn("Acct-Session-Idなし",
			"event_id", "ACCT_NO_SESSION_ID",
			"trace_id", traceID,
		)
		return
	}

	status, ok := attrUint32(sink, buf, "Acct-Status-Type")
	if !ok {
		slog.Warn("Acct-Status-Typeなし",
			"event_id", "ACCT_NO_STATUS",
			"trace_id", traceID,
		)
		return
	}

	var err error
	switch status {
	case acctStatusStart, acctStatusInterim:
		fields := map[string]any{
			"status": statusLabel(status),
			"src_ip": srcIP,
		}
		if v, ok := attrValue(sink, "User-Name"); ok {
			fields["user_name"] = v
		}
		if v, ok := attrValue(sink, "NAS-IP-Address"); ok {
			fields["nas_ip"] = v
		}
		if v, ok := attrValue(sink, "Framed-IP-Address"); ok {
			fields["framed_ip"] = v
		}
		err = h.sessions.Upsert(ctx, sessionID, fields)

	case acctStatusStop:
		err = h.sessions.Delete(ctx, sessionID)

	default:
		// Accounting-On/Off等はセッション個別の状態を持たない
		return
	}

	if err != nil {
		slog.Error("セッション更新失敗",
			"event_id", "ACCT_STORE_ERR",
			"trace_id", traceID,
			"session_id", sessionID,
			"error", err,
		)
		return
	}

	slog.Info("セッション更新",
		"event_id", "ACCT_SESSION",
		"trace_id", traceID,
		"session_id", sessionID,
		"status", statusLabel(status),
	)
}

func statusLabel(status uint32) string {
	switch status {
	case acctStatusStart:
		return "Start"
	case acctStatusStop:
		return "Stop"
	case acctStatusInterim:
		return "Interim-Update"
	default:
		return "Other"
	}
}

// exportRecord はデコード結果をエクスポートAPIへ送出する
func (h *Handler) exportRecord(ctx context.Context, traceID, srcIP string, sink *treeSink) {
	rec := &export.PacketRecord{
		TraceID:    traceID,
		SrcIP:      srcIP,
		Code:       sink.info.Code,
		CodeName:   dissect.CodeName(sink.info.Code),
		Identifier: sink.info.Identifier,
		Length:     sink.info.Length,
	}

	for _, a := range sink.attrs {
		ar := export.AttributeRecord{
			Name:  a.Attr.Name,
			Code:  a.Code,
			Value: a.Value,
			Note:  a.Note,
		}
		if a.Attr.Encrypted {
			ar.Value = logging.MaskPassword(a.Value, h.maskPassword)
		}
		if a.VendorID != 0 {
			if a.Vendor != nil {
				ar.Vendor = a.Vendor.Name
			} else {
				ar.Vendor = "Unknown"
			}
		}
		if a.HasTag {
			tag := a.Tag
			ar.Tag = &tag
		}
		rec.Attributes = append(rec.Attributes, ar)
	}

	if len(sink.eapViews) > 0 {
		rec.EAPSummary = strings.Join(sink.eapViews, "; ")
	}

	if err := h.exporter.Export(ctx, rec); err != nil {
		slog.Error("エクスポート失敗",
			"event_id", "EXPORT_ERR",
			"trace_id", traceID,
			"error", err,
		)
	}
}
