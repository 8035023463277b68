package dissect

import (
	"encoding/binary"
	"fmt"
)

// recordSink はテスト用のイベント記録Sink
type recordSink struct {
	infos  []PacketInfo
	attrs  []*DecodedAttribute
	notes  []string
	eaps   [][]byte
	segs   []int
	events []string // 通知順の文字列表現（順序・冪等性検証用）
}

func (s *recordSink) PacketInfo(info PacketInfo) {
	s.infos = append(s.infos, info)
	s.events = append(s.events, info.Summary())
}

func (s *recordSink) Attribute(rec *DecodedAttribute) {
	s.attrs = append(s.attrs, rec)
	s.events = append(s.events, rec.Summary())
}

func (s *recordSink) Note(offset int, text string) {
	s.notes = append(s.notes, text)
	s.events = append(s.events, fmt.Sprintf("note@%d: %s", offset, text))
}

func (s *recordSink) EAPMessage(data []byte, segments int) {
	s.eaps = append(s.eaps, data)
	s.segs = append(s.segs, segments)
	s.events = append(s.events, fmt.Sprintf("eap[%d]: %d bytes", segments, len(data)))
}

// findAttr は属性名でレコードを検索する
func (s *recordSink) findAttr(name string) *DecodedAttribute {
	for _, rec := range s.attrs {
		if rec.Attr.Name == name {
			return rec
		}
	}
	return nil
}

// avp は生のAVPバイト列を組み立てる
func avp(avpType byte, body []byte) []byte {
	out := []byte{avpType, byte(2 + len(body))}
	return append(out, body...)
}

// vsa はVendor-Specific AVPを組み立てる（サブAVP1つ）
func vsa(vendorID uint32, subType byte, body []byte) []byte {
	inner := make([]byte, 0, 6+len(body))
	inner = binary.BigEndian.AppendUint32(inner, vendorID)
	inner = append(inner, subType, byte(2+len(body)))
	inner = append(inner, body...)
	return avp(26, inner)
}

// buildPacket はヘッダ長を計算してRADIUSデータグラムを組み立てる
func buildPacket(code, identifier byte, authenticator [16]byte, avps ...[]byte) []byte {
	buf := []byte{code, identifier, 0, 0}
	buf = append(buf, authenticator[:]...)
	for _, a := range avps {
		buf = append(buf, a...)
	}
	binary.BigEndian.PutUint16(buf[2:4], uint16(len(buf)))
	return buf
}

// testAuth はテスト用の固定Authenticator
func testAuth() [16]byte {
	var a [16]byte
	for i := range a {
		a[i] = byte(i + 0xA0)
	}
	return a
}
