// Package dissect はRADIUSデータグラムをデコードし、属性イベント列を生成する。
package dissect

import (
	"encoding/binary"
	"fmt"

	"github.com/oyaguma3/radius-dissector-poc/internal/dict"
)

const (
	headerLength        = 20
	authenticatorLength = 16
	maxPacketSize       = 4096

	typeVendorSpecific = 26
	typeEAPMessage     = 79
)

// Decoder はRADIUSパケットデコーダ。
// 1つのデコードセッションにつき1インスタンスの辞書を参照する。
// Decodeは同期実行であり、SetSecretを含む設定変更とDecodeの並行呼び出しは
// 呼び出し側で直列化すること。
type Decoder struct {
	dict   *dict.Dictionary
	sink   Sink
	secret string
}

// New は新しいDecoderを生成する
func New(d *dict.Dictionary, sink Sink) *Decoder {
	return &Decoder{dict: d, sink: sink}
}

// SetSecret はUser-Password復号用の共有シークレットを設定する。
// 空文字列の場合、復号はスキップされる。
func (dec *Decoder) SetSecret(secret string) {
	dec.secret = secret
}

// Decode はRADIUSデータグラム1つをデコードする。
// 致命エラーはSinkへのインライン通知に加えてセンチネルエラーとして返す。
// エラーが返っても、そこまでに通知済みの属性イベントは有効である。
func (dec *Decoder) Decode(buf []byte) error {
	if len(buf) < headerLength {
		dec.sink.Note(0, fmt.Sprintf("Short RADIUS header: %d bytes", len(buf)))
		return ErrMalformedHeader
	}

	info := PacketInfo{
		Code:       buf[0],
		Identifier: buf[1],
		Length:     binary.BigEndian.Uint16(buf[2:4]),
	}
	dec.sink.PacketInfo(info)

	// RFC 2865 3: 20 <= Length <= 4096。Lengthより短いバッファは破棄対象。
	total := int(info.Length)
	if total < headerLength || total > maxPacketSize || total > len(buf) {
		dec.sink.Note(2, fmt.Sprintf("Bogus header length: %d", info.Length))
		return ErrMalformedHeader
	}

	// AuthenticatorとEAP再組立バッファはパケット単位のスクラッチ状態。
	// decodeContextに閉じることで並行・再入デコードでも持ち越しが起きない。
	ctx := &decodeContext{dec: dec, buf: buf[:total]}
	copy(ctx.authenticator[:], buf[4:headerLength])

	avpLength := total - headerLength
	if avpLength == 0 {
		dec.sink.Note(headerLength, "No Attribute Value Pairs Found")
		return nil
	}

	return ctx.walk(headerLength, avpLength)
}

// decodeContext はデコード1回分のスクラッチ状態
type decodeContext struct {
	dec           *Decoder
	buf           []byte
	authenticator [authenticatorLength]byte
	eapBuf        []byte
	eapSegments   int
}
