package dissect

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// decryptValue はRFC 2865 5.2のMD5キーストリームXORで暗号化値を復号する。
// digest = MD5(secret || authenticator) を先頭min(16, len(body))バイトに
// XORし、17バイト目以降はそのまま通す（単一ブロックのみ対応。複数ブロックの
// チェーン復号は行わない既知の制限）。
// 復号結果は非印字バイトを\nnn（8進3桁）でエスケープし二重引用符で囲む。
func (c *decodeContext) decryptValue(body []byte) string {
	h := md5.New()
	h.Write([]byte(c.dec.secret))
	h.Write(c.authenticator[:])
	digest := h.Sum(nil)

	var b strings.Builder
	b.WriteByte('"')
	for i, v := range body {
		if i < len(digest) {
			v ^= digest[i]
		}
		writeEscaped(&b, v)
	}
	b.WriteByte('"')
	return b.String()
}

// writeEscaped はASCII印字可能バイトをそのまま、それ以外を\nnn形式で書き込む
func writeEscaped(b *strings.Builder, v byte) {
	if v >= 0x20 && v < 0x7f {
		b.WriteByte(v)
		return
	}
	fmt.Fprintf(b, "\\%03o", v)
}
