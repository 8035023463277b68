package dissect

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net"
	"time"

	"github.com/oyaguma3/radius-dissector-poc/internal/dict"
)

// renderValue は宣言されたValueKindに従って値領域をデコードし、
// 結果をrec.Value/rec.Noteへ書き込む。長さ不一致はrec.Noteへの注記に
// とどめ、走査自体は継続される。
func (c *decodeContext) renderValue(attr *dict.Attribute, body []byte, rec *DecodedAttribute) {
	switch attr.Kind {
	case dict.KindInteger:
		c.renderInteger(attr, body, rec)

	case dict.KindString:
		if attr.Encrypted {
			c.renderEncrypted(body, rec)
		} else {
			// 文字コード検証は行わずそのまま表示する
			rec.Value = string(body)
		}

	case dict.KindIPv4Address:
		if len(body) != 4 {
			rec.Note = "[wrong length for IP address]"
			return
		}
		rec.Value = net.IP(body).String()

	case dict.KindIPv6Address:
		if len(body) != 16 {
			rec.Note = "[wrong length for IPv6 address]"
			return
		}
		rec.Value = net.IP(body).String()

	case dict.KindDate:
		if len(body) != 4 {
			rec.Note = "[wrong length for timestamp]"
			return
		}
		secs := int64(binary.BigEndian.Uint32(body))
		rec.Value = time.Unix(secs, 0).UTC().Format(time.RFC3339)

	default:
		// Octets / ABinary / InterfaceID: 16進ダンプのみで解釈しない
		rec.Value = hex.EncodeToString(body)
	}
}

// renderInteger は2/3/4バイトのbig-endian整数、または8バイトの64bit整数を
// デコードする。それ以外の幅は非致命の注記として報告する。
func (c *decodeContext) renderInteger(attr *dict.Attribute, body []byte, rec *DecodedAttribute) {
	var v uint32
	switch len(body) {
	case 2:
		v = uint32(binary.BigEndian.Uint16(body))
	case 3:
		v = uint32(body[0])<<16 | uint32(body[1])<<8 | uint32(body[2])
	case 4:
		v = binary.BigEndian.Uint32(body)
	case 8:
		rec.Value = fmt.Sprintf("%d", binary.BigEndian.Uint64(body))
		return
	default:
		rec.Note = fmt.Sprintf("[unhandled integer length(%d)]", len(body))
		return
	}

	if attr.Enum != nil {
		name, ok := attr.EnumName(v)
		if !ok {
			name = "Unknown"
		}
		rec.Value = fmt.Sprintf("%s(%d)", name, v)
		return
	}
	rec.Value = fmt.Sprintf("%d", v)
}

// renderEncrypted は暗号化Stringの表示を行う。
// 共有シークレット未設定時は復号せず、暗号文を16進のまま注記付きで示す。
func (c *decodeContext) renderEncrypted(body []byte, rec *DecodedAttribute) {
	if c.dec.secret == "" {
		rec.Value = hex.EncodeToString(body)
		rec.Note = "Encrypted"
		return
	}
	rec.Value = c.decryptValue(body)
	rec.Note = "Decrypted"
}
