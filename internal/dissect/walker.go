package dissect

import (
	"encoding/binary"
	"fmt"

	"github.com/oyaguma3/radius-dissector-poc/internal/dict"
)

// walk は属性領域[offset, offset+length)をTLV走査する。
// AVPごとに辞書解決・コーデック適用を行い、Sinkへレコードを通知する。
func (c *decodeContext) walk(offset, length int) error {
	sink := c.dec.sink

	for length > 0 {
		if offset+2 > len(c.buf) {
			sink.Note(offset, "[truncated AVP header]")
			return ErrTruncatedAVP
		}

		avpType := uint32(c.buf[offset])
		avpLength := int(c.buf[offset+1])

		// 最小AVPはtype+length+値1バイト。再同期は試みない。
		if avpLength < 3 {
			sink.Note(offset, "AVP too short")
			return ErrAVPTooShort
		}

		length -= avpLength
		if length < 0 || offset+avpLength > len(c.buf) {
			sink.Note(offset, "[AVP runs past end of attribute region]")
			return ErrTruncatedAVP
		}

		if avpType == typeEAPMessage {
			if err := c.walkEAPSegment(offset, avpLength, length); err != nil {
				return err
			}
			offset += avpLength
			continue
		}

		rec := &DecodedAttribute{AVPLength: avpLength}
		bodyOffset := offset
		bodyLength := avpLength

		if avpType == typeVendorSpecific {
			// 外側ヘッダ(2) + ベンダーID(4) + 内側ヘッダ(2) が最低限必要
			if avpLength < 9 {
				sink.Note(offset, "[truncated vendor specific AVP]")
				return ErrTruncatedAVP
			}

			rec.VendorID = binary.BigEndian.Uint32(c.buf[offset+2 : offset+6])
			rec.Code = uint32(c.buf[offset+6])

			// 内側のサブAVPは最初の1つのみを消費し、値領域は外側長の
			// 末尾まで広げる（複数サブAVPの走査は行わない既知の境界）。
			if vendor, ok := c.dec.dict.Vendor(rec.VendorID); ok {
				rec.Vendor = vendor
				if attr, ok := vendor.Attribute(rec.Code); ok {
					rec.Attr = attr
				}
			}
			if rec.Attr == nil {
				rec.Attr = dict.Unknown
			}

			bodyOffset += 8
			bodyLength -= 8
		} else {
			rec.Code = avpType
			if attr, ok := c.dec.dict.Attribute(avpType); ok {
				rec.Attr = attr
			} else {
				rec.Attr = dict.Unknown
			}

			bodyOffset += 2
			bodyLength -= 2
		}

		// RFC 2868のタグ判別: 先頭バイトが0x00-0x1Fのときのみタグとして消費
		if rec.Attr.Tagged && bodyLength > 0 && c.buf[bodyOffset] <= 0x1f {
			rec.HasTag = true
			rec.Tag = c.buf[bodyOffset]
			bodyOffset++
			bodyLength--
		}

		rec.Offset = bodyOffset
		rec.Length = bodyLength
		body := c.buf[bodyOffset : bodyOffset+bodyLength]

		if rec.Attr.Dissector != nil {
			rec.Value = rec.Attr.Dissector(body)
		} else {
			c.renderValue(rec.Attr, body, rec)
		}

		sink.Attribute(rec)

		offset += avpLength
	}

	return nil
}

// walkEAPSegment はEAP-Message AVP1つを再組立バッファへ取り込む。
// 終端セグメント（次のAVPがEAP-Messageでない、または領域末尾）で
// 再組立済みバッファをEAPMessageイベントとして通知し、バッファを解放する。
func (c *decodeContext) walkEAPSegment(offset, avpLength, remaining int) error {
	segLength := avpLength - 2

	if len(c.eapBuf)+segLength > maxPacketSize {
		c.dec.sink.Note(offset, "[EAP-Message longer than maximum radius packet size]")
		return ErrEAPBufferOverflow
	}

	c.eapBuf = append(c.eapBuf, c.buf[offset+2:offset+avpLength]...)
	c.eapSegments++

	last := true
	if remaining > 0 && offset+avpLength < len(c.buf) {
		if c.buf[offset+avpLength] == typeEAPMessage {
			last = false
		}
	}

	if last {
		c.dec.sink.Note(offset, fmt.Sprintf("EAP-Message(79) Last Segment[%d]", c.eapSegments))

		// 受け手が独立して保持できるよう複製して引き渡す
		data := make([]byte, len(c.eapBuf))
		copy(data, c.eapBuf)
		c.dec.sink.EAPMessage(data, c.eapSegments)

		c.eapBuf = c.eapBuf[:0]
		c.eapSegments = 0
	}

	return nil
}
