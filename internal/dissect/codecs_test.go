package dissect

import (
	"testing"

	"github.com/oyaguma3/radius-dissector-poc/internal/dict"
)

// renderValueの単体検証用ヘルパ
func render(t *testing.T, attr *dict.Attribute, body []byte) *DecodedAttribute {
	t.Helper()
	sink := &recordSink{}
	ctx := &decodeContext{dec: New(dict.Base(), sink)}
	rec := &DecodedAttribute{Attr: attr, Code: attr.Code, Length: len(body)}
	ctx.renderValue(attr, body, rec)
	return rec
}

func TestRenderIntegerWidths(t *testing.T) {
	attr := &dict.Attribute{Code: 5, Name: "NAS-Port", Kind: dict.KindInteger}

	tests := []struct {
		name      string
		body      []byte
		wantValue string
		wantNote  string
	}{
		{"2 bytes", []byte{0x30, 0x39}, "12345", ""},
		{"3 bytes", []byte{0x01, 0x00, 0x01}, "65537", ""},
		{"4 bytes", []byte{0x00, 0x00, 0x30, 0x39}, "12345", ""},
		{"8 bytes", []byte{0, 0, 0, 1, 0, 0, 0, 0}, "4294967296", ""},
		{"5 bytes", []byte{1, 2, 3, 4, 5}, "", "[unhandled integer length(5)]"},
		{"1 byte", []byte{7}, "", "[unhandled integer length(1)]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := render(t, attr, tt.body)
			if rec.Value != tt.wantValue {
				t.Errorf("value = %q, want %q", rec.Value, tt.wantValue)
			}
			if rec.Note != tt.wantNote {
				t.Errorf("note = %q, want %q", rec.Note, tt.wantNote)
			}
		})
	}
}

func TestRenderIntegerEnum(t *testing.T) {
	d := dict.Base()
	attr, _ := d.Attribute(6) // Service-Type

	rec := render(t, attr, []byte{0, 0, 0, 2})
	if rec.Value != "Framed-User(2)" {
		t.Errorf("value = %q, want %q", rec.Value, "Framed-User(2)")
	}

	rec = render(t, attr, []byte{0, 0, 0, 99})
	if rec.Value != "Unknown(99)" {
		t.Errorf("value = %q, want %q", rec.Value, "Unknown(99)")
	}
}

func TestRenderAddresses(t *testing.T) {
	d := dict.Base()
	v4, _ := d.Attribute(4)  // NAS-IP-Address
	v6, _ := d.Attribute(95) // NAS-IPv6-Address

	rec := render(t, v4, []byte{192, 168, 1, 10})
	if rec.Value != "192.168.1.10" {
		t.Errorf("ipv4 = %q", rec.Value)
	}

	rec = render(t, v4, []byte{192, 168, 1})
	if rec.Note != "[wrong length for IP address]" || rec.Value != "" {
		t.Errorf("short ipv4: value=%q note=%q", rec.Value, rec.Note)
	}

	addr := []byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	rec = render(t, v6, addr)
	if rec.Value != "2001:db8::1" {
		t.Errorf("ipv6 = %q", rec.Value)
	}

	rec = render(t, v6, addr[:8])
	if rec.Note != "[wrong length for IPv6 address]" {
		t.Errorf("short ipv6 note = %q", rec.Note)
	}
}

func TestRenderDate(t *testing.T) {
	d := dict.Base()
	attr, _ := d.Attribute(55) // Event-Timestamp

	// 2009-02-13 23:31:30 UTC
	rec := render(t, attr, []byte{0x49, 0x96, 0x02, 0xd2})
	if rec.Value != "2009-02-13T23:31:30Z" {
		t.Errorf("date = %q", rec.Value)
	}

	rec = render(t, attr, []byte{1, 2})
	if rec.Note != "[wrong length for timestamp]" {
		t.Errorf("short date note = %q", rec.Note)
	}
}

func TestRenderOctetsKinds(t *testing.T) {
	body := []byte{0x0a, 0xff, 0x00}
	kinds := []dict.ValueKind{dict.KindOctets, dict.KindABinary, dict.KindInterfaceID}

	for _, k := range kinds {
		attr := &dict.Attribute{Name: "X", Kind: k}
		rec := render(t, attr, body)
		if rec.Value != "0aff00" {
			t.Errorf("kind %v: value = %q, want hex dump", k, rec.Value)
		}
	}
}

func TestCosineVPVC(t *testing.T) {
	if got := CosineVPVC([]byte{0x00, 0x05, 0x00, 0x21}); got != "5/33" {
		t.Errorf("CosineVPVC = %q, want %q", got, "5/33")
	}
	if got := CosineVPVC([]byte{1, 2, 3}); got != "[wrong length for VP/VC AVP]" {
		t.Errorf("CosineVPVC short = %q", got)
	}
}
