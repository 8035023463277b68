package dict

import "testing"

func TestBaseLookup(t *testing.T) {
	d := Base()

	tests := []struct {
		code     uint32
		wantName string
		wantKind ValueKind
	}{
		{1, "User-Name", KindString},
		{5, "NAS-Port", KindInteger},
		{4, "NAS-IP-Address", KindIPv4Address},
		{55, "Event-Timestamp", KindDate},
		{95, "NAS-IPv6-Address", KindIPv6Address},
		{96, "Framed-Interface-Id", KindInterfaceID},
	}

	for _, tt := range tests {
		a, ok := d.Attribute(tt.code)
		if !ok {
			t.Fatalf("Attribute(%d) not found", tt.code)
		}
		if a.Name != tt.wantName {
			t.Errorf("Attribute(%d).Name = %q, want %q", tt.code, a.Name, tt.wantName)
		}
		if a.Kind != tt.wantKind {
			t.Errorf("Attribute(%d).Kind = %v, want %v", tt.code, a.Kind, tt.wantKind)
		}
	}
}

func TestBaseLookupMiss(t *testing.T) {
	d := Base()

	if _, ok := d.Attribute(200); ok {
		t.Error("Attribute(200) should not exist in base dictionary")
	}
	if _, ok := d.Vendor(99999); ok {
		t.Error("Vendor(99999) should not exist in base dictionary")
	}
}

func TestBaseEncryptedAndTagged(t *testing.T) {
	d := Base()

	pw, _ := d.Attribute(2)
	if pw == nil || !pw.Encrypted {
		t.Error("User-Password should be marked encrypted")
	}

	tun, _ := d.Attribute(64)
	if tun == nil || !tun.Tagged {
		t.Error("Tunnel-Type should be marked tagged")
	}
	name, ok := tun.EnumName(3)
	if !ok || name != "L2TP" {
		t.Errorf("Tunnel-Type enum 3 = %q, want %q", name, "L2TP")
	}
	if _, ok := tun.EnumName(200); ok {
		t.Error("Tunnel-Type enum 200 should be unknown")
	}
}

func TestVendorLookup(t *testing.T) {
	d := Base()

	cisco, ok := d.Vendor(VendorCisco)
	if !ok {
		t.Fatal("Cisco vendor not found")
	}
	if cisco.Name != "Cisco" {
		t.Errorf("vendor name = %q, want %q", cisco.Name, "Cisco")
	}

	a, ok := cisco.Attribute(1)
	if !ok || a.Name != "Cisco-AVPair" {
		t.Errorf("Cisco attr 1 = %+v, want Cisco-AVPair", a)
	}

	if _, ok := cisco.Attribute(250); ok {
		t.Error("Cisco attr 250 should not exist")
	}
}

func TestRegisterDissectorExisting(t *testing.T) {
	d := Base()

	called := false
	d.RegisterDissector(VendorCoSine, 5, func(value []byte) string {
		called = true
		return "x"
	})

	cosine, _ := d.Vendor(VendorCoSine)
	a, ok := cosine.Attribute(5)
	if !ok {
		t.Fatal("Cosine-VPI-VCI not found after registration")
	}
	if a.Name != "Cosine-VPI-VCI" {
		t.Errorf("registration replaced descriptor name: %q", a.Name)
	}
	if a.Dissector == nil {
		t.Fatal("dissector not attached")
	}
	a.Dissector(nil)
	if !called {
		t.Error("dissector not invoked")
	}
}

func TestRegisterDissectorSynthesizesUnknown(t *testing.T) {
	d := Base()

	d.RegisterDissector(42424, 7, func(value []byte) string { return "" })

	v, ok := d.Vendor(42424)
	if !ok {
		t.Fatal("vendor 42424 not synthesized")
	}
	if v.Name != "Unknown-Vendor-42424" {
		t.Errorf("vendor name = %q, want %q", v.Name, "Unknown-Vendor-42424")
	}

	a, ok := v.Attribute(7)
	if !ok {
		t.Fatal("attribute 7 not synthesized")
	}
	if a.Name != "Unknown-Attribute-7" {
		t.Errorf("attr name = %q, want %q", a.Name, "Unknown-Attribute-7")
	}
	if a.Kind != KindOctets {
		t.Errorf("attr kind = %v, want %v", a.Kind, KindOctets)
	}
}

func TestRegisterDissectorTopLevel(t *testing.T) {
	d := Base()

	d.RegisterDissector(0, 224, func(value []byte) string { return "" })

	a, ok := d.Attribute(224)
	if !ok {
		t.Fatal("top-level attribute 224 not synthesized")
	}
	if a.Name != "Unknown-Attribute-224" {
		t.Errorf("attr name = %q, want %q", a.Name, "Unknown-Attribute-224")
	}
}

func TestBaseIsolation(t *testing.T) {
	d1 := Base()
	d2 := Base()

	d1.RegisterDissector(0, 5, func(value []byte) string { return "" })

	a, _ := d2.Attribute(5)
	if a.Dissector != nil {
		t.Error("RegisterDissector on one Base() leaked into another")
	}
}
