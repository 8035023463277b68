package dict

// ベンダーSMI enterprise number
const (
	VendorCisco     = 9
	VendorMicrosoft = 311
	VendorCoSine    = 3085
)

// serviceTypeNames はService-Type属性の値ラベル（RFC 2865 5.6）
var serviceTypeNames = map[uint32]string{
	1:  "Login-User",
	2:  "Framed-User",
	3:  "Callback-Login-User",
	4:  "Callback-Framed-User",
	5:  "Outbound-User",
	6:  "Administrative-User",
	7:  "NAS-Prompt-User",
	8:  "Authenticate-Only",
	9:  "Callback-NAS-Prompt",
	10: "Call-Check",
	11: "Callback-Administrative",
}

// framedProtocolNames はFramed-Protocol属性の値ラベル（RFC 2865 5.7）
var framedProtocolNames = map[uint32]string{
	1: "PPP",
	2: "SLIP",
	3: "ARAP",
	4: "Gandalf-SLML",
	5: "Xylogics-IPX-SLIP",
	6: "X.75-Synchronous",
}

// nasPortTypeNames はNAS-Port-Type属性の値ラベル（RFC 2865 5.41）
var nasPortTypeNames = map[uint32]string{
	0:  "Async",
	1:  "Sync",
	2:  "ISDN-Sync",
	3:  "ISDN-Async-V.120",
	4:  "ISDN-Async-V.110",
	5:  "Virtual",
	6:  "PIAFS",
	7:  "HDLC-Clear-Channel",
	8:  "X.25",
	9:  "X.75",
	10: "G.3-Fax",
	11: "SDSL",
	12: "ADSL-CAP",
	13: "ADSL-DMT",
	14: "IDSL",
	15: "Ethernet",
	16: "xDSL",
	17: "Cable",
	18: "Wireless-Other",
	19: "Wireless-802.11",
}

// acctStatusTypeNames はAcct-Status-Type属性の値ラベル（RFC 2866 5.1）
var acctStatusTypeNames = map[uint32]string{
	1:  "Start",
	2:  "Stop",
	3:  "Interim-Update",
	7:  "Accounting-On",
	8:  "Accounting-Off",
	15: "Failed",
}

// acctTerminateCauseNames はAcct-Terminate-Cause属性の値ラベル（RFC 2866 5.10）
var acctTerminateCauseNames = map[uint32]string{
	1:  "User-Request",
	2:  "Lost-Carrier",
	3:  "Lost-Service",
	4:  "Idle-Timeout",
	5:  "Session-Timeout",
	6:  "Admin-Reset",
	7:  "Admin-Reboot",
	8:  "Port-Error",
	9:  "NAS-Error",
	10: "NAS-Request",
	11: "NAS-Reboot",
	12: "Port-Unneeded",
	13: "Port-Preempted",
	14: "Port-Suspended",
	15: "Service-Unavailable",
	16: "Callback",
	17: "User-Error",
	18: "Host-Request",
}

// tunnelTypeNames はTunnel-Type属性の値ラベル（RFC 2868 3.1）
var tunnelTypeNames = map[uint32]string{
	1:  "PPTP",
	2:  "L2F",
	3:  "L2TP",
	4:  "ATMP",
	5:  "VTP",
	6:  "AH",
	7:  "IP-IP",
	8:  "MIN-IP-IP",
	9:  "ESP",
	10: "GRE",
	11: "DVS",
	12: "IP-in-IP-Tunneling",
	13: "VLAN",
}

// tunnelMediumTypeNames はTunnel-Medium-Type属性の値ラベル（RFC 2868 3.2）
var tunnelMediumTypeNames = map[uint32]string{
	1: "IPv4",
	2: "IPv6",
	3: "NSAP",
	4: "HDLC",
	5: "BBN-1822",
	6: "802",
	7: "E.163",
	8: "E.164",
}

// baseAttributes はRFC 2865/2866/2868/2869/3162/3576のトップレベル属性。
// 辞書ファイルローダーの代替として組み込みで保持する。
var baseAttributes = []*Attribute{
	{Code: 1, Name: "User-Name", Kind: KindString},
	{Code: 2, Name: "User-Password", Kind: KindString, Encrypted: true},
	{Code: 3, Name: "CHAP-Password", Kind: KindOctets},
	{Code: 4, Name: "NAS-IP-Address", Kind: KindIPv4Address},
	{Code: 5, Name: "NAS-Port", Kind: KindInteger},
	{Code: 6, Name: "Service-Type", Kind: KindInteger, Enum: serviceTypeNames},
	{Code: 7, Name: "Framed-Protocol", Kind: KindInteger, Enum: framedProtocolNames},
	{Code: 8, Name: "Framed-IP-Address", Kind: KindIPv4Address},
	{Code: 9, Name: "Framed-IP-Netmask", Kind: KindIPv4Address},
	{Code: 10, Name: "Framed-Routing", Kind: KindInteger},
	{Code: 11, Name: "Filter-Id", Kind: KindString},
	{Code: 12, Name: "Framed-MTU", Kind: KindInteger},
	{Code: 13, Name: "Framed-Compression", Kind: KindInteger},
	{Code: 14, Name: "Login-IP-Host", Kind: KindIPv4Address},
	{Code: 15, Name: "Login-Service", Kind: KindInteger},
	{Code: 16, Name: "Login-TCP-Port", Kind: KindInteger},
	{Code: 18, Name: "Reply-Message", Kind: KindString},
	{Code: 19, Name: "Callback-Number", Kind: KindString},
	{Code: 20, Name: "Callback-Id", Kind: KindString},
	{Code: 22, Name: "Framed-Route", Kind: KindString},
	{Code: 23, Name: "Framed-IPX-Network", Kind: KindInteger},
	{Code: 24, Name: "State", Kind: KindOctets},
	{Code: 25, Name: "Class", Kind: KindOctets},
	{Code: 27, Name: "Session-Timeout", Kind: KindInteger},
	{Code: 28, Name: "Idle-Timeout", Kind: KindInteger},
	{Code: 29, Name: "Termination-Action", Kind: KindInteger},
	{Code: 30, Name: "Called-Station-Id", Kind: KindString},
	{Code: 31, Name: "Calling-Station-Id", Kind: KindString},
	{Code: 32, Name: "NAS-Identifier", Kind: KindString},
	{Code: 33, Name: "Proxy-State", Kind: KindOctets},
	{Code: 34, Name: "Login-LAT-Service", Kind: KindString},
	{Code: 35, Name: "Login-LAT-Node", Kind: KindString},
	{Code: 36, Name: "Login-LAT-Group", Kind: KindOctets},
	{Code: 37, Name: "Framed-AppleTalk-Link", Kind: KindInteger},
	{Code: 38, Name: "Framed-AppleTalk-Network", Kind: KindInteger},
	{Code: 39, Name: "Framed-AppleTalk-Zone", Kind: KindString},
	{Code: 40, Name: "Acct-Status-Type", Kind: KindInteger, Enum: acctStatusTypeNames},
	{Code: 41, Name: "Acct-Delay-Time", Kind: KindInteger},
	{Code: 42, Name: "Acct-Input-Octets", Kind: KindInteger},
	{Code: 43, Name: "Acct-Output-Octets", Kind: KindInteger},
	{Code: 44, Name: "Acct-Session-Id", Kind: KindString},
	{Code: 45, Name: "Acct-Authentic", Kind: KindInteger},
	{Code: 46, Name: "Acct-Session-Time", Kind: KindInteger},
	{Code: 47, Name: "Acct-Input-Packets", Kind: KindInteger},
	{Code: 48, Name: "Acct-Output-Packets", Kind: KindInteger},
	{Code: 49, Name: "Acct-Terminate-Cause", Kind: KindInteger, Enum: acctTerminateCauseNames},
	{Code: 50, Name: "Acct-Multi-Session-Id", Kind: KindString},
	{Code: 51, Name: "Acct-Link-Count", Kind: KindInteger},
	{Code: 52, Name: "Acct-Input-Gigawords", Kind: KindInteger},
	{Code: 53, Name: "Acct-Output-Gigawords", Kind: KindInteger},
	{Code: 55, Name: "Event-Timestamp", Kind: KindDate},
	{Code: 60, Name: "CHAP-Challenge", Kind: KindOctets},
	{Code: 61, Name: "NAS-Port-Type", Kind: KindInteger, Enum: nasPortTypeNames},
	{Code: 62, Name: "Port-Limit", Kind: KindInteger},
	{Code: 63, Name: "Login-LAT-Port", Kind: KindString},
	{Code: 64, Name: "Tunnel-Type", Kind: KindInteger, Tagged: true, Enum: tunnelTypeNames},
	{Code: 65, Name: "Tunnel-Medium-Type", Kind: KindInteger, Tagged: true, Enum: tunnelMediumTypeNames},
	{Code: 66, Name: "Tunnel-Client-Endpoint", Kind: KindString, Tagged: true},
	{Code: 67, Name: "Tunnel-Server-Endpoint", Kind: KindString, Tagged: true},
	{Code: 68, Name: "Acct-Tunnel-Connection", Kind: KindString},
	{Code: 69, Name: "Tunnel-Password", Kind: KindString, Encrypted: true, Tagged: true},
	{Code: 70, Name: "ARAP-Password", Kind: KindOctets},
	{Code: 75, Name: "Password-Retry", Kind: KindInteger},
	{Code: 76, Name: "Prompt", Kind: KindInteger},
	{Code: 77, Name: "Connect-Info", Kind: KindString},
	{Code: 78, Name: "Configuration-Token", Kind: KindString},
	{Code: 79, Name: "EAP-Message", Kind: KindOctets},
	{Code: 80, Name: "Message-Authenticator", Kind: KindOctets},
	{Code: 81, Name: "Tunnel-Private-Group-Id", Kind: KindString, Tagged: true},
	{Code: 82, Name: "Tunnel-Assignment-Id", Kind: KindString, Tagged: true},
	{Code: 83, Name: "Tunnel-Preference", Kind: KindInteger, Tagged: true},
	{Code: 85, Name: "Acct-Interim-Interval", Kind: KindInteger},
	{Code: 87, Name: "NAS-Port-Id", Kind: KindString},
	{Code: 88, Name: "Framed-Pool", Kind: KindString},
	{Code: 90, Name: "Tunnel-Client-Auth-Id", Kind: KindString, Tagged: true},
	{Code: 91, Name: "Tunnel-Server-Auth-Id", Kind: KindString, Tagged: true},
	{Code: 95, Name: "NAS-IPv6-Address", Kind: KindIPv6Address},
	{Code: 96, Name: "Framed-Interface-Id", Kind: KindInterfaceID},
	{Code: 97, Name: "Framed-IPv6-Prefix", Kind: KindOctets},
	{Code: 98, Name: "Login-IPv6-Host", Kind: KindIPv6Address},
	{Code: 99, Name: "Framed-IPv6-Route", Kind: KindString},
	{Code: 100, Name: "Framed-IPv6-Pool", Kind: KindString},
	{Code: 101, Name: "Error-Cause", Kind: KindInteger},
}

// ciscoAttributes はCisco(9)のベンダー属性
var ciscoAttributes = []*Attribute{
	{Code: 1, Name: "Cisco-AVPair", Kind: KindString},
	{Code: 2, Name: "Cisco-NAS-Port", Kind: KindString},
	{Code: 244, Name: "Cisco-Idle-Limit", Kind: KindInteger},
}

// microsoftAttributes はMicrosoft(311)のベンダー属性。
// MPPEキーはRFC 2548のsalted暗号化のため、ここではoctetsとして扱う。
var microsoftAttributes = []*Attribute{
	{Code: 1, Name: "MS-CHAP-Response", Kind: KindOctets},
	{Code: 11, Name: "MS-CHAP-Challenge", Kind: KindOctets},
	{Code: 16, Name: "MS-MPPE-Send-Key", Kind: KindOctets},
	{Code: 17, Name: "MS-MPPE-Recv-Key", Kind: KindOctets},
	{Code: 25, Name: "MS-CHAP2-Response", Kind: KindOctets},
	{Code: 26, Name: "MS-CHAP2-Success", Kind: KindOctets},
}

// cosineAttributes はCoSine(3085)のベンダー属性。
// Cosine-VPI-VCI(5)はカスタムデコーダの登録対象（main側で登録）。
var cosineAttributes = []*Attribute{
	{Code: 1, Name: "Cosine-Connection-Profile-Name", Kind: KindString},
	{Code: 2, Name: "Cosine-Enterprise-ID", Kind: KindString},
	{Code: 3, Name: "Cosine-Address-Pool-Name", Kind: KindString},
	{Code: 4, Name: "Cosine-DS-Byte", Kind: KindInteger},
	{Code: 5, Name: "Cosine-VPI-VCI", Kind: KindOctets},
	{Code: 6, Name: "Cosine-DLCI", Kind: KindInteger},
	{Code: 7, Name: "Cosine-LNS-IP-Address", Kind: KindIPv4Address},
	{Code: 8, Name: "Cosine-CLI-User-Permission-ID", Kind: KindString},
}

// Base は組み込みの基本辞書を構築して返す。
// 記述子は呼び出しごとに複製されるため、返り値へのRegisterDissectorは
// 他のBase()呼び出し結果へ影響しない（Enumテーブルは読み取り専用で共有）。
func Base() *Dictionary {
	d := New()
	for _, a := range baseAttributes {
		c := *a
		d.AddAttribute(&c)
	}

	vendors := []struct {
		code  uint32
		name  string
		attrs []*Attribute
	}{
		{VendorCisco, "Cisco", ciscoAttributes},
		{VendorMicrosoft, "Microsoft", microsoftAttributes},
		{VendorCoSine, "CoSine", cosineAttributes},
	}
	for _, vd := range vendors {
		v := NewVendor(vd.code, vd.name)
		for _, a := range vd.attrs {
			c := *a
			v.AddAttribute(&c)
		}
		d.AddVendor(v)
	}

	return d
}
