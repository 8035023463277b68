package dissect

// RADIUSパケットコード（RFC 2865/2866/3576ほか）
const (
	CodeAccessRequest      = 1
	CodeAccessAccept       = 2
	CodeAccessReject       = 3
	CodeAccountingRequest  = 4
	CodeAccountingResponse = 5
	CodeAccountingStatus   = 6
	CodeAccessChallenge    = 11
	CodeStatusServer       = 12
	CodeStatusClient       = 13
	CodeDisconnectRequest  = 40
	CodeDisconnectACK      = 41
	CodeDisconnectNAK      = 42
	CodeCoARequest         = 43
	CodeCoAACK             = 44
	CodeCoANAK             = 45
)

// codeNames はパケットコードの表示名
var codeNames = map[uint8]string{
	1:   "Access-Request",
	2:   "Access-Accept",
	3:   "Access-Reject",
	4:   "Accounting-Request",
	5:   "Accounting-Response",
	6:   "Accounting-Status",
	7:   "Access-Password-Request",
	8:   "Access-Password-Ack",
	9:   "Access-Password-Reject",
	10:  "Accounting-Message",
	11:  "Access-Challenge",
	12:  "Status-Server",
	13:  "Status-Client",
	29:  "Ascend-Access-Next-Code",
	30:  "Ascend-Access-New-Pin",
	32:  "Ascend-Password-Expired",
	33:  "Ascend-Access-Event-Request",
	34:  "Ascend-Access-Event-Response",
	40:  "Disconnect-Request",
	41:  "Disconnect-Request-ACK",
	42:  "Disconnect-Request-NAK",
	43:  "Change-Filter-Request",
	44:  "Change-Filter-Request-ACK",
	45:  "Change-Filter-Request-NAK",
	255: "Reserved",
}

// CodeName はパケットコードの表示名を返す。未知のコードは"Unknown Packet"。
func CodeName(code uint8) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	return "Unknown Packet"
}
