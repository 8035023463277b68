package export

// AttributeRecord はエクスポートされるAVP1件分のレコード
type AttributeRecord struct {
	Vendor string `json:"vendor,omitempty"`
	Name   string `json:"name"`
	Code   uint32 `json:"code"`
	Tag    *uint8 `json:"tag,omitempty"`
	Value  string `json:"value,omitempty"`
	Note   string `json:"note,omitempty"`
}

// PacketRecord はエクスポートされるパケット1件分のレコード
type PacketRecord struct {
	TraceID    string            `json:"trace_id"`
	SrcIP      string            `json:"src_ip"`
	Code       uint8             `json:"code"`
	CodeName   string            `json:"code_name"`
	Identifier uint8             `json:"identifier"`
	Length     uint16            `json:"length"`
	Attributes []AttributeRecord `json:"attributes,omitempty"`
	EAPSummary string            `json:"eap_summary,omitempty"`
}

// ProblemDetails はRFC 7807エラーレスポンスを表す
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
