// Package dict はRADIUS属性辞書（属性・ベンダー記述子のレジストリ）を提供する。
package dict

// ValueKind は属性値のワイヤ上の型を表す（RFC 2865/3162）
type ValueKind int

const (
	KindOctets ValueKind = iota
	KindInteger
	KindString
	KindIPv4Address
	KindIPv6Address
	KindDate
	KindInterfaceID
	KindABinary
)

// String はValueKindの名称を返す
func (k ValueKind) String() string {
	switch k {
	case KindOctets:
		return "octets"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindIPv4Address:
		return "ipaddr"
	case KindIPv6Address:
		return "ipv6addr"
	case KindDate:
		return "date"
	case KindInterfaceID:
		return "ifid"
	case KindABinary:
		return "abinary"
	default:
		return "unknown"
	}
}

// Dissector はAVP値のカスタムデコーダ。
// 値のバイト列を受け取り、短いテキスト要約を返す。
type Dissector func(value []byte) string

// Attribute は属性記述子。
// 辞書ロード時またはRegisterDissector経由で生成され、以降変更されない
// （Dissectorの付与のみ例外）。
type Attribute struct {
	Code      uint32
	Name      string
	Kind      ValueKind
	Encrypted bool
	Tagged    bool
	Enum      map[uint32]string
	Dissector Dissector
}

// EnumName は整数値に対応するラベルを返す。
// Enumテーブルが無い、または値が未登録の場合は("", false)を返す。
func (a *Attribute) EnumName(v uint32) (string, bool) {
	if a.Enum == nil {
		return "", false
	}
	name, ok := a.Enum[v]
	return name, ok
}

// Vendor はベンダー記述子（SMI enterprise number単位の属性レジストリ）
type Vendor struct {
	Code  uint32
	Name  string
	attrs map[uint32]*Attribute
}

// NewVendor は空の属性レジストリを持つVendorを生成する
func NewVendor(code uint32, name string) *Vendor {
	return &Vendor{
		Code:  code,
		Name:  name,
		attrs: make(map[uint32]*Attribute),
	}
}

// AddAttribute はベンダー属性を登録する
func (v *Vendor) AddAttribute(a *Attribute) {
	v.attrs[a.Code] = a
}

// Attribute はベンダー属性コードから記述子を検索する
func (v *Vendor) Attribute(code uint32) (*Attribute, bool) {
	a, ok := v.attrs[code]
	return a, ok
}
