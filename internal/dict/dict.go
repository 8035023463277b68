package dict

import "fmt"

// Unknown は辞書に存在しない属性のデコードに使われる共有記述子。
// デコード中に辞書へ挿入されることはない（受動的な未知コードは未解決のまま扱う）。
var Unknown = &Attribute{Name: "Unknown-Attribute", Kind: KindOctets}

// Dictionary は属性・ベンダーのトップレベルレジストリ。
// デコードセッション中は読み取り専用であり、RegisterDissector等の変更操作は
// 全てのデコード開始前に完了していなければならない（呼び出し側責務）。
type Dictionary struct {
	attrsByID   map[uint32]*Attribute
	vendorsByID map[uint32]*Vendor
}

// New は空のDictionaryを生成する
func New() *Dictionary {
	return &Dictionary{
		attrsByID:   make(map[uint32]*Attribute),
		vendorsByID: make(map[uint32]*Vendor),
	}
}

// AddAttribute はトップレベル属性を登録する
func (d *Dictionary) AddAttribute(a *Attribute) {
	d.attrsByID[a.Code] = a
}

// AddVendor はベンダーを登録する
func (d *Dictionary) AddVendor(v *Vendor) {
	d.vendorsByID[v.Code] = v
}

// Attribute はトップレベル属性コードから記述子を検索する
func (d *Dictionary) Attribute(code uint32) (*Attribute, bool) {
	a, ok := d.attrsByID[code]
	return a, ok
}

// Vendor はSMI enterprise numberからベンダー記述子を検索する
func (d *Dictionary) Vendor(id uint32) (*Vendor, bool) {
	v, ok := d.vendorsByID[id]
	return v, ok
}

// RegisterDissector は(vendorID, code)に対するカスタムデコーダを登録する。
// vendorID=0はトップレベル属性を指す。対象のベンダー・属性が未登録の場合は
// "Unknown-Vendor-N"/"Unknown-Attribute-N"記述子を合成して登録する。
// デコードとの並行実行は未定義動作であり、プロセス起動時に呼ぶこと。
func (d *Dictionary) RegisterDissector(vendorID, code uint32, fn Dissector) {
	if fn == nil {
		panic("dict: nil dissector")
	}

	var byID map[uint32]*Attribute
	if vendorID != 0 {
		vendor, ok := d.vendorsByID[vendorID]
		if !ok {
			vendor = NewVendor(vendorID, fmt.Sprintf("Unknown-Vendor-%d", vendorID))
			d.vendorsByID[vendorID] = vendor
		}
		byID = vendor.attrs
	} else {
		byID = d.attrsByID
	}

	entry, ok := byID[code]
	if !ok {
		entry = &Attribute{
			Code: code,
			Name: fmt.Sprintf("Unknown-Attribute-%d", code),
			Kind: KindOctets,
		}
		byID[code] = entry
	}

	entry.Dissector = fn
}
