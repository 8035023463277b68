package dissect

import (
	"encoding/binary"
	"fmt"
)

// CosineVPVC はCoSine(3085) Cosine-VPI-VCI(5)用のカスタムデコーダ。
// 4バイト値を上位2バイト=VPI、下位2バイト=VCIとして"VPI/VCI"形式で返す。
// dict.RegisterDissectorに渡して使う。
func CosineVPVC(value []byte) string {
	if len(value) != 4 {
		return "[wrong length for VP/VC AVP]"
	}
	vpi := binary.BigEndian.Uint16(value[0:2])
	vci := binary.BigEndian.Uint16(value[2:4])
	return fmt.Sprintf("%d/%d", vpi, vci)
}
