package dissect

import "errors"

// デコード致命エラー。いずれも当該パケットのデコードのみを中断し、
// 後続パケットや辞書の状態には影響しない。
var (
	// ErrMalformedHeader はヘッダ長が不正（20未満・4096超・バッファ超過）の場合のエラー
	ErrMalformedHeader = errors.New("malformed radius header")

	// ErrAVPTooShort はAVP宣言長が3未満の場合のエラー
	ErrAVPTooShort = errors.New("avp too short")

	// ErrTruncatedAVP はAVPが属性領域またはバッファ末尾を超える場合のエラー
	ErrTruncatedAVP = errors.New("truncated avp")

	// ErrEAPBufferOverflow はEAP-Message再組立バッファが上限を超えた場合のエラー
	ErrEAPBufferOverflow = errors.New("eap message longer than maximum radius packet size")
)
