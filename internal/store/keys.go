package store

// Valkeyキープレフィックス
const (
	KeyPrefixSession = "acctsess:" // Acct-Session-Id単位の観測セッション
)
