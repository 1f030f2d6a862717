package domain

import "fmt"

// Role はセッション内での自分の役割です。
type Role uint8

const (
	RoleLocal  Role = iota // ネットワークなし
	RoleHost               // 状態を配信する側
	RoleClient             // 入力を送り、受信したスナップショットを描画する側
)

// 接続時に付与するHTTPヘッダー名
const (
	HeaderRole = "role"
	HeaderUID  = "uid"
	HeaderName = "name"
)

func (r Role) String() string {
	switch r {
	case RoleHost:
		return "host"
	case RoleClient:
		return "client"
	default:
		return "local"
	}
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "host":
		return RoleHost, nil
	case "client":
		return RoleClient, nil
	case "local", "":
		return RoleLocal, nil
	}
	return RoleLocal, fmt.Errorf("unknown role %q", s)
}
