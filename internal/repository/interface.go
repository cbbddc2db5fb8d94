package repository

import "context"

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	PingContext(ctx context.Context) error
}
