package shared

import "context"

// TxManager executa fn dentro de uma única transação do banco. O handle tx é
// opaco para o domínio e repassado aos métodos *WithTx dos repositórios; na
// infraestrutura ele é um *gorm.DB transacional. Se fn retornar erro, nada é
// persistido.
type TxManager interface {
	Do(ctx context.Context, fn func(tx interface{}) error) error
}
