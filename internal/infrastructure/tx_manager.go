package infrastructure

import (
	"context"

	"gorm.io/gorm"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/shared"
)

// TxManager executa a unidade de trabalho dentro de uma transação do gorm.
// O handle opaco passado ao callback é um *gorm.DB; os repositórios fazem a
// asserção nos métodos WithTx.
type TxManager struct {
	DB *gorm.DB
}

var _ shared.TxManager = (*TxManager)(nil)

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{DB: db}
}

func (m *TxManager) Do(ctx context.Context, fn func(tx interface{}) error) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}
