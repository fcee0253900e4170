package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSupplier(t *testing.T) {
	t.Run("valid supplier", func(t *testing.T) {
		supplier, err := NewSupplier("Despachante Costa", "Despacho aduaneiro")
		assert.NoError(t, err)
		assert.True(t, supplier.IsActive)
		assert.Equal(t, "Despachante Costa", supplier.Name)
		assert.Equal(t, "Despacho aduaneiro", supplier.ServiceType)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewSupplier("", "Despacho aduaneiro")
		assert.Error(t, err)
	})

	t.Run("empty service type", func(t *testing.T) {
		_, err := NewSupplier("Despachante Costa", "")
		assert.Error(t, err)
	})
}

func TestSupplierCNPJ(t *testing.T) {
	supplier, err := NewSupplier("Armazem Geral", "Armazenagem")
	assert.NoError(t, err)

	err = supplier.UpdateCNPJ("11.222.333/0001-44")
	assert.NoError(t, err)
	assert.Equal(t, "11222333000144", supplier.CNPJ)

	err = supplier.UpdateCNPJ("123")
	assert.Error(t, err)
}

func TestSupplierServiceType(t *testing.T) {
	supplier, err := NewSupplier("Armazem Geral", "Armazenagem")
	assert.NoError(t, err)

	err = supplier.UpdateServiceType("Transporte rodoviario")
	assert.NoError(t, err)
	assert.Equal(t, "Transporte rodoviario", supplier.ServiceType)

	err = supplier.UpdateServiceType("")
	assert.Error(t, err)
	assert.Equal(t, "Transporte rodoviario", supplier.ServiceType)
}

func TestSupplierLifecycle(t *testing.T) {
	supplier, err := NewSupplier("Transportadora Lima", "Transporte rodoviario")
	assert.NoError(t, err)
	assert.Equal(t, 1, supplier.GetVersion())

	supplier.Deactivate()
	assert.False(t, supplier.IsActive)
	assert.Equal(t, 2, supplier.GetVersion())

	supplier.Activate()
	assert.True(t, supplier.IsActive)
	assert.Equal(t, 3, supplier.GetVersion())
}
