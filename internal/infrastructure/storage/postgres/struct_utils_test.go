package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farina/internal/core/entity"
	"farina/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	Telefono string `db:"telefono" json:"telefono"`
	Riba     bool   `db:"riba" json:"riba"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expected := []string{"id", "deletion_mark", "version", "nome", "note", "telefono", "riba"}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseCatalog: entity.BaseCatalog{
				BaseEntity: entity.BaseEntity{
					ID:           id.New(),
					DeletionMark: true,
					Version:      5,
				},
			},
			Nome: "Molino Rossi",
			Note: "consegna solo al mattino",
		},
		Telefono: "0371 420001",
		Riba:     true,
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "Molino Rossi", m["nome"])
	assert.Equal(t, "consegna solo al mattino", m["note"])
	assert.Equal(t, "0371 420001", m["telefono"])
	assert.Equal(t, true, m["riba"])
}
