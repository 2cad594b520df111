package planning_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mrp-planner/internal/application/planning"
	"github.com/jhoicas/mrp-planner/internal/domain"
	"github.com/jhoicas/mrp-planner/internal/domain/entity"
)

func validInput(t *testing.T) planning.Input {
	t.Helper()
	return planning.Input{
		Items:   []entity.ItemParams{itemX(t)},
		Buckets: weeksFrom(week0, 4),
	}
}

func TestValidateInputClaveDuplicada(t *testing.T) {
	in := validInput(t)
	in.Items = append(in.Items, itemX(t)) // misma (bodega, artículo)

	_, err := planning.ValidateInput(in, planning.DefaultConfig())
	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "W1", dup.Warehouse)
	assert.Equal(t, "X", dup.ItemID)
	assert.Equal(t, 2, dup.Rows)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateInputPackSizeNoPositivo(t *testing.T) {
	in := validInput(t)
	in.Items[0].PackSize = d(t, "0")

	_, err := planning.ValidateInput(in, planning.DefaultConfig())
	var lot *domain.InvalidLotSizeError
	require.ErrorAs(t, err, &lot)
	assert.Equal(t, "X", lot.ItemID)
}

func TestValidateInputCamposNegativos(t *testing.T) {
	in := validInput(t)
	in.Items[0].LeadTimeWeeks = -1

	_, err := planning.ValidateInput(in, planning.DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validInput(t)
	in.Items[0].SafetyStock = d(t, "-5")
	_, err = planning.ValidateInput(in, planning.DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateInputHorizonteMalformado(t *testing.T) {
	// Bucket que no es lunes.
	in := validInput(t)
	in.Buckets = []time.Time{week0.AddDate(0, 0, 1)}
	_, err := planning.ValidateInput(in, planning.DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Hueco de dos semanas.
	in = validInput(t)
	in.Buckets = []time.Time{week0, week0.AddDate(0, 0, 14)}
	_, err = planning.ValidateInput(in, planning.DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateInputUOMSegunSeveridad(t *testing.T) {
	in := validInput(t)
	in.Snapshots = []entity.InventorySnapshot{
		{Warehouse: "W1", ItemID: "X", UnitOfMeasure: "CAJA", OnHandQty: d(t, "10")},
	}

	// warn: la corrida continúa y la inconsistencia queda en las advertencias.
	cfg := planning.DefaultConfig()
	cfg.UOMMismatchSeverity = planning.SeverityWarn
	warnings, err := planning.ValidateInput(in, cfg)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, planning.WarningUOMMismatch, warnings[0].Kind)
	assert.Equal(t, "X", warnings[0].ItemID)

	// block: la misma entrada aborta la corrida.
	cfg.UOMMismatchSeverity = planning.SeverityBlock
	_, err = planning.ValidateInput(in, cfg)
	var mismatch *domain.UnitMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "EA", mismatch.Master)
	assert.Equal(t, "CAJA", mismatch.Other)
}

func TestValidateInputSnapshotSinUOMNoAdvierte(t *testing.T) {
	in := validInput(t)
	in.Snapshots = []entity.InventorySnapshot{
		{Warehouse: "W1", ItemID: "X", OnHandQty: d(t, "10")}, // sin UOM
		{Warehouse: "W9", ItemID: "Z", UnitOfMeasure: "KG", OnHandQty: d(t, "1")}, // sin maestro
	}
	warnings, err := planning.ValidateInput(in, planning.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidateInputEntradaValida(t *testing.T) {
	warnings, err := planning.ValidateInput(validInput(t), planning.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}
