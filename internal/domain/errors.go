package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Nombres lógicos de las tablas de entrada, usados en errores y advertencias.
const (
	TableItemParams = "item_master"
	TableSnapshots  = "inventory_on_hand"
	TableHistory    = "demand_history"
	TableReceipts   = "scheduled_receipts"
)

// SchemaError columnas obligatorias ausentes en una tabla de entrada.
// Fatal: la planificación no puede continuar.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("tabla %s: faltan columnas obligatorias [%s]", e.Table, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrInvalidInput }

// DuplicateKeyError más de una fila de parámetros para la misma clave
// (bodega, artículo). Fatal: los parámetros serían ambiguos.
type DuplicateKeyError struct {
	Warehouse string
	ItemID    string
	Rows      int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("parámetros duplicados para (%s, %s): %d filas", e.Warehouse, e.ItemID, e.Rows)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrInvalidInput }

// InvalidLotSizeError pack_size no positivo para un artículo. Fatal: el
// redondeo a múltiplos de pack no está definido.
type InvalidLotSizeError struct {
	Warehouse string
	ItemID    string
	PackSize  decimal.Decimal
}

func (e *InvalidLotSizeError) Error() string {
	return fmt.Sprintf("pack_size inválido para (%s, %s): %s", e.Warehouse, e.ItemID, e.PackSize)
}

func (e *InvalidLotSizeError) Unwrap() error { return ErrInvalidInput }

// UnitMismatchError unidad de medida inconsistente entre tablas para un
// artículo. Solo es fatal cuando la severidad configurada es "block".
type UnitMismatchError struct {
	Warehouse string
	ItemID    string
	Master    string
	Other     string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("unidad de medida inconsistente para (%s, %s): maestro=%q, snapshot=%q", e.Warehouse, e.ItemID, e.Master, e.Other)
}

func (e *UnitMismatchError) Unwrap() error { return ErrInvalidInput }
