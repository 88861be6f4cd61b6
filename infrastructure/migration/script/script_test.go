package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
)

// A chave de cobrança persiste com o dia fixo em 01 (YYYY-MM-01); as
// colunas de período precisam comportar os 10 caracteres da chave completa
func TestSchemaColumnsFitPeriodKeys(t *testing.T) {
	var billingDDL, statusDDL string
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS account_billing") {
			billingDDL = stmt
		}
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS weekly_statuses") {
			statusDDL = stmt
		}
	}

	assert.Len(t, period.BillingMonthOf("2025-03"), 10)

	assert.NotEmpty(t, billingDDL)
	assert.Contains(t, billingDDL, "billing_month VARCHAR(10)")

	assert.NotEmpty(t, statusDDL)
	assert.Contains(t, statusDDL, "week VARCHAR(10)")
}
