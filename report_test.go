package donorlist_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/donorlist"
	"github.com/stretchr/testify/assert"
)

func intptr(v int) *int { return &v }

func TestRetentionCutoff(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("defaults to current year minus three", func(t *testing.T) {
		t.Parallel()

		cutoff := donorlist.RetentionCutoff(nil, now)

		assert.Equal(t, 2022, cutoff)
	})

	t.Run("uses max eliminated registration year when past 2000", func(t *testing.T) {
		t.Parallel()

		records := []donorlist.Record{
			{Status: donorlist.StatusEliminado, RegistrationYear: intptr(2019)},
			{Status: donorlist.StatusEliminado, RegistrationYear: intptr(2023)},
		}

		cutoff := donorlist.RetentionCutoff(records, now)

		assert.Equal(t, 2020, cutoff)
	})

	t.Run("ignores pre-2000 registration years for the basis", func(t *testing.T) {
		t.Parallel()

		records := []donorlist.Record{
			{Status: donorlist.StatusEliminado, RegistrationYear: intptr(1987)},
		}

		cutoff := donorlist.RetentionCutoff(records, now)

		assert.Equal(t, 2022, cutoff)
	})
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("includes banner with generation timestamp", func(t *testing.T) {
		t.Parallel()

		report := donorlist.FormatReport(nil, nil, now)

		assert.Contains(t, report, "LISTAGEM DE EMAILS PARA MAILING")
		assert.Contains(t, report, "Gerado em: 01/06/2025 12:30")
	})

	t.Run("computes statistics with one-decimal coverage", func(t *testing.T) {
		t.Parallel()

		records := []donorlist.Record{
			{Status: donorlist.StatusApto, EmailCorrected: "a@x.com", HasValidEmail: true, EmailWasCorrected: true},
			{Status: donorlist.StatusApto, EmailCorrected: "b@x.com", HasValidEmail: true},
			{Status: donorlist.StatusApto},
		}

		report := donorlist.FormatReport(records, nil, now)

		assert.Contains(t, report, "Total de emails válidos: 2")
		assert.Contains(t, report, "Emails corrigidos automaticamente: 1")
		assert.Contains(t, report, "Cobertura: 66.7%")
	})

	t.Run("reports zero coverage for no records", func(t *testing.T) {
		t.Parallel()

		report := donorlist.FormatReport(nil, nil, now)

		assert.Contains(t, report, "Cobertura: 0.0%")
	})

	t.Run("segments emails by status in fixed order", func(t *testing.T) {
		t.Parallel()

		records := []donorlist.Record{
			{Status: donorlist.StatusSuspenso, EmailCorrected: "sus@x.com", HasValidEmail: true},
			{Status: donorlist.StatusApto, EmailCorrected: "apto@x.com", HasValidEmail: true},
		}

		report := donorlist.FormatReport(records, nil, now)

		aptos := strings.Index(report, "📧 APTOS")
		suspensos := strings.Index(report, "📧 SUSPENSOS")
		eliminados := strings.Index(report, "📧 ELIMINADOS")
		assert.True(t, aptos >= 0 && aptos < suspensos && suspensos < eliminados)
		assert.Contains(t, report, "apto@x.com")
		assert.Contains(t, report, "sus@x.com")
	})

	t.Run("deduplicates emails in first-seen order", func(t *testing.T) {
		t.Parallel()

		records := []donorlist.Record{
			{Status: donorlist.StatusApto, EmailCorrected: "dup@x.com", HasValidEmail: true},
			{Status: donorlist.StatusApto, EmailCorrected: "other@x.com", HasValidEmail: true},
			{Status: donorlist.StatusApto, EmailCorrected: "dup@x.com", HasValidEmail: true},
		}

		report := donorlist.FormatReport(records, nil, now)

		assert.Contains(t, report, "Total: 2 emails")
		assert.Contains(t, report, "dup@x.com; other@x.com")
	})

	t.Run("excludes invalid emails", func(t *testing.T) {
		t.Parallel()

		records := []donorlist.Record{
			{Status: donorlist.StatusApto, EmailCorrected: "bad@", HasValidEmail: false},
		}

		report := donorlist.FormatReport(records, nil, now)

		assert.NotContains(t, report, "bad@")
		assert.Contains(t, report, "Nenhum email válido encontrado para este status.")
	})

	t.Run("keeps eliminated records at the cutoff year", func(t *testing.T) {
		t.Parallel()

		// Basis is 2023 (max registration year), cutoff 2020.
		records := []donorlist.Record{
			{Status: donorlist.StatusEliminado, EmailCorrected: "new@x.com", HasValidEmail: true, RegistrationYear: intptr(2023)},
			{Status: donorlist.StatusEliminado, EmailCorrected: "edge@x.com", HasValidEmail: true, RegistrationYear: intptr(2020)},
			{Status: donorlist.StatusEliminado, EmailCorrected: "old@x.com", HasValidEmail: true, RegistrationYear: intptr(2019)},
		}

		report := donorlist.FormatReport(records, nil, now)

		assert.Contains(t, report, "FILTRO APLICADO: Apenas dadores eliminados dos últimos 3 anos (>=2020)")
		assert.Contains(t, report, "new@x.com")
		assert.Contains(t, report, "edge@x.com")
		assert.NotContains(t, report, "old@x.com")
	})

	t.Run("excludes eliminated records without a registration year", func(t *testing.T) {
		t.Parallel()

		records := []donorlist.Record{
			{Status: donorlist.StatusEliminado, EmailCorrected: "noyear@x.com", HasValidEmail: true},
		}

		report := donorlist.FormatReport(records, nil, now)

		assert.NotContains(t, report, "noyear@x.com")
	})

	t.Run("emits correction trail only when corrections occurred", func(t *testing.T) {
		t.Parallel()

		corrections := []donorlist.Correction{
			{Original: "a@gmail.co", Corrected: "a@gmail.com"},
		}

		with := donorlist.FormatReport(nil, corrections, now)
		without := donorlist.FormatReport(nil, nil, now)

		assert.Contains(t, with, "🔧 RELATÓRIO DE CORREÇÕES APLICADAS")
		assert.Contains(t, with, "   a@gmail.co → a@gmail.com")
		assert.NotContains(t, without, "RELATÓRIO DE CORREÇÕES")
	})
}
