package donorlist

import (
	"fmt"
	"strings"
	"time"
)

// RetentionYears is the window of registration years kept for
// eliminated donors in the mailing output.
const RetentionYears = 3

// reportStatuses is the fixed section order of the report.
var reportStatuses = []Status{StatusApto, StatusSuspenso, StatusEliminado}

// RetentionCutoff returns the minimum registration year for which an
// eliminated donor is still included. The basis is the current year,
// unless the records carry a more recent post-2000 registration year,
// which guards against documents dated in the past.
func RetentionCutoff(records []Record, now time.Time) int {
	basis := now.Year()

	maxYear := 0
	for _, r := range records {
		if r.RegistrationYear != nil && *r.RegistrationYear > maxYear {
			maxYear = *r.RegistrationYear
		}
	}
	if maxYear > 2000 {
		basis = maxYear
	}

	return basis - RetentionYears
}

// FormatReport renders the status-segmented mailing list as a single
// text block: banner, statistics, one section per status, and the
// correction trail when repairs were applied. Labels are part of the
// output contract; downstream consumers read these strings.
func FormatReport(records []Record, corrections []Correction, now time.Time) string {
	cutoff := RetentionCutoff(records, now)
	divider := strings.Repeat("=", 80)

	lines := []string{
		divider,
		"LISTAGEM DE EMAILS PARA MAILING",
		"Gerado em: " + now.Format("02/01/2006 15:04"),
		divider,
		"",
	}

	validTotal := 0
	correctedTotal := 0
	for _, r := range records {
		if r.HasValidEmail {
			validTotal++
		}
		if r.EmailWasCorrected {
			correctedTotal++
		}
	}
	coverage := 0.0
	if len(records) > 0 {
		coverage = float64(validTotal) / float64(len(records)) * 100
	}

	lines = append(lines,
		"📊 ESTATÍSTICAS:",
		fmt.Sprintf("   Total de emails válidos: %d", validTotal),
		fmt.Sprintf("   Emails corrigidos automaticamente: %d", correctedTotal),
		fmt.Sprintf("   Cobertura: %.1f%%", coverage),
		"",
	)

	for _, status := range reportStatuses {
		lines = append(lines, divider, fmt.Sprintf("📧 %sS", status), divider, "")

		if status == StatusEliminado {
			lines = append(lines,
				fmt.Sprintf("FILTRO APLICADO: Apenas dadores eliminados dos últimos %d anos (>=%d)", RetentionYears, cutoff),
				fmt.Sprintf("(Dadores eliminados antes de %d foram excluídos para focar recursos de retenção)", cutoff),
				"",
			)
		}

		emails := statusEmails(records, status, cutoff)
		if len(emails) > 0 {
			lines = append(lines,
				fmt.Sprintf("Total: %d emails", len(emails)),
				"",
				strings.Join(emails, "; "),
				"",
			)
		} else {
			lines = append(lines, "Nenhum email válido encontrado para este status.")
		}
		lines = append(lines, "")
	}

	if len(corrections) > 0 {
		lines = append(lines, divider, "🔧 RELATÓRIO DE CORREÇÕES APLICADAS", divider, "")
		for _, c := range corrections {
			lines = append(lines, fmt.Sprintf("   %s → %s", c.Original, c.Corrected))
		}
	}

	return strings.Join(lines, "\n")
}

// statusEmails returns the deduplicated corrected emails for one
// status in first-seen order. Eliminated donors must fall inside the
// retention window; the cutoff year itself is kept.
func statusEmails(records []Record, status Status, cutoff int) []string {
	seen := make(map[string]struct{})
	var emails []string
	for _, r := range records {
		if r.Status != status || !r.HasValidEmail {
			continue
		}
		if status == StatusEliminado {
			if r.RegistrationYear == nil || *r.RegistrationYear < cutoff {
				continue
			}
		}
		if _, ok := seen[r.EmailCorrected]; ok {
			continue
		}
		seen[r.EmailCorrected] = struct{}{}
		emails = append(emails, r.EmailCorrected)
	}
	return emails
}
