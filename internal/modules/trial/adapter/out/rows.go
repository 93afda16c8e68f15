package out

import (
	"strconv"

	"watersim/internal/modules/trial/domain"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func textRow(t domain.Trial) []string {
	return []string{strconv.Itoa(t.ID), string(t.Category), formatNumber(t.FlowRate), formatNumber(t.Collected)}
}
