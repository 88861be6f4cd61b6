package period

import (
	"fmt"
	"time"
)

// Formatos canônicos de data usados em toda a aplicação.
// Semana é sempre a segunda-feira ISO no formato YYYY-MM-DD,
// mês é YYYY-MM e trimestre é Q{1-4}-{ano}.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// MonthWeeks agrupa as semanas de um mês para exibição agrupada/colapsável
type MonthWeeks struct {
	Month     string   `json:"month"`
	MonthName string   `json:"month_name"`
	Weeks     []string `json:"weeks"`
}

// MondayOf retorna a segunda-feira ISO da semana que contém a data informada.
// Domingo pertence à semana anterior (a segunda-feira fica 6 dias antes).
func MondayOf(t time.Time) time.Time {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	monday := t.AddDate(0, 0, 1-day)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// WeeksOfMonth retorna todas as segundas-feiras dentro do mês, em ordem.
// O alinhamento caminha a partir do dia 1 até a primeira segunda-feira,
// portanto toda semana retornada começa dentro do próprio mês.
func WeeksOfMonth(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	current := first
	for current.Weekday() != time.Monday {
		current = current.AddDate(0, 0, 1)
	}

	weeks := make([]string, 0, 5)
	for !current.After(last) {
		weeks = append(weeks, current.Format(DateLayout))
		current = current.AddDate(0, 0, 7)
	}

	return weeks
}

// WeeksOfQuarter retorna as semanas dos três meses do trimestre, em ordem de mês
func WeeksOfQuarter(quarter, year int) []string {
	weeks := make([]string, 0, 15)
	for _, month := range MonthsInQuarter(quarter) {
		weeks = append(weeks, WeeksOfMonth(year, month)...)
	}
	return weeks
}

// MonthsOfQuarter retorna as semanas do trimestre agrupadas por mês
func MonthsOfQuarter(quarter, year int) []MonthWeeks {
	months := MonthsInQuarter(quarter)
	grouped := make([]MonthWeeks, 0, len(months))

	for _, month := range months {
		grouped = append(grouped, MonthWeeks{
			Month:     FormatMonth(year, month),
			MonthName: month.String(),
			Weeks:     WeeksOfMonth(year, month),
		})
	}

	return grouped
}

// MonthsInQuarter mapeia o trimestre para seus meses: Q1={1,2,3} ... Q4={10,11,12}
func MonthsInQuarter(quarter int) []time.Month {
	start := time.Month((quarter-1)*3 + 1)
	return []time.Month{start, start + 1, start + 2}
}

// MonthOfWeek retorna o mês (YYYY-MM) que contém a segunda-feira da semana,
// não o mês em que a semana eventualmente termina
func MonthOfWeek(week string) string {
	if len(week) < len(MonthLayout) {
		return ""
	}
	return week[:len(MonthLayout)]
}

// YearOfWeek retorna o ano da segunda-feira da semana
func YearOfWeek(week string) int {
	t, err := time.Parse(DateLayout, week)
	if err != nil {
		return 0
	}
	return t.Year()
}

// WeekEnd retorna o domingo (último dia) da semana informada
func WeekEnd(week string) (time.Time, error) {
	monday, err := time.Parse(DateLayout, week)
	if err != nil {
		return time.Time{}, err
	}
	return monday.AddDate(0, 0, 6), nil
}

// FormatMonth formata um par ano/mês como YYYY-MM
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonth interpreta uma string YYYY-MM
func ParseMonth(monthStr string) (int, time.Month, error) {
	t, err := time.Parse(MonthLayout, monthStr)
	if err != nil {
		return 0, 0, fmt.Errorf("mês inválido %q: %w", monthStr, err)
	}
	return t.Year(), t.Month(), nil
}

// FormatQuarter formata um trimestre como Q{1-4}-{ano}
func FormatQuarter(quarter, year int) string {
	return fmt.Sprintf("Q%d-%d", quarter, year)
}

// ParseQuarter interpreta uma string Q{1-4}-{ano}
func ParseQuarter(quarterStr string) (quarter, year int, err error) {
	if _, err = fmt.Sscanf(quarterStr, "Q%d-%d", &quarter, &year); err != nil {
		return 0, 0, fmt.Errorf("trimestre inválido %q: %w", quarterStr, err)
	}
	if quarter < 1 || quarter > 4 {
		return 0, 0, fmt.Errorf("trimestre inválido %q: fora do intervalo Q1-Q4", quarterStr)
	}
	return quarter, year, nil
}

// QuarterOfMonth retorna o trimestre (1-4) do mês informado
func QuarterOfMonth(month time.Month) int {
	return (int(month)-1)/3 + 1
}

// CurrentMonday retorna a segunda-feira da semana atual
func CurrentMonday() string {
	return MondayOf(time.Now().UTC()).Format(DateLayout)
}

// CurrentMonth retorna o mês atual no formato YYYY-MM
func CurrentMonth() string {
	now := time.Now().UTC()
	return FormatMonth(now.Year(), now.Month())
}

// CurrentQuarter retorna o trimestre atual no formato Q{1-4}-{ano}
func CurrentQuarter() string {
	now := time.Now().UTC()
	return FormatQuarter(QuarterOfMonth(now.Month()), now.Year())
}

// PrevMonth retorna o mês anterior a YYYY-MM
func PrevMonth(monthStr string) (string, error) {
	year, month, err := ParseMonth(monthStr)
	if err != nil {
		return "", err
	}
	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return FormatMonth(prev.Year(), prev.Month()), nil
}

// NextMonth retorna o mês seguinte a YYYY-MM
func NextMonth(monthStr string) (string, error) {
	year, month, err := ParseMonth(monthStr)
	if err != nil {
		return "", err
	}
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return FormatMonth(next.Year(), next.Month()), nil
}

// PrevQuarter retorna o trimestre anterior, cruzando a virada de ano quando necessário
func PrevQuarter(quarterStr string) (string, error) {
	quarter, year, err := ParseQuarter(quarterStr)
	if err != nil {
		return "", err
	}
	if quarter == 1 {
		return FormatQuarter(4, year-1), nil
	}
	return FormatQuarter(quarter-1, year), nil
}

// NextQuarter retorna o trimestre seguinte, cruzando a virada de ano quando necessário
func NextQuarter(quarterStr string) (string, error) {
	quarter, year, err := ParseQuarter(quarterStr)
	if err != nil {
		return "", err
	}
	if quarter == 4 {
		return FormatQuarter(1, year+1), nil
	}
	return FormatQuarter(quarter+1, year), nil
}

// ValidWeek verifica se a string é uma segunda-feira válida no formato canônico.
// O formato de largura fixa é invariante do modelo de dados: a regra de
// "registro mais recente" depende de comparação lexicográfica segura.
func ValidWeek(week string) bool {
	t, err := time.Parse(DateLayout, week)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Monday
}

// ValidBillingMonth verifica se a string é o primeiro dia de um mês (YYYY-MM-01)
func ValidBillingMonth(billingMonth string) bool {
	t, err := time.Parse(DateLayout, billingMonth)
	if err != nil {
		return false
	}
	return t.Day() == 1
}

// BillingMonthOf converte YYYY-MM para a chave de cobrança YYYY-MM-01
func BillingMonthOf(monthStr string) string {
	return monthStr + "-01"
}
