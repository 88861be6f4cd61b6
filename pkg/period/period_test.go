package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "Segunda-feira retorna ela mesma",
			date:     time.Date(2025, 3, 3, 15, 30, 0, 0, time.UTC),
			expected: "2025-03-03",
		},
		{
			name:     "Quarta-feira retorna a segunda anterior",
			date:     time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			expected: "2025-03-03",
		},
		{
			name:     "Domingo pertence à semana anterior, 6 dias antes",
			date:     time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			expected: "2025-03-03",
		},
		{
			name:     "Sábado retorna a segunda da mesma semana",
			date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: "2025-02-24",
		},
		{
			name:     "Virada de ano",
			date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-12-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MondayOf(tt.date).Format(DateLayout))
		})
	}
}

func TestWeeksOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected []string
	}{
		{
			// Março de 2025 começa num sábado: a primeira segunda é dia 3 e
			// o dia 31 também é segunda, portanto o mês tem 5 semanas
			name:  "Março 2025 - mês começando no sábado com 5 segundas",
			year:  2025,
			month: time.March,
			expected: []string{
				"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-24", "2025-03-31",
			},
		},
		{
			name:  "Setembro 2025 - mês começando na segunda",
			year:  2025,
			month: time.September,
			expected: []string{
				"2025-09-01", "2025-09-08", "2025-09-15", "2025-09-22", "2025-09-29",
			},
		},
		{
			name:  "Fevereiro 2025 - quatro semanas exatas",
			year:  2025,
			month: time.February,
			expected: []string{
				"2025-02-03", "2025-02-10", "2025-02-17", "2025-02-24",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeeksOfMonth(tt.year, tt.month))
		})
	}
}

func TestWeeksOfMonth_AllMondaysWithinMonth(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		weeks := WeeksOfMonth(2025, month)
		require.NotEmpty(t, weeks)

		for _, week := range weeks {
			date, err := time.Parse(DateLayout, week)
			require.NoError(t, err)
			assert.Equal(t, time.Monday, date.Weekday())
			assert.Equal(t, month, date.Month(), "semana %s fora do mês %s", week, month)
		}
	}
}

func TestWeeksOfQuarter_RoundTrip(t *testing.T) {
	for quarter := 1; quarter <= 4; quarter++ {
		quarterWeeks := WeeksOfQuarter(quarter, 2025)

		var concatenated []string
		for _, month := range MonthsInQuarter(quarter) {
			concatenated = append(concatenated, WeeksOfMonth(2025, month)...)
		}

		assert.Equal(t, concatenated, quarterWeeks)

		// Estritamente crescente, sem duplicatas nem lacunas de segunda-feira
		for i := 1; i < len(quarterWeeks); i++ {
			assert.Less(t, quarterWeeks[i-1], quarterWeeks[i])

			prev, _ := time.Parse(DateLayout, quarterWeeks[i-1])
			curr, _ := time.Parse(DateLayout, quarterWeeks[i])
			assert.Equal(t, 7*24*time.Hour, curr.Sub(prev))
		}
	}
}

func TestMonthsOfQuarter(t *testing.T) {
	grouped := MonthsOfQuarter(2, 2025)

	require.Len(t, grouped, 3)
	assert.Equal(t, "2025-04", grouped[0].Month)
	assert.Equal(t, "April", grouped[0].MonthName)
	assert.Equal(t, "2025-05", grouped[1].Month)
	assert.Equal(t, "2025-06", grouped[2].Month)
	assert.Equal(t, WeeksOfMonth(2025, time.May), grouped[1].Weeks)
}

func TestMonthOfWeek(t *testing.T) {
	// O mês da semana é o da segunda-feira, mesmo quando a semana avança
	// para o mês seguinte
	assert.Equal(t, "2025-03", MonthOfWeek("2025-03-31"))
	assert.Equal(t, "2025-04", MonthOfWeek("2025-04-07"))
	assert.Equal(t, "", MonthOfWeek("bad"))
}

func TestParseQuarter(t *testing.T) {
	quarter, year, err := ParseQuarter("Q3-2025")
	require.NoError(t, err)
	assert.Equal(t, 3, quarter)
	assert.Equal(t, 2025, year)

	_, _, err = ParseQuarter("Q5-2025")
	assert.Error(t, err)

	_, _, err = ParseQuarter("2025-Q3")
	assert.Error(t, err)
}

func TestQuarterNavigation(t *testing.T) {
	next, err := NextQuarter("Q4-2025")
	require.NoError(t, err)
	assert.Equal(t, "Q1-2026", next)

	prev, err := PrevQuarter("Q1-2025")
	require.NoError(t, err)
	assert.Equal(t, "Q4-2024", prev)
}

func TestMonthNavigation(t *testing.T) {
	next, err := NextMonth("2025-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-01", next)

	prev, err := PrevMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12", prev)
}

func TestValidWeek(t *testing.T) {
	assert.True(t, ValidWeek("2025-03-03"))
	assert.False(t, ValidWeek("2025-03-04"), "terça-feira não é início de semana")
	assert.False(t, ValidWeek("2025-3-3"), "formato deve ter largura fixa")
	assert.False(t, ValidWeek(""))
}

func TestValidBillingMonth(t *testing.T) {
	assert.True(t, ValidBillingMonth("2025-03-01"))
	assert.False(t, ValidBillingMonth("2025-03-15"))
	assert.Equal(t, "2025-03-01", BillingMonthOf("2025-03"))
}
